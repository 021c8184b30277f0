package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Body is a decoded JSON request body. Handlers bind into this instead of a
// struct so that each logical field can be resolved from several accepted
// key spellings (camelCase and snake_case aliases).
type Body map[string]interface{}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// timeLayouts are the accepted input layouts for timestamps, tried in order.
// Layouts without a zone are interpreted as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// PickField returns the value for the first alias present in the body.
func PickField(body Body, aliases ...string) (interface{}, bool) {
	for _, key := range aliases {
		if value, ok := body[key]; ok {
			return value, true
		}
	}
	return nil, false
}

// HasField reports whether any alias is present in the body. Partial updates
// use this to decide whether a field participates in the patch at all.
func HasField(body Body, aliases ...string) bool {
	_, ok := PickField(body, aliases...)
	return ok
}

// RequiredString resolves a field that must be a non-empty string.
func RequiredString(body Body, field string, aliases ...string) (string, error) {
	value, ok := PickField(body, aliases...)
	if !ok || value == nil {
		return "", NewFieldError(field, "is required")
	}
	s, ok := value.(string)
	if !ok {
		return "", NewFieldError(field, "must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", NewFieldError(field, "is required")
	}
	return s, nil
}

// OptionalString resolves a field that may be absent or null.
// An empty-after-trim string is treated as null.
func OptionalString(body Body, field string, aliases ...string) (*string, error) {
	value, ok := PickField(body, aliases...)
	if !ok || value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, NewFieldError(field, "must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

// RequiredInt resolves a field that must be an integer. Native JSON numbers
// must be integral; numeric strings are parsed.
func RequiredInt(body Body, field string, aliases ...string) (int64, error) {
	value, ok := PickField(body, aliases...)
	if !ok || value == nil {
		return 0, NewFieldError(field, "is required")
	}
	return coerceInt(value, field)
}

// OptionalInt resolves an integer field that may be absent, null, or an
// empty string (all of which yield nil).
func OptionalInt(body Body, field string, aliases ...string) (*int64, error) {
	value, ok := PickField(body, aliases...)
	if !ok || value == nil {
		return nil, nil
	}
	if s, isStr := value.(string); isStr && strings.TrimSpace(s) == "" {
		return nil, nil
	}
	n, err := coerceInt(value, field)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func coerceInt(value interface{}, field string) (int64, error) {
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, NewFieldError(field, "must be an integer")
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, NewFieldError(field, "must be an integer")
		}
		return n, nil
	default:
		return 0, NewFieldError(field, "must be an integer")
	}
}

// RequiredDate resolves a field that must be a strict YYYY-MM-DD calendar
// date. The value must round-trip through date parsing unchanged, so
// impossible dates like 2026-02-30 are rejected.
func RequiredDate(body Body, field string, aliases ...string) (string, error) {
	s, err := RequiredString(body, field, aliases...)
	if err != nil {
		return "", err
	}
	return CanonicalDate(s, field)
}

// OptionalDate is RequiredDate for a field that may be absent or null.
func OptionalDate(body Body, field string, aliases ...string) (*string, error) {
	s, err := OptionalString(body, field, aliases...)
	if err != nil || s == nil {
		return nil, err
	}
	d, err := CanonicalDate(*s, field)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CanonicalDate validates a single date string against the strict pattern.
func CanonicalDate(s, field string) (string, error) {
	s = strings.TrimSpace(s)
	if !datePattern.MatchString(s) {
		return "", NewFieldError(field, "must be a date in YYYY-MM-DD format")
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil || t.Format("2006-01-02") != s {
		return "", NewFieldError(field, fmt.Sprintf("is not a valid calendar date: %s", s))
	}
	return s, nil
}

// RequiredTime resolves a field that must parse as an instant. The result is
// canonicalized to UTC with millisecond precision.
func RequiredTime(body Body, field string, aliases ...string) (time.Time, error) {
	s, err := RequiredString(body, field, aliases...)
	if err != nil {
		return time.Time{}, err
	}
	return parseTime(s, field)
}

// OptionalTime is RequiredTime for a field that may be absent or null.
func OptionalTime(body Body, field string, aliases ...string) (*time.Time, error) {
	s, err := OptionalString(body, field, aliases...)
	if err != nil || s == nil {
		return nil, err
	}
	t, err := parseTime(*s, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseTime(s, field string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Millisecond), nil
		}
	}
	return time.Time{}, NewFieldError(field, fmt.Sprintf("is not a valid timestamp: %s", s))
}
