package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickField_AliasPriority(t *testing.T) {
	body := Body{"start_date": "2026-04-10", "startDate": "2026-04-11"}

	// First listed alias wins
	value, ok := PickField(body, "startDate", "start_date")
	assert.True(t, ok)
	assert.Equal(t, "2026-04-11", value)

	value, ok = PickField(body, "start_date", "startDate")
	assert.True(t, ok)
	assert.Equal(t, "2026-04-10", value)

	_, ok = PickField(body, "endDate", "end_date")
	assert.False(t, ok)
}

func TestRequiredString(t *testing.T) {
	s, err := RequiredString(Body{"title": "  Kyoto  "}, "title", "title")
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", s)

	_, err = RequiredString(Body{}, "title", "title")
	assert.EqualError(t, err, "title is required")

	_, err = RequiredString(Body{"title": "   "}, "title", "title")
	assert.EqualError(t, err, "title is required")

	_, err = RequiredString(Body{"title": nil}, "title", "title")
	assert.EqualError(t, err, "title is required")

	_, err = RequiredString(Body{"title": 42.0}, "title", "title")
	assert.EqualError(t, err, "title must be a string")
}

func TestOptionalString(t *testing.T) {
	s, err := OptionalString(Body{"memo": " note "}, "memo", "memo")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "note", *s)

	s, err = OptionalString(Body{}, "memo", "memo")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = OptionalString(Body{"memo": nil}, "memo", "memo")
	require.NoError(t, err)
	assert.Nil(t, s)

	// Empty after trim collapses to null
	s, err = OptionalString(Body{"memo": "  "}, "memo", "memo")
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = OptionalString(Body{"memo": true}, "memo", "memo")
	assert.Error(t, err)
}

func TestRequiredInt(t *testing.T) {
	// JSON numbers arrive as float64
	n, err := RequiredInt(Body{"amount": float64(12000)}, "amount", "amount")
	require.NoError(t, err)
	assert.Equal(t, int64(12000), n)

	// Numeric strings are accepted
	n, err = RequiredInt(Body{"amount": " 450 "}, "amount", "amount")
	require.NoError(t, err)
	assert.Equal(t, int64(450), n)

	_, err = RequiredInt(Body{"amount": 12.5}, "amount", "amount")
	assert.EqualError(t, err, "amount must be an integer")

	_, err = RequiredInt(Body{"amount": "twelve"}, "amount", "amount")
	assert.EqualError(t, err, "amount must be an integer")

	_, err = RequiredInt(Body{}, "amount", "amount")
	assert.EqualError(t, err, "amount is required")
}

func TestOptionalInt(t *testing.T) {
	n, err := OptionalInt(Body{"dayNo": float64(3)}, "dayNo", "dayNo", "day_no")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, int64(3), *n)

	n, err = OptionalInt(Body{}, "dayNo", "dayNo")
	require.NoError(t, err)
	assert.Nil(t, n)

	n, err = OptionalInt(Body{"dayNo": nil}, "dayNo", "dayNo")
	require.NoError(t, err)
	assert.Nil(t, n)

	// Empty string counts as absent
	n, err = OptionalInt(Body{"dayNo": ""}, "dayNo", "dayNo")
	require.NoError(t, err)
	assert.Nil(t, n)

	_, err = OptionalInt(Body{"dayNo": "x"}, "dayNo", "dayNo")
	assert.Error(t, err)
}

func TestRequiredDate(t *testing.T) {
	d, err := RequiredDate(Body{"date": "2026-04-10"}, "date", "date")
	require.NoError(t, err)
	assert.Equal(t, "2026-04-10", d)

	// Wrong shape
	_, err = RequiredDate(Body{"date": "2026-4-1"}, "date", "date")
	assert.Error(t, err)
	_, err = RequiredDate(Body{"date": "10-04-2026"}, "date", "date")
	assert.Error(t, err)

	// Shape is right but the calendar date does not exist
	_, err = RequiredDate(Body{"date": "2026-02-30"}, "date", "date")
	assert.Error(t, err)
	_, err = RequiredDate(Body{"date": "2026-04-31"}, "date", "date")
	assert.Error(t, err)

	// 2028 is a leap year, 2026 is not
	_, err = RequiredDate(Body{"date": "2028-02-29"}, "date", "date")
	assert.NoError(t, err)
	_, err = RequiredDate(Body{"date": "2026-02-29"}, "date", "date")
	assert.Error(t, err)
}

func TestRequiredTime_Canonicalization(t *testing.T) {
	cases := map[string]string{
		"2026-04-13T10:20:00+09:00":     "2026-04-13T01:20:00.000Z",
		"2026-04-13T10:20:00Z":          "2026-04-13T10:20:00.000Z",
		"2026-04-13T10:20:00.1234Z":     "2026-04-13T10:20:00.123Z",
		"2026-04-13T10:20:00":           "2026-04-13T10:20:00.000Z",
		"2026-04-13 10:20:00":           "2026-04-13T10:20:00.000Z",
		"2026-04-13":                    "2026-04-13T00:00:00.000Z",
	}
	for input, want := range cases {
		parsed, err := RequiredTime(Body{"spentAt": input}, "spentAt", "spentAt")
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, parsed.UTC().Format("2006-01-02T15:04:05.000Z"), "input %q", input)
	}

	_, err := RequiredTime(Body{"spentAt": "not a time"}, "spentAt", "spentAt")
	assert.Error(t, err)
}

func TestOptionalTime(t *testing.T) {
	parsed, err := OptionalTime(Body{}, "spentAt", "spentAt", "spent_at")
	require.NoError(t, err)
	assert.Nil(t, parsed)

	parsed, err = OptionalTime(Body{"spent_at": "2026-04-13T10:20:00Z"}, "spentAt", "spentAt", "spent_at")
	require.NoError(t, err)
	require.NotNil(t, parsed)
}
