package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates a prefixed random identifier, e.g. "trp_9f2c...".
// The prefix makes IDs self-describing in logs and foreign-key errors.
func NewID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
