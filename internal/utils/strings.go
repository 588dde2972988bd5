package utils

import (
	"strconv"
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ParseFlag reads a stored yes/no value the way the dataset encodes it.
// Integer-like values are true when non-zero, so "2" is true and "0" is
// false. Boolean literals parse as booleans. Other non-empty text is true.
func ParseFlag(raw string) bool {
	s := strings.TrimSpace(raw)
	if s == "" {
		return false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n != 0
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return true
}
