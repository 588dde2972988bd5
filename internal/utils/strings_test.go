package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlag(t *testing.T) {
	cases := map[string]bool{
		"":      false,
		"0":     false,
		" 0 ":   false,
		"00":    false,
		"1":     true,
		"2":     true,
		"-1":    true,
		"true":  true,
		"t":     true,
		"false": false,
		"FALSE": false,
		"yes":   true,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseFlag(in), "%q", in)
	}
}

func TestNormalizeSpace(t *testing.T) {
	assert.Equal(t, "kota bandung", NormalizeSpace("  kota \t bandung  "))
	assert.Equal(t, "", NormalizeSpace("   "))
}
