// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Petrenko

package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmail_Valid(t *testing.T) {
	valid := []string{
		"a@b.com",
		"user@example.com",
		"first.last@sub.example.org",
		"user+tag@example.co.uk",
	}

	for _, raw := range valid {
		t.Run(raw, func(t *testing.T) {
			email, err := ParseEmail(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, email.String())
			assert.False(t, email.IsZero())
		})
	}
}

func TestParseEmail_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@nodot",
		"user@.com",
		"user@com.",
		"user@exa mple.com",
		"us er@example.com",
		"user@ex@ample.com",
		"us@er@example.com",
	}

	for _, raw := range invalid {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseEmail(raw)
			assert.ErrorIs(t, err, ErrInvalidEmail)
		})
	}
}

// TestParseEmail_RequiresAtAndDot exercises the two format laws over a spread
// of generated strings: anything without an '@' or without a '.' in the
// domain must be rejected.
func TestParseEmail_RequiresAtAndDot(t *testing.T) {
	alphabet := []string{"a", ".", "@", "x.y", "ab", "-"}

	var grow func(prefix string, depth int)
	grow = func(prefix string, depth int) {
		if depth == 0 {
			_, err := ParseEmail(prefix)
			if !strings.Contains(prefix, "@") {
				assert.Error(t, err, "accepted %q without '@'", prefix)
			}
			at := strings.LastIndexByte(prefix, '@')
			if at >= 0 && !strings.Contains(prefix[at+1:], ".") {
				assert.Error(t, err, "accepted %q without '.' in domain", prefix)
			}
			return
		}
		for _, part := range alphabet {
			grow(prefix+part, depth-1)
		}
	}
	grow("", 4)
}

func TestEmail_ValueEquality(t *testing.T) {
	a, err := ParseEmail("same@example.com")
	require.NoError(t, err)
	b, err := ParseEmail("same@example.com")
	require.NoError(t, err)

	assert.Equal(t, a, b)

	// usable as a map key
	m := map[Email]bool{a: true}
	assert.True(t, m[b])
}
