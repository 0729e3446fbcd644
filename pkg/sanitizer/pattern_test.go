package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/pattern"
	"github.com/dmitrymomot/formcheck/pkg/sanitizer"
)

func TestRemoveCharacters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expr     string
		expected string
	}{
		{"strips whitespace", " sfdf  dfd", `\s*`, "sfdfdfd"},
		{"case-insensitive", "AbCabc", `b`, "ACac"},
		{"every match removed", "555-123-4567", `\D`, "5551234567"},
		{"character class", "(555) 123", `[()\s]`, "555123"},
		{"no match", "hello", `z`, "hello"},
		{"empty pattern", "hello", ``, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := sanitizer.RemoveCharacters(tt.input, tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("invalid pattern fails fast", func(t *testing.T) {
		got, err := sanitizer.RemoveCharacters("abc", `[a-`)
		assert.ErrorIs(t, err, pattern.ErrInvalidPattern)
		assert.Equal(t, "abc", got)
	})

	t.Run("oversized pattern rejected", func(t *testing.T) {
		_, err := sanitizer.RemoveCharacters("abc", strings.Repeat("a", pattern.DefaultMaxLength+1))
		assert.ErrorIs(t, err, pattern.ErrPatternTooLong)
	})
}
