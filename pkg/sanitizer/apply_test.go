package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formcheck/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "no transforms returns input",
			input:      " 1,234 ",
			transforms: nil,
			expected:   " 1,234 ",
		},
		{
			name:       "single transform",
			input:      "  1,234  ",
			transforms: []func(string) string{sanitizer.TrimAll},
			expected:   "1,234",
		},
		{
			name:  "storage normalisation chain",
			input: "  ($1,234.56) ",
			transforms: []func(string) string{
				sanitizer.TrimAll,
				sanitizer.RemoveCurrency,
			},
			expected: "-1234.56",
		},
		{
			name:  "display formatting chain",
			input: " -1234.56",
			transforms: []func(string) string{
				sanitizer.TrimAll,
				sanitizer.AddCurrency,
			},
			expected: "($1,234.56)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	toStorage := sanitizer.Compose(sanitizer.TrimAll, sanitizer.RemoveCurrency)
	toDisplay := sanitizer.Compose(sanitizer.TrimAll, sanitizer.AddCurrency)

	assert.Equal(t, "1234567.00", toStorage(" $1,234,567.00 "))
	assert.Equal(t, "$1,234,567.00", toDisplay(toStorage(" $1,234,567.00 ")))
	assert.Equal(t, "($5.00)", toDisplay(toStorage("($5.00)")))
}
