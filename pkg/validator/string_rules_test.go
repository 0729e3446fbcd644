package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

func TestIsNotEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsNotEmpty("a"))
	assert.True(t, validator.IsNotEmpty("  John  "))
	assert.True(t, validator.IsNotEmpty("0"))

	assert.False(t, validator.IsNotEmpty(""))
	assert.False(t, validator.IsNotEmpty("   "))
	assert.False(t, validator.IsNotEmpty("\t\r\n"))
	assert.False(t, validator.IsNotEmpty(" \ufeff"))
}

func TestRequired(t *testing.T) {
	t.Parallel()

	t.Run("passes for content", func(t *testing.T) {
		rule := validator.Required("first_name", "Ada")
		assert.True(t, rule.Passes())
		assert.Equal(t, "first_name", rule.Error.Field)
		assert.Equal(t, "field is required", rule.Error.Message)
		assert.Equal(t, "validation.required", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "first_name"}, rule.Error.TranslationValues)
	})

	t.Run("fails for whitespace only", func(t *testing.T) {
		assert.False(t, validator.Required("first_name", "   ").Passes())
	})
}
