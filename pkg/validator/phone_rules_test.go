package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

func TestIsPhoneNumber(t *testing.T) {
	t.Parallel()

	t.Run("valid US numbers", func(t *testing.T) {
		for _, v := range []string{"(650) 253-0000", "650-253-0000", "+1 650 253 0000", "6502530000"} {
			assert.True(t, validator.IsPhoneNumber(v, "US"), "expected valid: %q", v)
		}
	})

	t.Run("region is case-insensitive", func(t *testing.T) {
		assert.True(t, validator.IsPhoneNumber("650-253-0000", "us"))
	})

	t.Run("rejects numbers outside the plan", func(t *testing.T) {
		for _, v := range []string{"", "123-456-7890", "555-1234", "not a number"} {
			assert.False(t, validator.IsPhoneNumber(v, "US"), "expected invalid: %q", v)
		}
	})

	t.Run("rejects numbers from another region", func(t *testing.T) {
		assert.False(t, validator.IsPhoneNumber("+44 20 7031 3000", "US"))
	})

	t.Run("empty region", func(t *testing.T) {
		assert.False(t, validator.IsPhoneNumber("650-253-0000", ""))
	})
}

func TestValidPhoneNumber(t *testing.T) {
	t.Parallel()

	rule := validator.ValidPhoneNumber("phone", "650-253-0000", "US")
	assert.True(t, rule.Passes())
	assert.Equal(t, "validation.phone", rule.Error.TranslationKey)
	assert.Equal(t, "US", rule.Error.TranslationValues["region"])

	assert.False(t, validator.ValidPhoneNumber("phone", "123", "US").Passes())
}
