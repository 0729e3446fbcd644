package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

func TestIsCurrency(t *testing.T) {
	t.Parallel()

	valid := []string{"$0.00", "$1.23", "$123.45", "$1,234.56", "$12,345,678.90", "($1,234.56)", "($0.99)"}
	for _, v := range valid {
		assert.True(t, validator.IsCurrency(v), "expected valid currency: %q", v)
	}

	invalid := []string{
		"",
		"1,234.56",      // missing $
		"$1,234.5",      // one decimal
		"$1,234.567",    // three decimals
		"$1234.56",      // missing grouping
		"$1,23.45",      // short group
		"($1,234.56",    // unbalanced
		"$1,234.56)",    // unbalanced
		"-$1,234.56",    // minus sign form
		"$ 1.00",        // space
		"$1,234.56 USD", // trailing text
	}
	for _, v := range invalid {
		assert.False(t, validator.IsCurrency(v), "expected invalid currency: %q", v)
	}
}

func TestIsCreditCard(t *testing.T) {
	t.Parallel()

	valid := []string{
		"4532015112830366",    // 16 digits
		"378282246310005",     // 15 digits
		"4532-0151-1283-0366", // dashes
		"4532 0151 1283 0366", // spaces
		"3782-822463-10005",   // 4-6-5
		"3782 822463 10005",
	}
	for _, v := range valid {
		assert.True(t, validator.IsCreditCard(v), "expected valid card shape: %q", v)
	}

	invalid := []string{
		"",
		"4532",
		"45320151128303",     // 14 digits
		"45320151128303661",  // 17 digits
		"4532-0151-1283-036", // short last group
		"4532_0151_1283_0366",
		"4532-0151-1283-0366-1111",
		"card 4532015112830366",
		"abcd-efgh-ijkl-mnop",
	}
	for _, v := range invalid {
		assert.False(t, validator.IsCreditCard(v), "expected invalid card shape: %q", v)
	}
}

func TestIsLuhn(t *testing.T) {
	t.Parallel()

	t.Run("known test numbers", func(t *testing.T) {
		assert.True(t, validator.IsLuhn("4532015112830366"))
		assert.False(t, validator.IsLuhn("4532015112830367"))
	})

	t.Run("odd and even lengths", func(t *testing.T) {
		assert.True(t, validator.IsLuhn("4111111111111111"), "16 digit visa")
		assert.True(t, validator.IsLuhn("378282246310005"), "15 digit amex")
		assert.True(t, validator.IsLuhn("79927398713"), "11 digit reference value")
		assert.False(t, validator.IsLuhn("79927398710"))
		assert.True(t, validator.IsLuhn("0"))
		assert.True(t, validator.IsLuhn("18"))
		assert.False(t, validator.IsLuhn("81"))
	})

	t.Run("rejects non-digits and empty", func(t *testing.T) {
		assert.False(t, validator.IsLuhn(""))
		assert.False(t, validator.IsLuhn("4532-0151-1283-0366"))
		assert.False(t, validator.IsLuhn("4532 0151 1283 0366"))
		assert.False(t, validator.IsLuhn("abc"))
		assert.False(t, validator.IsLuhn("４５３２"), "full-width digits are not ASCII digits")
	})
}

func TestIsCCV(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"123", "0000", "999"} {
		assert.True(t, validator.IsCCV(v), "expected valid ccv: %q", v)
	}
	for _, v := range []string{"", "12", "12345", "12a", " 123", "12 3"} {
		assert.False(t, validator.IsCCV(v), "expected invalid ccv: %q", v)
	}
}

func TestFinancialRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		pass bool
		key  string
	}{
		{"currency ok", validator.ValidCurrency("amount", "$1,000.00"), true, "validation.currency"},
		{"currency bad", validator.ValidCurrency("amount", "1000"), false, "validation.currency"},
		{"card shape ok", validator.ValidCreditCard("card", "4111 1111 1111 1111"), true, "validation.credit_card_format"},
		{"card shape bad", validator.ValidCreditCard("card", "4111"), false, "validation.credit_card_format"},
		{"checksum ok", validator.ValidCreditCardChecksum("card", "4111111111111111"), true, "validation.credit_card"},
		{"checksum bad", validator.ValidCreditCardChecksum("card", "4111111111111112"), false, "validation.credit_card"},
		{"ccv ok", validator.ValidCCV("ccv", "123"), true, "validation.ccv"},
		{"ccv bad", validator.ValidCCV("ccv", "1"), false, "validation.ccv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.pass, tt.rule.Passes())
			assert.Equal(t, tt.key, tt.rule.Error.TranslationKey)
			assert.Equal(t, tt.rule.Error.Field, tt.rule.Error.TranslationValues["field"])

			err := validator.Apply(tt.rule)
			if tt.pass {
				assert.NoError(t, err)
				return
			}
			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.NotEmpty(t, verrs[0].Message)
		})
	}
}
