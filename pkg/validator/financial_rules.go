package validator

import "regexp"

var (
	// $1,234.56 or ($1,234.56); parentheses mark a negative amount.
	currencyRegex = regexp.MustCompile(`^(\$\d{1,3}(,\d{3})*\.\d{2}|\(\$\d{1,3}(,\d{3})*\.\d{2}\))$`)

	// 4-4-4-4 grouped, 15-16 bare digits, or 4-6-5 grouped (Amex).
	creditCardRegex = regexp.MustCompile(`^((\d{4}[- ]){3}\d{4}|\d{15,16}|\d{4}[- ]\d{6}[- ]\d{5})$`)

	ccvRegex = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// IsCurrency reports whether s is a US currency amount with "$", comma
// grouping and two decimals, optionally wrapped in parentheses.
func IsCurrency(s string) bool {
	return currencyRegex.MatchString(s)
}

// IsCreditCard reports whether s has the shape of a 15 or 16 digit card number.
// It does not verify the check digit; see IsLuhn.
func IsCreditCard(s string) bool {
	return creditCardRegex.MatchString(s)
}

// IsLuhn reports whether s is a non-empty string of ASCII digits passing the
// Luhn mod-10 checksum. The rightmost digit is taken as is and every second
// digit to its left is doubled, subtracting 9 when the product exceeds 9.
func IsLuhn(s string) bool {
	if s == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}

		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// IsCCV reports whether s is a 3 or 4 digit card verification code.
func IsCCV(s string) bool {
	return ccvRegex.MatchString(s)
}

// ValidCurrency validates a formatted US currency amount.
func ValidCurrency(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsCurrency(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a currency amount like $1,234.56",
			TranslationKey: "validation.currency",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidCreditCard validates the shape of a credit card number.
func ValidCreditCard(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsCreditCard(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a 15 or 16 digit card number",
			TranslationKey: "validation.credit_card_format",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidCreditCardChecksum validates a credit card number using the Luhn algorithm.
// Separators are not stripped: the value must be digits only.
func ValidCreditCardChecksum(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsLuhn(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid credit card number",
			TranslationKey: "validation.credit_card",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidCCV validates a card verification code.
func ValidCCV(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsCCV(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a 3 or 4 digit security code",
			TranslationKey: "validation.ccv",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
