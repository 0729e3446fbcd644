package validator

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// IsPhoneNumber reports whether s is a dialable number in the given region's
// numbering plan (ISO 3166-1 alpha-2, e.g. "US"). Unlike IsUSPhone it checks
// area codes and exchange ranges against the plan's metadata.
func IsPhoneNumber(s, region string) bool {
	region = strings.ToUpper(strings.TrimSpace(region))
	if strings.TrimSpace(s) == "" || region == "" {
		return false
	}

	num, err := phonenumbers.Parse(s, region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumberForRegion(num, region)
}

// ValidPhoneNumber validates a phone number against a region's numbering plan.
func ValidPhoneNumber(field, value, region string) Rule {
	return Rule{
		Check: func() bool {
			return IsPhoneNumber(value, region)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field":  field,
				"region": region,
			},
		},
	}
}
