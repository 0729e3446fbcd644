package validator

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Postal codes accepted by IsState. "NB" (not "NE") is kept for Nebraska
	// so forms built against the historical list keep validating.
	usStates = map[string]bool{
		"AK": true, "AL": true, "AR": true, "AZ": true, "CA": true, "CO": true,
		"CT": true, "DC": true, "DE": true, "FL": true, "GA": true, "HI": true,
		"IA": true, "ID": true, "IL": true, "IN": true, "KS": true, "KY": true,
		"LA": true, "MA": true, "MD": true, "ME": true, "MI": true, "MN": true,
		"MO": true, "MS": true, "MT": true, "NB": true, "NC": true, "ND": true,
		"NH": true, "NJ": true, "NM": true, "NV": true, "NY": true, "OH": true,
		"OK": true, "OR": true, "PA": true, "RI": true, "SC": true, "SD": true,
		"TN": true, "TX": true, "UT": true, "VA": true, "VT": true, "WA": true,
		"WI": true, "WV": true, "WY": true,
	}

	ssnRegex = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)

	usZipRegex = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

	// Not anchored: any value containing a phone-shaped run passes.
	usPhoneRegex = regexp.MustCompile(`(\(?\d{3}\)?)(-| )?\d{3}(-| )?\d{4}`)

	// RE2 has no back-references, so both separators are captured and compared.
	usDateRegex = regexp.MustCompile(`^(\d{1,2})([-/.])(\d{1,2})([-/.])(\d{4})$`)

	// Days per month; February is handled separately.
	daysInMonth = [13]int{0, 31, 0, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// IsState reports whether s is a two-letter US state code, case-insensitive.
func IsState(s string) bool {
	return len(s) == 2 && usStates[strings.ToUpper(s)]
}

// IsSSN reports whether s is formatted as DDD-DD-DDDD.
func IsSSN(s string) bool {
	return ssnRegex.MatchString(s)
}

// IsUSZip reports whether s is a five digit ZIP or ZIP+4 code.
func IsUSZip(s string) bool {
	return usZipRegex.MatchString(s)
}

// IsUSPhone reports whether s contains a US phone number such as
// (999) 999-9999, (999)999-9999 or 999-999-9999. Surrounding text is allowed.
func IsUSPhone(s string) bool {
	return usPhoneRegex.MatchString(s)
}

// IsUSDate reports whether s is a calendar date written M/D/YYYY. The
// separator may be "/", "-" or "." but must be the same both times. Leap
// years follow the Gregorian rule.
func IsUSDate(s string) bool {
	m := usDateRegex.FindStringSubmatch(s)
	if m == nil || m[2] != m[4] {
		return false
	}

	// The regex bounds every part to at most four digits, so Atoi cannot fail.
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[3])
	year, _ := strconv.Atoi(m[5])

	if month < 1 || month > 12 || day < 1 {
		return false
	}

	if month != 2 {
		return day <= daysInMonth[month]
	}

	if isLeapYear(year) {
		return day <= 29
	}
	return day <= 28
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ValidState validates a two-letter US state code.
func ValidState(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsState(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a two-letter US state code",
			TranslationKey: "validation.state",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidSSN validates a social security number formatted as 999-99-9999.
func ValidSSN(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsSSN(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be formatted as 999-99-9999",
			TranslationKey: "validation.ssn",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidUSZip validates a 5 or 9 digit ZIP code.
func ValidUSZip(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsUSZip(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a ZIP code like 99999 or 99999-9999",
			TranslationKey: "validation.us_zip",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidUSPhone validates a US phone number.
func ValidUSPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsUSPhone(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a phone number like (999) 999-9999",
			TranslationKey: "validation.us_phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidUSDate validates a M/D/YYYY calendar date.
func ValidUSDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsUSDate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid date like 12/31/2024",
			TranslationKey: "validation.us_date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
