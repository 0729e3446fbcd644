package sanitizer

import "strings"

// RemoveCommas strips every comma.
func RemoveCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// AddCommas inserts thousands separators. It repeatedly finds the first run of
// four or more digits (with an optional leading minus) and puts a comma before
// its last three digits, until no such run remains.
//
//	AddCommas("1234567")    // "1,234,567"
//	AddCommas("-1234.56")   // "-1,234.56"
func AddCommas(s string) string {
	for {
		loc := commaGroupRegex.FindStringSubmatchIndex(s)
		if loc == nil {
			return s
		}
		// loc[3] is the end of the leading group, which is where the comma goes.
		s = s[:loc[3]] + "," + s[loc[3]:]
	}
}

// RemoveCurrency strips currency formatting: "$", parentheses and commas.
// A parenthesised (negative) amount gets a leading minus instead.
//
//	RemoveCurrency("($1,234.56)") // "-1234.56"
func RemoveCurrency(s string) string {
	minus := ""
	if strings.Contains(s, "(") {
		minus = "-"
	}

	s = currencySymbolsRegex.ReplaceAllString(s, "")
	return minus + s
}

// AddCurrency formats a plain amount with exactly two decimals as US currency.
// Negative amounts are wrapped in parentheses. Any other input is returned
// unchanged.
//
//	AddCurrency("1234.56")  // "$1,234.56"
//	AddCurrency("-1234.56") // "($1,234.56)"
//	AddCurrency("12.5")     // "12.5"
func AddCurrency(s string) string {
	if !plainAmountRegex.MatchString(s) {
		return s
	}

	s = AddCommas(s)
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return "($" + rest + ")"
	}
	return "$" + s
}
