package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// A run of digits whose last three are not yet separated.
	commaGroupRegex = regexp.MustCompile(`(-?[0-9]+)([0-9]{3})`)

	// Currency decoration removed by RemoveCurrency.
	currencySymbolsRegex = regexp.MustCompile(`[$(),]`)

	// Amounts AddCurrency knows how to format.
	plainAmountRegex = regexp.MustCompile(`^-?[0-9]+\.[0-9]{2}$`)
)
