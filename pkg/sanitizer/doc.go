// Package sanitizer reformats user-entered form values for storage and
// display.
//
// The helpers fall into two groups:
//
//   - Trimming: LeftTrim, RightTrim and TrimAll strip Unicode whitespace
//     (including the byte-order mark) from the ends of a value.
//
//   - Amounts: AddCommas, RemoveCommas, AddCurrency and RemoveCurrency convert
//     between plain amounts like "1234.56" and their display form "$1,234.56".
//     Negative amounts are shown in accounting parentheses: "($1,234.56)".
//
// RemoveCharacters deletes every match of a caller-supplied pattern. It is the
// only helper that returns an error, because the pattern may not compile.
//
// Apply and Compose chain string transforms into a pipeline:
//
//	display := sanitizer.Compose(sanitizer.TrimAll, sanitizer.AddCurrency)
//	display(" 1234.56 ") // "$1,234.56"
//
// All helpers are stateless and safe for concurrent use.
package sanitizer
