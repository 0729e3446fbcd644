// Package validator provides the format predicates used to check web form
// input: US currency, 12-hour time, state codes, SSN, email, US phone, numeric
// and integer values, ZIP codes, card numbers (shape and Luhn checksum), card
// verification codes, US dates and caller-supplied patterns.
//
// Every check comes in two flavours:
//
//   - a pure predicate, IsX(value) bool, total over all strings;
//   - a Rule constructor, ValidX(field, value) Rule, carrying an error message
//     and a translation key ("validation.<name>") for reporting.
//
// Rules are evaluated with Apply, which aggregates failures into a
// ValidationErrors slice that satisfies the error interface:
//
//	err := validator.Apply(
//	    validator.Required("first_name", first),
//	    validator.ValidEmail("email", email),
//	    validator.ValidUSZip("zip", zip),
//	    validator.ValidCreditCardChecksum("card_number", card),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // report verrs.Get(field)
//	    }
//	}
//
// # Totality
//
// Predicates never panic; a value that does not match simply fails. Apply
// additionally runs each Rule's Check behind a recover guard, so a custom
// Rule that panics is reported as a failed validation instead of crashing the
// caller.
//
// # Caller patterns
//
// MatchesPattern and Pattern take a pattern from the caller. Those go through
// package pattern, which bounds their size and reports bad syntax as
// pattern.ErrInvalidPattern instead of silently matching nothing.
//
// # Scope
//
// These checks are advisory shape checks for presentation-layer feedback.
// They do not replace server-side validation.
package validator
