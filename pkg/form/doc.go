// Package form checks submitted web forms field by field.
//
// Each Field is classified by its name into a Category using fixed alias
// tables ("fname", "first_name" and "firstName" are all FirstName; matching
// ignores case). Every category has one check: presence for most, an email
// shape for Email, the checkbox state for Terms, a 3-4 digit code for CCV and
// the card shape followed by the Luhn checksum for CreditCard. Fields whose
// names match no category are ignored.
//
//	res, err := form.Validate([]form.Field{
//	    {Name: "email", Value: "bad"},
//	    {Name: "zip", Value: ""},
//	})
//	if err != nil {
//	    return err // a field had no name
//	}
//	if !res.OK() {
//	    fmt.Print(form.Summary(res))
//	}
//
// A Checker built with New can swap the message catalogue or language,
// check state, zip and phone values for shape (WithStrictFormats), or check
// phone numbers against a national numbering plan (WithPhoneRegion).
//
// Each Check call builds its own Result with a fresh pass identifier; a
// Checker keeps no state between calls and may be shared across goroutines.
package form
