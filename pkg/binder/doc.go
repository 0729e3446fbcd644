// Package binder decodes submitted forms into the ordered []form.Field that
// form.Checker consumes.
//
// Three input formats are supported:
//
//   - yaml: a list of {name, value, checked} entries, or a document with a
//     top-level fields list;
//   - json: the same shapes as yaml;
//   - urlencoded: a body as sent by an HTML form,
//     "first_name=Ada&email=ada%40example.com&terms=on".
//
// Field order is preserved in every format, so findings come back in the
// order the form presented them. For urlencoded input a field counts as
// checked when its value is on, true, 1, yes or checked, matching what
// browsers send for ticked checkboxes.
//
// Browsers leave unticked checkboxes out of a urlencoded body entirely. An
// absent field is never checked, so a "terms not checked" finding can only
// come from urlencoded input that names the box with an unchecked value such
// as "terms=" or "terms=off". Use yaml or json input, where every field is
// listed with its checked state, when the box may be missing.
//
// FormatFromPath and FormatFromContentType pick a format from a file name
// or a Content-Type header:
//
//	format, err := binder.FormatFromPath("signup.yaml")
//	if err != nil {
//	    return err
//	}
//	fields, err := binder.Decode(f, format)
//
// Input is capped at MaxInputSize bytes.
//
// # Error Handling
//
//   - ErrUnsupportedFormat: the format, extension or media type is unknown;
//   - ErrMalformedInput: the input cannot be decoded into fields;
//   - ErrInputTooLarge: the input exceeds MaxInputSize.
package binder
