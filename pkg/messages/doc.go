// Package messages holds the user-facing text of form validation: per-field
// findings, the consolidated summary header and the generic rule messages of
// package validator.
//
// A Catalog maps a language and a dot-separated key to a message template.
// Templates use named placeholders in the form %{name}:
//
//	cat := messages.Default()
//	cat.T("en", "validation.required", "field", "Email")
//	// "Email is required"
//
// Plural forms live under .zero, .one and .other subkeys and are picked by N:
//
//	cat.N("en", "form.summary", len(findings))
//
// Catalogs are loaded from a Source. MapSource, FileSource and FSSource cover
// in-memory maps, single files and directories (including embed.FS). Files
// are parsed by a Parser; YAML and JSON are supported and ParserFor picks one
// from the file extension.
//
// Default returns a fresh copy of the embedded English catalogue. Merge
// overlays another catalogue on top of it, so an application can replace any
// wording without restating the rest:
//
//	custom, err := messages.New(ctx, messages.FileSource(messages.YAMLParser{}, "messages.yaml"))
//	if err != nil {
//		return err
//	}
//	cat := messages.Default()
//	cat.Merge(custom)
//
// A key that cannot be resolved renders as the key itself with placeholders
// substituted. Td takes an explicit fallback instead.
package messages
