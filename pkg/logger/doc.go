// Package logger builds *slog.Logger values for formcheck binaries and
// keeps attribute names consistent across packages.
//
// New takes functional options for the format (text or json), level, output,
// static attributes and context extractors. Extractors run on every record
// and copy request-scoped values, such as the validation pass identifier,
// from the context into the record:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "formcheck"),
//	    logger.WithContextExtractors(logger.PassIDExtractor()),
//	)
//
//	ctx = logger.WithPassID(ctx, id)
//	log.InfoContext(ctx, "form checked", logger.FindingCount(n))
//
// Attribute helpers live in attr.go. Error and Errors return an empty Attr
// for nil errors, so they can be passed unconditionally:
//
//	log.Info("messages loaded", logger.Error(err))
//
// Library packages accept a *slog.Logger and default to Discard.
package logger
