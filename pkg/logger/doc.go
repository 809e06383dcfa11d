// Package logger builds *slog.Logger instances for the sniff services and
// libraries, with functional options, attribute helpers and transparent
// injection of values stored in context.Context.
//
// New creates a text or JSON handler, applies static attributes and wraps it
// with ContextHandler, which runs registered ContextExtractor callbacks on
// every record. NewFromConfig does the same from a Config loaded with
// pkg/config (LOG_LEVEL, LOG_FORMAT, APP_ENV).
//
// Attribute helpers (Error, Component, Axis, Feature, Client, ...) keep key
// names consistent across packages. Libraries that accept an optional logger
// fall back to Discard.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "sniff"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "detected", logger.Client(label))
package logger
