// Package logger builds *slog.Logger instances with functional options,
// attribute helpers, and transparent injection of values stored in
// context.Context (for example the request id).
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "sourcefeed"),
//	    logger.WithContextExtractors(requestid.LogExtractor),
//	)
//	log.InfoContext(ctx, "feed served", logger.FeedMode("custom"), logger.Count(12))
package logger
