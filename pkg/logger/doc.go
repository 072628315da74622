// Package logger builds slog loggers for the s3ref packages.
//
// Loggers produced here write JSON, truncate secret attributes (secret keys,
// session tokens) to four characters plus "...", and add the bucket and key
// stored with WithObject to every record logged with that context.
//
//	log := logger.New(logger.WithLevel(slog.LevelDebug))
//	ctx = logger.WithObject(ctx, "bucket-a", "path/to/key")
//	log.InfoContext(ctx, "resolved")
//	// {"level":"INFO","msg":"resolved","object":{"bucket":"bucket-a","key":"path/to/key"}}
//
// NewWithSentry also forwards warnings and errors to Sentry. An empty DSN
// keeps it local, so the same code path works in development.
//
// NewNope is the default for library code that was given no logger.
package logger
