// Package s3ref turns references to objects in S3-compatible storage into
// URLs a browser or a downstream service can open.
//
// A reference is written as s3://bucket/key. It resolves either to a
// time-limited presigned GET URL or, with presigning disabled, to an inline
// data:<content-type>;base64,<payload> URL. Object metadata can be fetched
// without the body.
//
// # Quick Start
//
//	client, err := s3ref.NewClient(ctx, s3ref.Config{
//	    Region:   "eu-central-1",
//	    Endpoint: os.Getenv("S3_ENDPOINT"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	res, err := s3ref.ResolveURL(ctx, "s3://media/photos/cat.jpg", client, true, time.Hour)
//	if err != nil {
//	    return err
//	}
//	if res.Degraded() {
//	    log.Warn("presign failed", logger.Error(res.Err))
//	}
//	fmt.Println(res.URL)
//
// # Credentials
//
// Managed execution-role credentials from the SDK default chain win. Without
// them, Config.Credentials is used and each empty field falls back to
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY or AWS_SESSION_TOKEN.
//
// # Packages
//
//   - pkg/storage: client factory, resolver, metadata, batch resolution, health probe
//   - pkg/awsauth: credential resolution
//   - pkg/env: configuration lookup
//   - pkg/logger: slog setup with secret truncation and Sentry
//   - pkg/health: parallel health checks
package s3ref
