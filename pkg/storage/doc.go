// Package storage resolves references to objects in S3-compatible storage.
//
// A reference is a URL whose host is the bucket and whose path is the key:
//
//	s3://bucket-a/path/to/key
//
// # Clients
//
// NewClient resolves credentials through awsauth (managed execution-role
// credentials first, then explicit values, then AWS_* variables) and builds
// an S3 client and presigner bound to them:
//
//	client, err := storage.NewClient(ctx, storage.Config{
//		Region:   "eu-central-1",
//		Endpoint: "http://localhost:9000", // MinIO, rustfs, ...
//	})
//
// Region falls back to S3_region and then us-east-1. Endpoint falls back to
// S3_ENDPOINT and then the provider default.
//
// # Resolving
//
// A Resolver presigns GET URLs by default:
//
//	r := storage.NewResolver(client, storage.WithLogger(log))
//	res, err := r.Resolve(ctx, "s3://bucket-a/path/to/key")
//	if err != nil {
//		return err
//	}
//	if res.Degraded() {
//		// presigning failed, res.URL is the original reference, res.Err says why
//	}
//
// With WithDataURL the object is fetched and inlined as
// data:<content-type>;base64,<payload>. Fetch errors are returned; use
// errors.Is with ErrNotFound or ErrAccessDenied, or errors.As with smithy
// types to inspect them.
//
// ResolveAll resolves many references with one client and bounded concurrency.
//
// # Metadata
//
// GetMetadata and BlobMetadata return the attributes of an object without
// its body:
//
//	md, err := storage.GetMetadata(ctx, client, "bucket-a", "path/to/key")
//	fmt.Println(md.ContentType(), md.ContentLength())
//
// # Configuration
//
// Environment variables:
//
//	AWS_ACCESS_KEY_ID      explicit credential fallback
//	AWS_SECRET_ACCESS_KEY  explicit credential fallback
//	AWS_SESSION_TOKEN      explicit credential fallback
//	S3_region              region (default: us-east-1)
//	S3_ENDPOINT            endpoint override
//	S3_PATH_STYLE          path-style addressing with a custom endpoint
package storage
