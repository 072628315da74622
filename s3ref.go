package s3ref

import (
	"context"
	"time"

	"github.com/dmitrymomot/s3ref/pkg/awsauth"
	"github.com/dmitrymomot/s3ref/pkg/storage"
)

// Type aliases - public API
type (
	// Client is an S3 client paired with a presigner.
	Client = storage.Client

	// Config holds client construction parameters.
	Config = storage.Config

	// Credentials are caller-supplied credential fields.
	Credentials = awsauth.Explicit

	// ObjectRef is a bucket and key pair.
	ObjectRef = storage.ObjectRef

	// Resolved is the outcome of resolving a reference.
	Resolved = storage.Resolved

	// Metadata holds object attributes without the body.
	Metadata = storage.Metadata

	// API is the client surface the resolver needs.
	API = storage.API
)

// NewClient resolves credentials and builds a client. See storage.NewClient.
func NewClient(ctx context.Context, cfg Config, opts ...storage.ClientOption) (*Client, error) {
	return storage.NewClient(ctx, cfg, opts...)
}

// ResolveURL resolves raw into a presigned URL valid for expiresIn (presign
// true) or an inline data URL (presign false). A zero expiresIn means one hour.
//
// Example:
//
//	client, err := s3ref.NewClient(ctx, s3ref.Config{})
//	if err != nil {
//	    return err
//	}
//	res, err := s3ref.ResolveURL(ctx, "s3://bucket/key.png", client, true, 0)
func ResolveURL(ctx context.Context, raw string, client API, presign bool, expiresIn time.Duration) (Resolved, error) {
	return storage.NewResolver(client).Resolve(ctx, raw,
		storage.WithPresign(presign),
		storage.WithExpiry(expiresIn),
	)
}

// BlobMetadata returns the attributes of bucket/key. A nil client is built from cfg.
func BlobMetadata(ctx context.Context, key, bucket string, client storage.ObjectGetter, cfg Config) (Metadata, error) {
	return storage.BlobMetadata(ctx, key, bucket, client, cfg)
}

// ParseRef splits an s3://bucket/key reference.
func ParseRef(raw string) ObjectRef {
	return storage.ParseRef(raw)
}
