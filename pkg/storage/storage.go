package storage

import (
	"context"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/s3ref/pkg/awsauth"
)

// ObjectGetter fetches objects. *s3.Client satisfies it.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Presigner signs GET requests. *s3.PresignClient satisfies it.
type Presigner interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// BucketHeader probes buckets. *s3.Client satisfies it.
type BucketHeader interface {
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// API is what the resolver needs from a client. *Client satisfies it.
type API interface {
	ObjectGetter
	Presigner
}

// Config holds client construction parameters. Empty fields are filled from
// EnvConfig, then from defaults.
type Config struct {
	// Credentials are used only when no managed credentials are available.
	Credentials awsauth.Explicit

	// Region is the signing region (default: us-east-1).
	Region string

	// Endpoint overrides the service endpoint for S3-compatible backends.
	Endpoint string

	// PathStyle puts the bucket in the path instead of the host name.
	PathStyle bool
}

// Environment variables read by NewClient.
const (
	EnvRegion    = "S3_region"
	EnvEndpoint  = "S3_ENDPOINT"
	EnvPathStyle = "S3_PATH_STYLE"
)

// EnvConfig is the environment part of the client configuration.
type EnvConfig struct {
	Region    string `env:"S3_region"`
	Endpoint  string `env:"S3_ENDPOINT"`
	PathStyle bool   `env:"S3_PATH_STYLE"`
}

// Default configuration values.
const (
	DefaultRegion = "us-east-1"
	DefaultExpiry = time.Hour
)
