package storage

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Sentinel errors for storage operations.
var (
	// Configuration errors.
	ErrInvalidConfig = errors.New("storage: invalid configuration")

	// S3 operation errors.
	ErrNotFound      = errors.New("storage: object not found")
	ErrAccessDenied  = errors.New("storage: access denied")
	ErrGetFailed     = errors.New("storage: get object failed")
	ErrReadFailed    = errors.New("storage: read object body failed")
	ErrPresignFailed = errors.New("storage: presign failed")
	ErrBucketProbe   = errors.New("storage: bucket probe failed")
)

// wrapS3Error tags err with the matching sentinel, or fallback when nothing matches.
// Both the sentinel and the SDK error stay in the chain, so callers may use
// errors.Is with sentinels and errors.As with smithy or s3 types.
func wrapS3Error(err error, fallback error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %w", ErrAccessDenied, err)
		}
	}

	var notFound *types.NoSuchKey
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
