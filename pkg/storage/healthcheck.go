package storage

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/s3ref/pkg/health"
)

// Healthcheck returns a probe that checks the bucket is reachable with the client's credentials.
func Healthcheck(api BucketHeader, bucket string) health.CheckFunc {
	return func(ctx context.Context) error {
		if _, err := api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}); err != nil {
			return wrapS3Error(err, ErrBucketProbe)
		}
		return nil
	}
}
