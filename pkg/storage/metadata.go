package storage

import (
	"context"
	"reflect"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Metadata holds the attributes S3 returned for an object, keyed by the SDK
// field names (ContentType, ETag, LastModified, Metadata, ...). Pointers are
// dereferenced and absent attributes are left out. Body and the transport
// metadata are never included.
type Metadata map[string]any

// Keys that never appear in Metadata.
const (
	fieldBody             = "Body"
	fieldResultMetadata   = "ResultMetadata"
	fieldResponseMetadata = "ResponseMetadata"
)

// ContentType returns the ContentType attribute or "".
func (m Metadata) ContentType() string {
	s, _ := m["ContentType"].(string)
	return s
}

// ContentLength returns the ContentLength attribute or 0.
func (m Metadata) ContentLength() int64 {
	n, _ := m["ContentLength"].(int64)
	return n
}

// LastModified returns the LastModified attribute or the zero time.
func (m Metadata) LastModified() time.Time {
	t, _ := m["LastModified"].(time.Time)
	return t
}

// ETag returns the ETag attribute or "".
func (m Metadata) ETag() string {
	s, _ := m["ETag"].(string)
	return s
}

// GetMetadata fetches the object once and returns its attributes.
// The body is closed without being read. Fetch errors are returned wrapped
// with ErrNotFound, ErrAccessDenied or ErrGetFailed.
func GetMetadata(ctx context.Context, api ObjectGetter, bucket, key string) (Metadata, error) {
	out, err := api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrGetFailed)
	}
	if out.Body != nil {
		_ = out.Body.Close()
	}
	return metadataOf(out), nil
}

// BlobMetadata is GetMetadata for callers that may not hold a client yet.
// When client is nil (including a nil *Client), one is built from cfg and
// opts as NewClient does; pass a client when looking up many objects.
func BlobMetadata(ctx context.Context, key, bucket string, client ObjectGetter, cfg Config, opts ...ClientOption) (Metadata, error) {
	if typed, ok := client.(*Client); client == nil || (ok && typed == nil) {
		c, err := NewClient(ctx, cfg, opts...)
		if err != nil {
			return nil, err
		}
		client = c
	}
	return GetMetadata(ctx, client, bucket, key)
}

func metadataOf(out *s3.GetObjectOutput) Metadata {
	m := make(Metadata)
	if out == nil {
		return m
	}

	v := reflect.ValueOf(out).Elem()
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Name == fieldBody || f.Name == fieldResultMetadata {
			continue
		}
		fv := v.Field(i)
		if fv.IsZero() {
			continue
		}
		if fv.Kind() == reflect.Pointer {
			fv = fv.Elem()
		}
		m[f.Name] = fv.Interface()
	}

	delete(m, fieldBody)
	delete(m, fieldResponseMetadata)
	return m
}
