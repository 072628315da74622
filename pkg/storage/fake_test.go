package storage_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

type fakeObject struct {
	contentType string
	body        []byte
}

// fakeAPI is an in-memory storage.API.
type fakeAPI struct {
	objects    map[string]fakeObject
	getErr     error
	presignErr error

	mu       sync.Mutex
	gets     int
	presigns []*s3.GetObjectInput
	expires  []int64
}

func (f *fakeAPI) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	f.gets++
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.getErr != nil {
		return nil, f.getErr
	}
	obj, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &noSuchKey{}
	}
	out := &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(obj.body)),
		ContentLength: aws.Int64(int64(len(obj.body))),
	}
	if obj.contentType != "" {
		out.ContentType = aws.String(obj.contentType)
	}
	return out, nil
}

func (f *fakeAPI) PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	var po s3.PresignOptions
	for _, fn := range optFns {
		fn(&po)
	}

	f.mu.Lock()
	f.presigns = append(f.presigns, in)
	f.expires = append(f.expires, int64(po.Expires.Seconds()))
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.presignErr != nil {
		return nil, f.presignErr
	}
	return &v4.PresignedHTTPRequest{
		URL:    "https://signed.example/" + aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key) + "?X-Amz-Signature=abc",
		Method: http.MethodGet,
	}, nil
}

// noSuchKey mimics the API error S3 returns for a missing key.
type noSuchKey struct{}

func (*noSuchKey) Error() string                 { return "NoSuchKey: The specified key does not exist." }
func (*noSuchKey) ErrorCode() string             { return "NoSuchKey" }
func (*noSuchKey) ErrorMessage() string          { return "The specified key does not exist." }
func (*noSuchKey) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }
