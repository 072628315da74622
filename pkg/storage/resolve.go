package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/s3ref/pkg/logger"
)

// Resolver turns object references into URLs a client can open.
// It holds no state besides its client and defaults, so one Resolver may be
// shared across goroutines as long as the client allows it.
type Resolver struct {
	api      API
	defaults resolveOptions
}

// NewResolver creates a Resolver over api. Defaults: presign on, expiry one hour.
func NewResolver(api API, opts ...Option) *Resolver {
	d := resolveOptions{
		logger:  logger.NewNope(),
		expiry:  DefaultExpiry,
		presign: true,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return &Resolver{api: api, defaults: d}
}

func (r *Resolver) options(opts []Option) resolveOptions {
	o := r.defaults
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Resolve resolves a single s3://bucket/key reference.
//
// With presigning on, it returns a presigned GET URL. If signing fails the
// reference itself comes back with Kind KindOriginal and the cause in Err;
// that is not reported as an error. With presigning off, the object is read
// into memory and returned as a base64 data URL; fetch errors are returned.
func (r *Resolver) Resolve(ctx context.Context, raw string, opts ...Option) (Resolved, error) {
	o := r.options(opts)
	ref := ParseRef(raw)
	ctx = logger.WithObject(ctx, ref.Bucket, ref.Key)

	if !o.presign {
		u, err := dataURL(ctx, r.api, ref)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{URL: u, Kind: KindDataURL, Ref: ref}, nil
	}

	req, err := r.api.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ref.Bucket),
		Key:    aws.String(ref.Key),
	}, func(po *s3.PresignOptions) {
		po.Expires = o.expiry
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Resolved{}, err
		}
		err = wrapS3Error(err, ErrPresignFailed)
		o.logger.WarnContext(ctx, "can't generate presigned URL, returning original reference", logger.Error(err))
		return Resolved{URL: raw, Kind: KindOriginal, Ref: ref, Err: err}, nil
	}

	o.logger.DebugContext(ctx, "presigned URL generated", slog.Duration("expires_in", o.expiry))
	return Resolved{URL: req.URL, Kind: KindPresigned, Ref: ref}, nil
}

// ResolveURL is Resolve returning only the URL string.
func (r *Resolver) ResolveURL(ctx context.Context, raw string, opts ...Option) (string, error) {
	res, err := r.Resolve(ctx, raw, opts...)
	if err != nil {
		return "", err
	}
	return res.URL, nil
}

// dataURL fetches the whole object and encodes it as data:<type>;base64,<payload>.
func dataURL(ctx context.Context, api ObjectGetter, ref ObjectRef) (string, error) {
	out, err := api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ref.Bucket),
		Key:    aws.String(ref.Key),
	})
	if err != nil {
		return "", wrapS3Error(err, ErrGetFailed)
	}

	var body []byte
	if out.Body != nil {
		defer func() { _ = out.Body.Close() }()
		if body, err = io.ReadAll(out.Body); err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
	}

	ct := contentType(aws.ToString(out.ContentType), ref.Key, body)

	var b strings.Builder
	b.Grow(len("data:;base64,") + len(ct) + base64.StdEncoding.EncodedLen(len(body)))
	b.WriteString("data:")
	b.WriteString(ct)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(body))
	return b.String(), nil
}
