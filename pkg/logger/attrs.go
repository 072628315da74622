package logger

import (
	"context"
	"log/slog"
)

// Error returns the conventional error attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

type objectCtxKey struct{}

type object struct {
	bucket string
	key    string
}

// WithObject stores the bucket and key being worked on in ctx.
// Loggers built by this package add them to every record logged with ctx.
func WithObject(ctx context.Context, bucket, key string) context.Context {
	return context.WithValue(ctx, objectCtxKey{}, object{bucket: bucket, key: key})
}

// ObjectExtractor emits an "object" group with bucket and key when ctx carries one.
func ObjectExtractor(ctx context.Context) (slog.Attr, bool) {
	o, ok := ctx.Value(objectCtxKey{}).(object)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.Group("object", slog.String("bucket", o.bucket), slog.String("key", o.key)), true
}
