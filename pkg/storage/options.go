package storage

import (
	"log/slog"
	"time"
)

// Option configures a Resolver or a single Resolve call.
// Options given to Resolve override the resolver's defaults for that call.
type Option func(*resolveOptions)

type resolveOptions struct {
	logger  *slog.Logger
	expiry  time.Duration
	presign bool
}

// WithExpiry sets how long presigned URLs stay valid. Default: one hour.
// Non-positive values are ignored.
func WithExpiry(d time.Duration) Option {
	return func(o *resolveOptions) {
		if d > 0 {
			o.expiry = d
		}
	}
}

// WithPresign switches between presigned URLs (true, the default) and inline data URLs (false).
func WithPresign(enabled bool) Option {
	return func(o *resolveOptions) {
		o.presign = enabled
	}
}

// WithDataURL is WithPresign(false).
func WithDataURL() Option {
	return WithPresign(false)
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *resolveOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
