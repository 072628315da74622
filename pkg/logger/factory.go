package logger

import (
	"io"
	"log/slog"
	"os"
)

// Option configures loggers built by New and NewWithSentry.
type Option func(*options)

type options struct {
	out        io.Writer
	level      slog.Leveler
	secretKeys []string
	extractors []ContextExtractor
}

// WithOutput sets the destination. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLevel sets the minimum level. Default: slog.LevelInfo.
func WithLevel(l slog.Leveler) Option {
	return func(o *options) {
		if l != nil {
			o.level = l
		}
	}
}

// WithSecretKeys replaces the attribute keys that get truncated.
func WithSecretKeys(keys ...string) Option {
	return func(o *options) {
		o.secretKeys = keys
	}
}

// WithExtractors adds context extractors on top of ObjectExtractor.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		out:        os.Stdout,
		level:      slog.LevelInfo,
		secretKeys: DefaultSecretKeys,
		extractors: []ContextExtractor{ObjectExtractor},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) jsonHandler() slog.Handler {
	return slog.NewJSONHandler(o.out, &slog.HandlerOptions{
		Level:       o.level,
		ReplaceAttr: Redact(o.secretKeys...),
	})
}

// New creates a JSON logger with secret redaction and object context extraction.
func New(opts ...Option) *slog.Logger {
	o := newOptions(opts...)
	return slog.New(NewLogHandlerDecorator(o.jsonHandler(), o.extractors...))
}
