package logger

import (
	"io"
	"log/slog"
)

// NewNope returns a logger that discards everything.
// Library code defaults to it when the caller passes no logger.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
