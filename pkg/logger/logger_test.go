package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/s3ref/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"short", "abc", "abc..."},
		{"exact", "abcd", "abcd..."},
		{"long", "wJalrXUtnFEMI", "wJal..."},
		{"multibyte", "пароль", "паро..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, logger.Truncate(tt.input))
		})
	}
}

func TestNew_RedactsSecrets(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))
	log.Info("session",
		slog.String("access_key_id", "AKIAEXAMPLE"),
		slog.Group("credentials", slog.String("secret_key", "supersecret")),
		slog.String("session_token", "tokentoken"),
	)

	m := decode(t, &buf)
	require.Equal(t, "AKIAEXAMPLE", m["access_key_id"])
	require.Equal(t, "toke...", m["session_token"])
	require.Equal(t, map[string]any{"secret_key": "supe..."}, m["credentials"])
}

func TestNew_CustomSecretKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithSecretKeys("password"))
	log.Info("login", slog.String("password", "hunter2"), slog.String("secret_key", "visible"))

	m := decode(t, &buf)
	require.Equal(t, "hunt...", m["password"])
	require.Equal(t, "visible", m["secret_key"])
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))
	log.Debug("hidden")
	require.Zero(t, buf.Len())

	log = logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
	log.Debug("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestObjectExtractor(t *testing.T) {
	t.Parallel()

	t.Run("object in context", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		ctx := logger.WithObject(context.Background(), "bucket-a", "path/to/key")
		log.InfoContext(ctx, "resolved")

		m := decode(t, &buf)
		require.Equal(t, map[string]any{"bucket": "bucket-a", "key": "path/to/key"}, m["object"])
	})

	t.Run("no object", func(t *testing.T) {
		t.Parallel()
		_, ok := logger.ObjectExtractor(context.Background())
		require.False(t, ok)
	})
}

func TestWithExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	requestID := func(ctx context.Context) (slog.Attr, bool) {
		return slog.String("request_id", "abc-123"), true
	}
	log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(requestID, nil))
	log.InfoContext(context.Background(), "hello")

	require.Equal(t, "abc-123", decode(t, &buf)["request_id"])
}

func TestError(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.String("error", "boom"), logger.Error(errors.New("boom")))
	require.Equal(t, slog.String("error", ""), logger.Error(nil))
}

func TestNewWithSentry_NoDSN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithSentry(logger.SentryConfig{}, logger.WithOutput(&buf))
	log.Warn("local only", slog.String("secret_key", "supersecret"))

	m := decode(t, &buf)
	require.Equal(t, "local only", m["msg"])
	require.Equal(t, "supe...", m["secret_key"])
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	log.Error("discarded")
}
