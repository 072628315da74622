package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentType(t *testing.T) {
	t.Parallel()

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	tests := []struct {
		name     string
		declared string
		key      string
		body     []byte
		want     string
	}{
		{"declared wins", "image/jpeg", "photo.png", png, "image/jpeg"},
		{"declared kept with params", "text/plain; charset=utf-8", "a.txt", nil, "text/plain; charset=utf-8"},
		{"extension", "", "tasks/data.JSON", []byte("{}"), "application/json"},
		{"sniffed png", "", "blob", png, "image/png"},
		{"sniffed text", "", "blob", []byte("hello world"), "text/plain; charset=utf-8"},
		{"empty body", "", "blob", nil, MIMEOctetStream},
		{"whitespace declared", "  ", "blob", nil, MIMEOctetStream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, contentType(tt.declared, tt.key, tt.body))
		})
	}
}

func TestContentType_LargeBody(t *testing.T) {
	t.Parallel()

	body := make([]byte, 4096)
	copy(body, "%PDF-1.7")
	require.Equal(t, "application/pdf", contentType("", "doc", body))
}
