package storage

import (
	"net/http"
	"path"
	"strings"
)

// MIMEOctetStream is used when nothing better is known.
const MIMEOctetStream = "application/octet-stream"

// mimeByExt maps lowercase key extensions to MIME types for objects stored without a Content-Type.
var mimeByExt = map[string]string{
	// Images
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".ico":  "image/x-icon",
	".heic": "image/heic",
	".avif": "image/avif",
	// Documents and text
	".pdf":   "application/pdf",
	".txt":   "text/plain",
	".csv":   "text/csv",
	".tsv":   "text/tab-separated-values",
	".json":  "application/json",
	".jsonl": "application/x-ndjson",
	".xml":   "application/xml",
	".html":  "text/html",
	".htm":   "text/html",
	".rtf":   "application/rtf",
	// Video
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".ogv":  "video/ogg",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	// Audio
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".weba": "audio/webm",
	".aac":  "audio/aac",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
	// Archives
	".zip": "application/zip",
	".gz":  "application/gzip",
	".tar": "application/x-tar",
}

// mimeDetectionBytes is how much http.DetectContentType looks at.
const mimeDetectionBytes = 512

// contentType picks the MIME type for a data URL: the stored Content-Type
// as-is, then the key extension, then sniffing the payload.
func contentType(declared, key string, body []byte) string {
	if declared = strings.TrimSpace(declared); declared != "" {
		return declared
	}
	if ct, ok := mimeByExt[strings.ToLower(path.Ext(key))]; ok {
		return ct
	}
	if len(body) == 0 {
		return MIMEOctetStream
	}
	if len(body) > mimeDetectionBytes {
		body = body[:mimeDetectionBytes]
	}
	return http.DetectContentType(body)
}
