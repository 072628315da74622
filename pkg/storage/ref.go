package storage

import "strings"

// ObjectRef identifies a stored object.
type ObjectRef struct {
	Bucket string
	Key    string
}

// String renders the reference as s3://bucket/key.
func (r ObjectRef) String() string {
	return "s3://" + r.Bucket + "/" + r.Key
}

// ParseRef splits an object reference URL into bucket and key.
//
// The host part is the bucket and the path without leading slashes is the key.
// The host ends at '/', '?' or '#'. A query string is dropped; '#' is kept as
// part of the key. Nothing is
// validated and nothing is unescaped, so malformed input yields an empty bucket
// or an unexpected key instead of an error.
func ParseRef(raw string) ObjectRef {
	rest := strings.TrimLeft(raw, "\x00\x01\x02\x03\x04\x05\x06\x07\x08\t\n\x0b\x0c\r\x0e\x0f"+
		"\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f ")

	if i := strings.IndexByte(rest, ':'); i > 0 && isScheme(rest[:i]) {
		rest = rest[i+1:]
	}

	var bucket string
	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		end := strings.IndexAny(rest, "/?#")
		if end < 0 {
			end = len(rest)
		}
		bucket, rest = rest[:end], rest[end:]
	}

	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rest = rest[:i]
	}

	return ObjectRef{Bucket: bucket, Key: strings.TrimLeft(rest, "/")}
}

// isScheme follows RFC 3986: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func isScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return s != ""
}
