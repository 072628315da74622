package logger

import "log/slog"

// secretPrefix is how many leading characters of a secret survive in logs.
const secretPrefix = 4

// Truncate shortens a secret to its first four characters followed by "...".
// Empty input stays empty.
func Truncate(secret string) string {
	if secret == "" {
		return ""
	}
	r := []rune(secret)
	if len(r) > secretPrefix {
		r = r[:secretPrefix]
	}
	return string(r) + "..."
}

// DefaultSecretKeys are attribute keys truncated by New unless overridden.
var DefaultSecretKeys = []string{
	"secret_key",
	"secret_access_key",
	"session_token",
	"aws_secret_access_key",
	"aws_session_token",
}

// Redact returns a slog ReplaceAttr func that truncates string attributes
// whose key is one of keys, at any group depth.
func Redact(keys ...string) func(groups []string, a slog.Attr) slog.Attr {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return func(_ []string, a slog.Attr) slog.Attr {
		if _, ok := set[a.Key]; !ok {
			return a
		}
		if a.Value.Kind() != slog.KindString {
			return a
		}
		return slog.String(a.Key, Truncate(a.Value.String()))
	}
}
