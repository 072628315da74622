package env

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// Lookup reports the value of an environment variable and whether it is set.
// It has the same shape as os.LookupEnv so tests can swap in a map.
type Lookup func(key string) (string, bool)

// OS is the process environment.
var OS Lookup = os.LookupEnv

// Map returns a Lookup backed by m.
func Map(m map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Get returns the value for key or an empty string.
// A nil Lookup reads the process environment.
func (l Lookup) Get(key string) string {
	if l == nil {
		l = OS
	}
	v, _ := l(key)
	return v
}

// First returns the first non-empty value. Call it as
// First(explicit, fromEnvironment, fallback) to express the resolution order.
func First(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Parse fills a struct tagged with `env:"..."` from lookup.
// Only keys reachable through lookup are visible; nil means the process environment.
func Parse[T any](lookup Lookup, keys ...string) (T, error) {
	var opts env.Options
	if lookup != nil {
		opts.Environment = snapshot(lookup, keys)
	}
	return env.ParseAsWithOptions[T](opts)
}

func snapshot(lookup Lookup, keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := lookup(k); ok {
			m[k] = v
		}
	}
	return m
}
