package env_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/s3ref/pkg/env"
)

func TestFirst(t *testing.T) {
	t.Parallel()

	lookup := env.Map(map[string]string{
		"REGION": "eu-west-1",
		"EMPTY":  "",
	})

	tests := []struct {
		name     string
		explicit string
		key      string
		fallback string
		want     string
	}{
		{"explicit wins", "us-west-2", "REGION", "us-east-1", "us-west-2"},
		{"environment next", "", "REGION", "us-east-1", "eu-west-1"},
		{"empty variable falls back", "", "EMPTY", "us-east-1", "us-east-1"},
		{"missing variable falls back", "", "MISSING", "us-east-1", "us-east-1"},
		{"nothing at all", "", "MISSING", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, env.First(tt.explicit, lookup.Get(tt.key), tt.fallback))
		})
	}
}

func TestLookupGet(t *testing.T) {
	t.Parallel()

	lookup := env.Map(map[string]string{"A": "1"})
	require.Equal(t, "1", lookup.Get("A"))
	require.Empty(t, lookup.Get("B"))
}

func TestParse(t *testing.T) {
	t.Parallel()

	type config struct {
		Endpoint  string `env:"TEST_ENDPOINT"`
		Region    string `env:"TEST_REGION" envDefault:"us-east-1"`
		PathStyle bool   `env:"TEST_PATH_STYLE"`
	}
	keys := []string{"TEST_ENDPOINT", "TEST_REGION", "TEST_PATH_STYLE"}

	t.Run("values from lookup", func(t *testing.T) {
		t.Parallel()
		cfg, err := env.Parse[config](env.Map(map[string]string{
			"TEST_ENDPOINT":   "http://localhost:9000",
			"TEST_PATH_STYLE": "true",
		}), keys...)
		require.NoError(t, err)
		require.Equal(t, "http://localhost:9000", cfg.Endpoint)
		require.Equal(t, "us-east-1", cfg.Region)
		require.True(t, cfg.PathStyle)
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Parallel()
		_, err := env.Parse[config](env.Map(map[string]string{
			"TEST_PATH_STYLE": "maybe",
		}), keys...)
		require.Error(t, err)
	})
}
