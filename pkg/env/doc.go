// Package env resolves configuration values from explicit arguments,
// environment variables and defaults, in that order.
//
// Use First to pick between an explicit value, the environment and a default:
//
//	region := env.First(cfg.Region, env.OS.Get("S3_region"), "us-east-1")
//
// Use Parse for structs tagged in the caarlos0/env style:
//
//	type Config struct {
//		Endpoint string `env:"S3_ENDPOINT"`
//	}
//
//	cfg, err := env.Parse[Config](env.Map(vars), "S3_ENDPOINT")
//
// Lookup values let tests replace the process environment without touching
// global state.
package env
