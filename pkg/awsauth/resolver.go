package awsauth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/dmitrymomot/s3ref/pkg/env"
	"github.com/dmitrymomot/s3ref/pkg/logger"
)

// Resolver picks the credential set for a client.
//
// Order: managed credentials from the ambient provider, then explicit fields,
// then same-named environment variables per field.
type Resolver struct {
	ambient aws.CredentialsProvider
	lookup  env.Lookup
	logger  *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithAmbient replaces the managed credential provider.
func WithAmbient(p aws.CredentialsProvider) Option {
	return func(r *Resolver) {
		if p != nil {
			r.ambient = p
		}
	}
}

// WithoutAmbient disables the managed credential lookup.
func WithoutAmbient() Option {
	return func(r *Resolver) {
		r.ambient = noAmbient{}
	}
}

// WithLookup sets the environment lookup used for field fallbacks.
func WithLookup(l env.Lookup) Option {
	return func(r *Resolver) {
		if l != nil {
			r.lookup = l
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver creates a Resolver using the SDK default chain and the process environment.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		ambient: DefaultChain(),
		lookup:  env.OS,
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the credential set to hand to the SDK.
//
// A failing ambient provider is logged and skipped. The only error returned is
// the context's, when it ends during the ambient lookup. Missing fields stay
// empty; the SDK decides later whether it can work without them.
func (r *Resolver) Resolve(ctx context.Context, explicit Explicit) (Set, error) {
	creds, err := r.ambient.Retrieve(ctx)
	switch {
	case err == nil && creds.HasKeys():
		set := fromAWS(creds)
		r.logger.DebugContext(ctx, "create s3 session", slog.Any("credentials", set))
		return set, nil
	case ctx.Err() != nil:
		return Set{}, ctx.Err()
	case err != nil && !errors.Is(err, ErrNoManagedCredentials):
		r.logger.WarnContext(ctx, "managed credentials unavailable", logger.Error(err))
	case err != nil:
		r.logger.DebugContext(ctx, "managed credentials unavailable", logger.Error(err))
	}

	set := r.fromFields(explicit)
	r.logger.DebugContext(ctx, "create s3 session", slog.Any("credentials", set))
	return set, nil
}

func (r *Resolver) fromFields(explicit Explicit) Set {
	var fromExplicit, fromEnv int
	pick := func(v, key string) string {
		if v != "" {
			fromExplicit++
			return v
		}
		if v = r.lookup.Get(key); v != "" {
			fromEnv++
		}
		return v
	}

	set := Set{
		AccessKeyID:     pick(explicit.AccessKeyID, EnvAccessKeyID),
		SecretAccessKey: pick(explicit.SecretAccessKey, EnvSecretAccessKey),
		SessionToken:    pick(explicit.SessionToken, EnvSessionToken),
	}

	switch {
	case fromExplicit > 0 && fromEnv > 0:
		set.Source = SourceMixed
	case fromExplicit > 0:
		set.Source = SourceExplicit
	case fromEnv > 0:
		set.Source = SourceEnvironment
	default:
		set.Source = SourceNone
	}
	return set
}
