package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/s3ref/pkg/awsauth"
	"github.com/dmitrymomot/s3ref/pkg/env"
	"github.com/dmitrymomot/s3ref/pkg/logger"
)

// Client pairs an S3 client with a presigner built from the same options.
type Client struct {
	*s3.Client
	presigner *s3.PresignClient

	// Region and Endpoint are the values the client was built with.
	Region   string
	Endpoint string

	// Source tells where the credentials came from.
	Source awsauth.Source
}

// PresignGetObject signs a GET request for the object.
func (c *Client) PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return c.presigner.PresignGetObject(ctx, in, optFns...)
}

// ClientOption configures NewClient.
type ClientOption func(*clientOptions)

type clientOptions struct {
	resolver *awsauth.Resolver
	lookup   env.Lookup
	logger   *slog.Logger
	s3Opts   []func(*s3.Options)
}

// WithCredentialResolver replaces the credential resolver.
func WithCredentialResolver(r *awsauth.Resolver) ClientOption {
	return func(o *clientOptions) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithEnv sets the environment lookup for region, endpoint and path style.
// It does not affect the credential resolver.
func WithEnv(l env.Lookup) ClientOption {
	return func(o *clientOptions) {
		if l != nil {
			o.lookup = l
		}
	}
}

// WithClientLogger sets the logger.
func WithClientLogger(l *slog.Logger) ClientOption {
	return func(o *clientOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithS3Options appends raw SDK option functions, applied last.
func WithS3Options(fns ...func(*s3.Options)) ClientOption {
	return func(o *clientOptions) {
		o.s3Opts = append(o.s3Opts, fns...)
	}
}

// NewClient resolves credentials and builds a Client.
//
// Managed credentials win over cfg.Credentials. Region resolves as
// cfg.Region, S3_region, us-east-1; endpoint as cfg.Endpoint, S3_ENDPOINT,
// provider default. SigV4 is the preferred auth scheme and S3 Express session
// auth is off; endpoints that only accept another scheme (multi-region
// access points need SigV4a) can still select it.
func NewClient(ctx context.Context, cfg Config, opts ...ClientOption) (*Client, error) {
	o := &clientOptions{
		lookup: env.OS,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.resolver == nil {
		o.resolver = awsauth.NewResolver(awsauth.WithLogger(o.logger))
	}

	ec, err := env.Parse[EnvConfig](o.lookup, EnvRegion, EnvEndpoint, EnvPathStyle)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	creds, err := o.resolver.Resolve(ctx, cfg.Credentials)
	if err != nil {
		return nil, err
	}

	region := env.First(cfg.Region, ec.Region, DefaultRegion)
	endpoint := env.First(cfg.Endpoint, ec.Endpoint)

	fns := []func(*s3.Options){
		func(so *s3.Options) {
			so.Region = region
			so.Credentials = creds.Provider()
			so.AuthSchemePreference = []string{"sigv4"}
			so.DisableS3ExpressSessionAuth = aws.Bool(true)
			so.Logger = sdkLogger{log: o.logger}
		},
	}
	if endpoint != "" {
		fns = append(fns, func(so *s3.Options) {
			so.BaseEndpoint = aws.String(endpoint)
			so.UsePathStyle = cfg.PathStyle || ec.PathStyle
		})
	}
	fns = append(fns, o.s3Opts...)

	client := s3.New(s3.Options{}, fns...)

	o.logger.DebugContext(ctx, "s3 client created",
		slog.String("region", region),
		slog.String("endpoint", endpoint),
		slog.String("credentials_source", string(creds.Source)),
	)

	return &Client{
		Client:    client,
		presigner: s3.NewPresignClient(client),
		Region:    region,
		Endpoint:  endpoint,
		Source:    creds.Source,
	}, nil
}
