package awsauth

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// DefaultChain returns a provider backed by the SDK default credential chain
// (environment, shared config, web identity, ECS/EC2 role endpoints).
// Hosted runtimes such as SageMaker or Lambda expose their execution role
// through this chain. Every Retrieve loads the chain again, nothing is cached.
func DefaultChain() aws.CredentialsProvider {
	return defaultChain{}
}

type defaultChain struct{}

func (defaultChain) Retrieve(ctx context.Context) (aws.Credentials, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Credentials{}, fmt.Errorf("%w: load default config: %w", ErrNoManagedCredentials, err)
	}
	if cfg.Credentials == nil {
		return aws.Credentials{}, ErrNoManagedCredentials
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return aws.Credentials{}, fmt.Errorf("%w: %w", ErrNoManagedCredentials, err)
	}
	return creds, nil
}

// noAmbient never yields credentials.
type noAmbient struct{}

func (noAmbient) Retrieve(context.Context) (aws.Credentials, error) {
	return aws.Credentials{}, ErrNoManagedCredentials
}
