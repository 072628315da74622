package awsauth

import (
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/dmitrymomot/s3ref/pkg/logger"
)

// Environment variables consulted for explicit credential fields.
const (
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvSessionToken    = "AWS_SESSION_TOKEN"
)

// Source describes where a credential set came from.
type Source string

const (
	SourceManaged     Source = "managed"
	SourceExplicit    Source = "explicit"
	SourceEnvironment Source = "environment"
	SourceMixed       Source = "mixed"
	SourceNone        Source = "none"
)

// Explicit holds caller-supplied credential fields. Empty fields are filled
// from the environment during resolution.
type Explicit struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// Set is a resolved credential set. It is passed to the SDK unmodified.
type Set struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Source          Source
}

// Complete reports whether both the key id and the secret are present.
func (s Set) Complete() bool {
	return s.AccessKeyID != "" && s.SecretAccessKey != ""
}

// Provider returns a static SDK provider for the set.
// An empty set yields aws.AnonymousCredentials so requests go out unsigned
// and the backend decides whether to accept them.
func (s Set) Provider() aws.CredentialsProvider {
	if s.AccessKeyID == "" && s.SecretAccessKey == "" && s.SessionToken == "" {
		return aws.AnonymousCredentials{}
	}
	return credentials.NewStaticCredentialsProvider(s.AccessKeyID, s.SecretAccessKey, s.SessionToken)
}

// LogValue keeps secrets out of logs: the secret and the session token are
// truncated to their first four characters.
func (s Set) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("access_key_id", s.AccessKeyID),
		slog.String("secret_key", logger.Truncate(s.SecretAccessKey)),
		slog.String("session_token", logger.Truncate(s.SessionToken)),
		slog.String("source", string(s.Source)),
	)
}

func fromAWS(c aws.Credentials) Set {
	return Set{
		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretAccessKey,
		SessionToken:    c.SessionToken,
		Source:          SourceManaged,
	}
}
