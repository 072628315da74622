// Package awsauth resolves the credential set used to build S3 clients.
//
// Managed execution-role credentials are tried first through the SDK default
// chain. When the chain yields nothing, explicit fields are used and any empty
// field falls back to its environment variable (AWS_ACCESS_KEY_ID,
// AWS_SECRET_ACCESS_KEY, AWS_SESSION_TOKEN) independently of the others.
//
//	r := awsauth.NewResolver(awsauth.WithLogger(log))
//	set, err := r.Resolve(ctx, awsauth.Explicit{AccessKeyID: id, SecretAccessKey: secret})
//	if err != nil {
//		return err // context ended
//	}
//	client := s3.New(s3.Options{Credentials: set.Provider()})
//
// Set implements slog.LogValuer and never prints the secret or the session token in full.
package awsauth
