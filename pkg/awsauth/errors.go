package awsauth

import "errors"

var (
	// ErrNoManagedCredentials is reported when the ambient credential chain has nothing to offer.
	ErrNoManagedCredentials = errors.New("awsauth: no managed credentials available")
)
