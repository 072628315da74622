package storage

// Kind tells which path produced a Resolved URL.
type Kind string

const (
	// KindPresigned is a time-limited signed GET URL.
	KindPresigned Kind = "presigned"
	// KindDataURL is the object inlined as data:<type>;base64,<payload>.
	KindDataURL Kind = "data"
	// KindOriginal is the input reference, returned because presigning failed.
	KindOriginal Kind = "original"
)

// Resolved is the outcome of resolving one object reference.
type Resolved struct {
	// Err is the presign error behind a KindOriginal result.
	Err error

	// URL is what the caller should hand out.
	URL string

	Kind Kind
	Ref  ObjectRef
}

// Degraded reports whether the original reference was returned in place of a presigned URL.
func (r Resolved) Degraded() bool {
	return r.Kind == KindOriginal
}

func (r Resolved) String() string {
	return r.URL
}
