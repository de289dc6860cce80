package storage

import "fmt"

// The error taxonomy is closed: every backend failure surfaced by a driver is
// one of the four kinds below, with the original backend error retained as
// the cause for diagnostics.

// BucketNotFoundError reports that the configured bucket does not exist or is
// not accessible by name.
type BucketNotFoundError struct {
	Bucket string
	Err    error
}

func (e *BucketNotFoundError) Error() string {
	return fmt.Sprintf("storage: bucket %q not found", e.Bucket)
}

func (e *BucketNotFoundError) Unwrap() error { return e.Err }

// ObjectNotFoundError reports that the requested key does not exist.
type ObjectNotFoundError struct {
	Location string
	Err      error
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("storage: object %q not found", e.Location)
}

func (e *ObjectNotFoundError) Unwrap() error { return e.Err }

// PermissionDeniedError reports that the backend denied the operation due to
// access restrictions.
type PermissionDeniedError struct {
	Location string
	Err      error
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("storage: permission denied for %q", e.Location)
}

func (e *PermissionDeniedError) Unwrap() error { return e.Err }

// UnknownError wraps any backend failure not recognized above. Code carries
// the backend's symbolic error name, when it supplied one.
type UnknownError struct {
	Code     string
	Location string
	Err      error
}

func (e *UnknownError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("storage: unknown error for %q", e.Location)
	}
	return fmt.Sprintf("storage: unknown error %s for %q", e.Code, e.Location)
}

func (e *UnknownError) Unwrap() error { return e.Err }
