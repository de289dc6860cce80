package s3

import (
	"blobgate/core/storage"

	"github.com/minio/minio-go/v7"
)

// Backend symbolic error names recognized by the mapper. Everything else
// falls through to UnknownError.
const (
	codeNoSuchBucket      = "NoSuchBucket"
	codeNoSuchKey         = "NoSuchKey"
	codeAllAccessDisabled = "AllAccessDisabled"
)

func (d *Driver) translate(err error, location string) error {
	return translateError(err, location, d.bucket)
}

// translateError maps a backend failure onto the storage error taxonomy
// based on the backend's symbolic error code. The mapping is total: an
// unrecognized (or missing) code yields an UnknownError carrying the code.
// The original error is always retained as the cause.
func translateError(err error, location, bucket string) error {
	switch minio.ToErrorResponse(err).Code {
	case codeNoSuchBucket:
		return &storage.BucketNotFoundError{Bucket: bucket, Err: err}
	case codeNoSuchKey:
		return &storage.ObjectNotFoundError{Location: location, Err: err}
	case codeAllAccessDisabled:
		return &storage.PermissionDeniedError{Location: location, Err: err}
	default:
		return &storage.UnknownError{Code: minio.ToErrorResponse(err).Code, Location: location, Err: err}
	}
}
