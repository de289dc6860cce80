package storage_test

import (
	"errors"
	"fmt"
	"testing"

	"blobgate/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("backend detail")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"BucketNotFound", &storage.BucketNotFoundError{Bucket: "assets", Err: cause}, `storage: bucket "assets" not found`},
		{"ObjectNotFound", &storage.ObjectNotFoundError{Location: "a/b.txt", Err: cause}, `storage: object "a/b.txt" not found`},
		{"PermissionDenied", &storage.PermissionDeniedError{Location: "a/b.txt", Err: cause}, `storage: permission denied for "a/b.txt"`},
		{"UnknownWithCode", &storage.UnknownError{Code: "SlowDown", Location: "a/b.txt", Err: cause}, `storage: unknown error SlowDown for "a/b.txt"`},
		{"UnknownWithoutCode", &storage.UnknownError{Location: "a/b.txt", Err: cause}, `storage: unknown error for "a/b.txt"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}

func TestErrorCauseSurvivesWrapping(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := fmt.Errorf("listing failed: %w", &storage.UnknownError{Location: "logs/", Err: cause})

	var unknown *storage.UnknownError
	assert.ErrorAs(t, err, &unknown)
	assert.ErrorIs(t, err, cause)
}
