package storage

import (
	"context"
	"io"
	"iter"
	"time"
)

// DefaultSignedURLExpiry is used when no expiry is supplied for a signed URL.
const DefaultSignedURLExpiry = 900 * time.Second

// Driver is the generic object storage contract. Each backend variant
// implements it independently and is selected through the registry; the host
// never touches the backend client directly.
//
// A driver is bound to exactly one bucket at construction. Methods are safe
// for concurrent use; each call proceeds independently against the backend
// with no coordination between in-flight operations. Any visibility ordering
// (e.g. a Put being observable by a following Get) is whatever the backend
// provides.
type Driver interface {
	// Copy issues a server-side copy of src to dest within the bucket.
	Copy(ctx context.Context, src, dest string) (*CopyResponse, error)
	// Move copies src to dest and then deletes src. The two steps are not
	// atomic: if the delete fails after a successful copy, both objects
	// remain; if the copy fails, src is untouched. The error surfaces from
	// whichever step failed.
	Move(ctx context.Context, src, dest string) (*MoveResponse, error)
	// Delete removes the object at location. The backend does not report
	// whether the object existed, so DeleteResponse.WasDeleted is always nil.
	Delete(ctx context.Context, location string) (*DeleteResponse, error)
	// Exists probes the object's metadata. A backend "not found" answer is
	// reported as Exists=false rather than an error; every other failure is
	// translated and returned.
	Exists(ctx context.Context, location string) (*ExistsResponse, error)
	// Get reads the full object body and decodes it as text using the named
	// charset (IANA name, default "utf-8").
	Get(ctx context.Context, location, encoding string) (*TextResponse, error)
	// GetBuffer reads the full object body as raw bytes.
	GetBuffer(ctx context.Context, location string) (*ContentResponse, error)
	// GetStat returns the object's size and last-modified time.
	GetStat(ctx context.Context, location string) (*StatResponse, error)
	// GetStream returns the backend's live response body for incremental
	// consumption. The caller owns the stream and must close it.
	GetStream(ctx context.Context, location string) (io.ReadCloser, error)
	// Put writes or overwrites the object at location with the reader's
	// content. The write is fully awaited; a failed write is returned as an
	// error, never dropped.
	Put(ctx context.Context, location string, content io.Reader) (*PutResponse, error)
	// GetSignedURL produces a time-limited pre-signed retrieval URL. Only
	// signing happens here; no object I/O is performed.
	GetSignedURL(ctx context.Context, location string, opts SignedURLOptions) (*SignedURLResponse, error)
	// FlatList returns a lazy, forward-only, non-restartable sequence of all
	// objects under prefix. One page of at most 1000 entries is fetched per
	// boundary, driven by consumption. A backend failure is yielded as the
	// final element and terminates the sequence; entries already yielded
	// remain valid.
	FlatList(ctx context.Context, prefix string) iter.Seq2[FileListEntry, error]
}

// SignedURLOptions configures signed URL issuance.
type SignedURLOptions struct {
	// ExpiresIn is the URL lifetime. Zero means DefaultSignedURLExpiry.
	ExpiresIn time.Duration
}

// Every response envelope carries the untranslated backend-native result in
// Raw so hosts can reach backend-specific detail without holding the backend
// client themselves.

// ContentResponse is returned by GetBuffer.
type ContentResponse struct {
	Content []byte
	Raw     any
}

// TextResponse is returned by Get.
type TextResponse struct {
	Content string
	Raw     any
}

// ExistsResponse is returned by Exists. Raw holds the backend metadata result
// or, for the not-found short-circuit, the backend error.
type ExistsResponse struct {
	Exists bool
	Raw    any
}

// StatResponse is returned by GetStat.
type StatResponse struct {
	Size     int64
	Modified time.Time
	Raw      any
}

// SignedURLResponse is returned by GetSignedURL.
type SignedURLResponse struct {
	SignedURL string
	Raw       any
}

// PutResponse is returned by Put.
type PutResponse struct {
	Raw any
}

// CopyResponse is returned by Copy.
type CopyResponse struct {
	Raw any
}

// MoveResponse is returned by Move. Raw is always nil; the copy and delete
// results of the two underlying steps are not merged.
type MoveResponse struct {
	Raw any
}

// DeleteResponse is returned by Delete. WasDeleted is always nil: the backend
// cannot reliably tell whether the object existed before the delete, so the
// field stays indeterminate rather than guessing a boolean.
type DeleteResponse struct {
	Raw        any
	WasDeleted *bool
}

// FileListEntry is one object yielded by FlatList, in backend order.
type FileListEntry struct {
	Path string
	Raw  any
}
