// Package storage defines the generic object storage contract consumed by the
// rest of the application.
//
// The Driver interface exposes a fixed operation set — read (buffered, text
// and streaming), write, copy, move, delete, existence check, metadata stat,
// signed URL issuance and lazy prefix listing — independent of which backend
// is plugged in. Concrete variants live in subpackages (core/storage/s3) and
// register themselves by name; hosts select one through the Driver field of
// the configuration:
//
//	import _ "blobgate/core/storage/s3"
//
//	drv, err := storage.Open(cfg.Storage)
//	resp, err := drv.GetBuffer(ctx, "gamedata/index.json")
//
// # Response envelopes
//
// Every operation returns a small typed envelope whose Raw field carries the
// untranslated backend-native result, so callers can fall back to backend
// detail without the driver exposing its connection handle.
//
// # Errors
//
// Backend failures are normalized into a closed taxonomy before they reach
// the caller: BucketNotFoundError, ObjectNotFoundError, PermissionDeniedError
// and UnknownError. All retain the original backend error as their cause and
// unwrap cleanly for errors.As dispatch.
//
// # Listing
//
// FlatList returns an iter.Seq2 that fetches one page per boundary as the
// consumer advances. The sequence is forward-only and non-restartable; a
// backend failure is yielded in-band as the terminal element.
package storage
