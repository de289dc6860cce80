// Package s3 implements the generic storage driver contract on top of a
// MinIO/S3-compatible backend.
//
// It wraps the MinIO Go client behind the narrow API interface, making it
// easy to mock backend interactions for unit testing (see the mocks
// subpackage). The package registers itself as driver "s3"; hosts select it
// via a blank import and storage.Open.
//
// # Error translation
//
// Every failing backend call is wrapped exactly once: the backend's symbolic
// error code is mapped onto the closed storage error taxonomy (NoSuchBucket,
// NoSuchKey, AllAccessDisabled, and a catch-all), with the original error
// kept as the cause. The Exists probe is the one pre-translation
// short-circuit: a 404 becomes Exists=false instead of an error.
//
// # Listing
//
// FlatList drives ListObjectsV2 continuation tokens as a pull-based
// iter.Seq2, fetching pages of at most 1000 keys lazily as the consumer
// advances.
//
// # Known limitation
//
// Move is copy-then-delete and deliberately not atomic; see Driver.Move.
package s3
