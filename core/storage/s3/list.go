package s3

import (
	"context"
	"iter"

	"blobgate/core/storage"
)

// listPageSize is the maximum number of keys requested per listing page.
const listPageSize = 1000

// FlatList returns a lazy sequence over every object under prefix. Pages of
// at most listPageSize keys are fetched through ListObjectsV2 continuation
// tokens, one fetch per page boundary, driven by how fast the consumer pulls.
//
// The sequence is forward-only and not restartable; the continuation cursor
// is private to the returned iterator. A backend failure is translated and
// yielded as the terminal element — entries already yielded stay valid, but
// nothing further is produced. Entries come in backend order.
func (d *Driver) FlatList(ctx context.Context, prefix string) iter.Seq2[storage.FileListEntry, error] {
	return func(yield func(storage.FileListEntry, error) bool) {
		token := ""
		for {
			page, err := d.api.ListPage(ctx, d.bucket, prefix, token, listPageSize)
			if err != nil {
				yield(storage.FileListEntry{}, translateError(err, prefix, d.bucket))
				return
			}
			for _, obj := range page.Contents {
				if !yield(storage.FileListEntry{Path: obj.Key, Raw: obj}, nil) {
					return
				}
			}
			if page.NextContinuationToken == "" {
				return
			}
			token = page.NextContinuationToken
		}
	}
}
