// Package store persists the expense ledger snapshot.
//
// The ledger is persisted as a single key-value entry: the key is fixed per
// deployment and the value is the full serialized expense sequence. Every
// mutation overwrites the whole value; there is no incremental diffing.
package store

import "context"

// SnapshotStore is the single-slot key-value persistence the ledger writes to.
type SnapshotStore interface {
	// Load returns the stored payload for key. found is false when no
	// snapshot has ever been written.
	Load(ctx context.Context, key string) (data []byte, found bool, err error)

	// Save overwrites the payload for key.
	Save(ctx context.Context, key string, data []byte) error
}
