// Package storage persists the application document and snapshot history
// through a small key-value abstraction, mirroring the single-key local
// storage model the data layout was designed for.
package storage

import "errors"

// Storage keys. The whole document lives under one key; snapshot history
// under a second, independent key.
const (
	DocumentKey = "staffplan:document"
	SnapshotKey = "staffplan:snapshots"
)

// ErrQuotaExceeded reports that the backing store is out of capacity. It is
// surfaced distinctly from validation failures so callers can tell the user
// to free space instead of fixing input.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// KV is the persistence substrate. Get reports absence via the boolean, not
// an error.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}
