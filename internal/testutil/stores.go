// Package testutil provides shared helpers for workspace-level tests.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"staffplan/internal/document"
	"staffplan/internal/storage"
	"staffplan/internal/store"
)

// DiscardLogger returns a logger whose output goes nowhere.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewStores builds an in-memory persistence stack: document store, snapshot
// store, and an empty FY2025 workspace over one shared MemoryKV.
func NewStores(t *testing.T) (*store.Workspace, *storage.DocumentStore, *storage.SnapshotStore) {
	t.Helper()
	kv := storage.NewMemoryKV()
	docs := storage.NewDocumentStore(kv, DiscardLogger())
	snaps := storage.NewSnapshotStore(kv, DiscardLogger())
	ws := store.FromDocument(document.NewEmpty(2025), docs)
	return ws, docs, snaps
}
