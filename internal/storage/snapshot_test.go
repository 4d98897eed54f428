package storage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_SaveAndList(t *testing.T) {
	store := NewSnapshotStore(NewMemoryKV(), nil)

	meta, err := store.Save("release-1.0", sampleDocument(), "2.0.0")
	require.NoError(t, err)
	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, "release-1.0", meta.Tag)
	assert.Equal(t, 2025, meta.FiscalYear)
	assert.Greater(t, meta.DataSize, 0)

	metas := store.MetaList()
	require.Len(t, metas, 1)
	assert.Equal(t, meta.ID, metas[0].ID)

	entry := store.Get(meta.ID)
	require.NotNil(t, entry)
	require.NotNil(t, entry.Document)
	assert.Equal(t, 2025, entry.Document.FiscalYear)
}

func TestSnapshotStore_TagValidation(t *testing.T) {
	store := NewSnapshotStore(NewMemoryKV(), nil)
	doc := sampleDocument()

	for _, tag := range []string{"", "has space", "日本語", "semi;colon", "slash/tag"} {
		_, err := store.Save(tag, doc, "2.0.0")
		require.Error(t, err, "tag %q", tag)
		assert.ErrorIs(t, err, ErrInvalidTag)
	}
	assert.Empty(t, store.MetaList(), "rejected tags must leave history unchanged")

	// Allowed character classes.
	for _, tag := range []string{"v1.0", "pre_release", "2025-04", "A.b-C_9"} {
		_, err := store.Save(tag, doc, "2.0.0")
		assert.NoError(t, err, "tag %q", tag)
	}
}

func TestSnapshotStore_DuplicateTagRejected(t *testing.T) {
	store := NewSnapshotStore(NewMemoryKV(), nil)
	doc := sampleDocument()

	_, err := store.Save("baseline", doc, "2.0.0")
	require.NoError(t, err)

	_, err = store.Save("baseline", doc, "2.0.0")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateTag)

	// Case-sensitive exact match: a different casing is a different tag.
	_, err = store.Save("Baseline", doc, "2.0.0")
	assert.NoError(t, err)

	assert.Len(t, store.MetaList(), 2)
}

func TestSnapshotStore_FIFOCapacity(t *testing.T) {
	store := NewSnapshotStore(NewMemoryKV(), nil)
	doc := sampleDocument()

	for i := 1; i <= MaxSnapshots+1; i++ {
		_, err := store.Save(fmt.Sprintf("tag-%02d", i), doc, "2.0.0")
		require.NoError(t, err)
	}

	metas := store.MetaList()
	require.Len(t, metas, MaxSnapshots)

	tags := make(map[string]bool, len(metas))
	for _, m := range metas {
		tags[m.Tag] = true
	}
	assert.False(t, tags["tag-01"], "oldest snapshot must be evicted")
	assert.True(t, tags["tag-21"], "newest snapshot must be present")
	assert.Equal(t, "tag-21", metas[0].Tag, "list is newest first")
}

func TestSnapshotStore_DeleteAndClear(t *testing.T) {
	store := NewSnapshotStore(NewMemoryKV(), nil)
	meta, err := store.Save("keep", sampleDocument(), "2.0.0")
	require.NoError(t, err)

	ok, err := store.Delete("no-such-id")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Delete(meta.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, store.MetaList())

	_, err = store.Save("again", sampleDocument(), "2.0.0")
	require.NoError(t, err)
	require.NoError(t, store.ClearAll())
	assert.Empty(t, store.MetaList())
}

func TestSnapshotStore_CorruptHistoryTreatedAsEmpty(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Put(SnapshotKey, []byte("][")))

	store := NewSnapshotStore(kv, nil)
	assert.Empty(t, store.MetaList())

	_, err := store.Save("fresh", sampleDocument(), "2.0.0")
	assert.NoError(t, err)
	assert.Len(t, store.MetaList(), 1)
}

func TestSnapshotStore_QuotaExceeded(t *testing.T) {
	kv := NewMemoryKV()
	kv.MaxBytes = 64
	store := NewSnapshotStore(kv, nil)

	_, err := store.Save("too-big", sampleDocument(), "2.0.0")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestSnapshotStore_MigratesEmbeddedDocuments(t *testing.T) {
	kv := NewMemoryKV()
	// A history entry saved before members carried unitPriceHistory.
	require.NoError(t, kv.Put(SnapshotKey, []byte(`{"snapshots":[{
		"id":"33333333-3333-4333-8333-333333333333","tag":"old","version":"1.0.0",
		"createdAt":"2024-04-01T00:00:00Z","fiscalYear":2024,"dataSize":10,
		"document":{"version":"1.0.0","fiscalYear":2024,
			"projects":[],"members":[{"id":"44444444-4444-4444-8444-444444444444","name":"Old","isActive":true}],
			"metadata":{"lastModified":"2024-04-01T00:00:00Z","createdBy":"x","version":"1.0.0"}}}]}`)))

	store := NewSnapshotStore(kv, nil)
	entry := store.Get("33333333-3333-4333-8333-333333333333")
	require.NotNil(t, entry)
	require.Len(t, entry.Document.Members, 1)
	assert.NotNil(t, entry.Document.Members[0].UnitPriceHistory)
}

func TestSQLiteKV_RoundTrip(t *testing.T) {
	kv, err := OpenSQLiteKV(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Put("k", []byte("v1")))
	require.NoError(t, kv.Put("k", []byte("v2")))

	value, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v2"), value)

	require.NoError(t, kv.Delete("k"))
	_, ok, err = kv.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}
