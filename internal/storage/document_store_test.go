package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffplan/internal/document"
	"staffplan/internal/domain"
)

func sampleDocument() *document.Document {
	now := time.Now().UTC()
	doc := document.NewEmpty(2025)
	rootID := uuid.New().String()
	doc.Projects = []*domain.Project{
		{ID: rootID, Code: "P001", Name: "Renewal", Level: 0, Status: domain.ProjectActive, CreatedAt: now, UpdatedAt: now},
	}
	doc.Members = []*domain.Member{
		{ID: uuid.New().String(), Name: "Kimura", IsActive: true, UnitPriceHistory: []domain.UnitPriceEntry{}, CreatedAt: now, UpdatedAt: now},
	}
	return doc
}

func TestDocumentStore_SaveLoadRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	store := NewDocumentStore(kv, nil)

	doc := sampleDocument()
	require.NoError(t, store.Save(doc))

	loaded := store.Load(2025)
	assert.Equal(t, doc.FiscalYear, loaded.FiscalYear)
	require.Len(t, loaded.Projects, 1)
	assert.Equal(t, "P001", loaded.Projects[0].Code)
	require.Len(t, loaded.Members, 1)
	assert.Equal(t, "Kimura", loaded.Members[0].Name)
}

func TestDocumentStore_LoadMissingReturnsEmpty(t *testing.T) {
	store := NewDocumentStore(NewMemoryKV(), nil)
	doc := store.Load(2026)
	assert.Equal(t, 2026, doc.FiscalYear)
	assert.Empty(t, doc.Projects)
	assert.Empty(t, doc.Members)
}

func TestDocumentStore_LoadCorruptReturnsEmpty(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Put(DocumentKey, []byte("{not json")))

	store := NewDocumentStore(kv, nil)
	doc := store.Load(2025)
	assert.Equal(t, 2025, doc.FiscalYear)
	assert.Empty(t, doc.Projects)
}

func TestDocumentStore_LoadInvalidReturnsEmpty(t *testing.T) {
	kv := NewMemoryKV()
	// Parsable but schema-invalid: bad fiscal year.
	require.NoError(t, kv.Put(DocumentKey, []byte(`{"version":"2.0.0","fiscalYear":1,"projects":[],"members":[],"metadata":{"lastModified":"2024-01-01T00:00:00Z","createdBy":"x","version":"2.0.0"}}`)))

	store := NewDocumentStore(kv, nil)
	doc := store.Load(2025)
	assert.Equal(t, 2025, doc.FiscalYear)
}

func TestDocumentStore_SaveRejectsInvalid(t *testing.T) {
	kv := NewMemoryKV()
	store := NewDocumentStore(kv, nil)

	doc := sampleDocument()
	doc.Projects[0].Status = "bogus"
	err := store.Save(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	// Nothing was written.
	_, ok, _ := kv.Get(DocumentKey)
	assert.False(t, ok)
}

func TestDocumentStore_ExportImportRoundTrip(t *testing.T) {
	store := NewDocumentStore(NewMemoryKV(), nil)
	doc := sampleDocument()
	require.NoError(t, store.Save(doc))

	exported, err := store.Export(doc)
	require.NoError(t, err)

	other := NewDocumentStore(NewMemoryKV(), nil)
	imported, err := other.Import(exported)
	require.NoError(t, err)

	assert.Equal(t, doc.FiscalYear, imported.FiscalYear)
	require.Len(t, imported.Projects, 1)
	assert.Equal(t, doc.Projects[0].ID, imported.Projects[0].ID)
	assert.Equal(t, doc.Members[0].ID, imported.Members[0].ID)
}

func TestDocumentStore_ImportInvalidLeavesStateUntouched(t *testing.T) {
	kv := NewMemoryKV()
	store := NewDocumentStore(kv, nil)
	require.NoError(t, store.Save(sampleDocument()))
	before, _, _ := kv.Get(DocumentKey)

	_, err := store.Import([]byte("not even json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")

	_, err = store.Import([]byte(`{"version":"2.0.0","fiscalYear":1,"projects":[],"members":[],"metadata":{"lastModified":"2024-01-01T00:00:00Z","createdBy":"x","version":"2.0.0"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")

	after, _, _ := kv.Get(DocumentKey)
	assert.Equal(t, before, after)
}

func TestDocumentStore_SaveSurfacesQuota(t *testing.T) {
	kv := NewMemoryKV()
	kv.MaxBytes = 16
	store := NewDocumentStore(kv, nil)

	err := store.Save(sampleDocument())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}
