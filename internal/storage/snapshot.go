package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"

	"staffplan/internal/document"
)

// MaxSnapshots caps the snapshot history; the oldest entry is evicted on
// overflow.
const MaxSnapshots = 20

var tagPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Snapshot error taxonomy. Tag problems are user input errors; quota errors
// pass through ErrQuotaExceeded from the KV layer.
var (
	ErrInvalidTag   = errors.New("tag must be non-empty and contain only letters, digits, '.', '_' and '-'")
	ErrDuplicateTag = errors.New("a snapshot with this tag already exists")
)

// SnapshotMeta describes one saved snapshot without its payload.
type SnapshotMeta struct {
	ID         string    `json:"id"`
	Tag        string    `json:"tag"`
	Version    string    `json:"version"`
	CreatedAt  time.Time `json:"createdAt"`
	FiscalYear int       `json:"fiscalYear"`
	DataSize   int       `json:"dataSize"`
}

// SnapshotEntry is a snapshot with its embedded full document.
type SnapshotEntry struct {
	SnapshotMeta
	Document *document.Document `json:"document"`
}

type snapshotHistory struct {
	Snapshots []*SnapshotEntry `json:"snapshots"`
}

// SnapshotStore keeps a bounded, tag-addressable history of full-document
// snapshots under its own storage key, independent of normal document
// traffic.
type SnapshotStore struct {
	kv     KV
	logger *slog.Logger
}

// NewSnapshotStore creates a SnapshotStore. A nil logger discards log output.
func NewSnapshotStore(kv KV, logger *slog.Logger) *SnapshotStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SnapshotStore{kv: kv, logger: logger}
}

// Save validates the tag, rejects duplicates, prepends a new snapshot of doc
// to the history, evicts past MaxSnapshots and persists. The returned meta
// describes the new snapshot.
func (s *SnapshotStore) Save(tag string, doc *document.Document, version string) (*SnapshotMeta, error) {
	if tag == "" || !tagPattern.MatchString(tag) {
		return nil, fmt.Errorf("%w (got %q)", ErrInvalidTag, tag)
	}

	history := s.loadHistory()
	for _, entry := range history.Snapshots {
		if entry.Tag == tag {
			return nil, fmt.Errorf("%w (tag %q)", ErrDuplicateTag, tag)
		}
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("serializing snapshot document: %w", err)
	}

	entry := &SnapshotEntry{
		SnapshotMeta: SnapshotMeta{
			ID:         uuid.New().String(),
			Tag:        tag,
			Version:    version,
			CreatedAt:  time.Now().UTC(),
			FiscalYear: doc.FiscalYear,
			DataSize:   len(payload),
		},
		Document: doc,
	}

	history.Snapshots = append([]*SnapshotEntry{entry}, history.Snapshots...)
	if len(history.Snapshots) > MaxSnapshots {
		history.Snapshots = history.Snapshots[:MaxSnapshots]
	}

	if err := s.persist(history); err != nil {
		return nil, err
	}
	return &entry.SnapshotMeta, nil
}

// MetaList returns snapshot metadata, newest first.
func (s *SnapshotStore) MetaList() []*SnapshotMeta {
	history := s.loadHistory()
	metas := make([]*SnapshotMeta, 0, len(history.Snapshots))
	for _, entry := range history.Snapshots {
		meta := entry.SnapshotMeta
		metas = append(metas, &meta)
	}
	sort.SliceStable(metas, func(i, j int) bool {
		return metas[i].CreatedAt.After(metas[j].CreatedAt)
	})
	return metas
}

// Get returns the full snapshot with the given id, or nil if absent.
func (s *SnapshotStore) Get(id string) *SnapshotEntry {
	for _, entry := range s.loadHistory().Snapshots {
		if entry.ID == id {
			return entry
		}
	}
	return nil
}

// Delete removes the snapshot with the given id. Returns false when no such
// snapshot exists; that is a no-op, not an error.
func (s *SnapshotStore) Delete(id string) (bool, error) {
	history := s.loadHistory()
	kept := history.Snapshots[:0]
	found := false
	for _, entry := range history.Snapshots {
		if entry.ID == id {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return false, nil
	}
	history.Snapshots = kept
	if err := s.persist(history); err != nil {
		return false, err
	}
	return true, nil
}

// ClearAll wipes the entire snapshot history.
func (s *SnapshotStore) ClearAll() error {
	return s.kv.Delete(SnapshotKey)
}

// loadHistory reads the persisted history, returning an empty history on any
// read or parse failure. Each snapshot's embedded document runs through the
// standard migration since snapshots may predate schema changes.
func (s *SnapshotStore) loadHistory() *snapshotHistory {
	payload, ok, err := s.kv.Get(SnapshotKey)
	if err != nil {
		s.logger.Error("snapshot history load failed, starting empty", "error", err)
		return &snapshotHistory{}
	}
	if !ok {
		return &snapshotHistory{}
	}

	var history snapshotHistory
	if err := json.Unmarshal(payload, &history); err != nil {
		s.logger.Error("snapshot history is unparsable, starting empty", "error", err)
		return &snapshotHistory{}
	}

	for _, entry := range history.Snapshots {
		if entry.Document != nil {
			document.Migrate(entry.Document)
		}
	}
	return &history
}

func (s *SnapshotStore) persist(history *snapshotHistory) error {
	payload, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("serializing snapshot history: %w", err)
	}
	return s.kv.Put(SnapshotKey, payload)
}
