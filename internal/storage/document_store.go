package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"staffplan/internal/document"
)

// DocumentStore loads and saves the application document through the KV
// substrate. Load never fails: corrupt or invalid payloads are logged and
// replaced by a fresh empty document so the application always starts.
type DocumentStore struct {
	kv     KV
	logger *slog.Logger
}

// NewDocumentStore creates a DocumentStore. A nil logger discards log output.
func NewDocumentStore(kv KV, logger *slog.Logger) *DocumentStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &DocumentStore{kv: kv, logger: logger}
}

// Load reads, migrates and validates the stored document. Any failure falls
// back to an empty document for the given fiscal year.
func (s *DocumentStore) Load(fiscalYear int) *document.Document {
	payload, ok, err := s.kv.Get(DocumentKey)
	if err != nil {
		s.logger.Error("document load failed, starting empty", "error", err)
		return document.NewEmpty(fiscalYear)
	}
	if !ok {
		return document.NewEmpty(fiscalYear)
	}

	var doc document.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		s.logger.Error("stored document is unparsable, starting empty", "error", err)
		return document.NewEmpty(fiscalYear)
	}

	document.Migrate(&doc)
	if errs := document.Validate(&doc); len(errs) > 0 {
		s.logger.Error("stored document failed validation, starting empty",
			"problems", len(errs), "first", errs[0].Error())
		return document.NewEmpty(fiscalYear)
	}
	return &doc
}

// Save migrates, validates and persists the document, refreshing
// metadata.lastModified. Validation failures and quota errors are returned
// to the caller; nothing is written on failure.
func (s *DocumentStore) Save(doc *document.Document) error {
	document.Migrate(doc)
	if errs := document.Validate(doc); len(errs) > 0 {
		return fmt.Errorf("document validation failed: %s", joinErrors(errs))
	}
	doc.Metadata.LastModified = time.Now().UTC()

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serializing document: %w", err)
	}
	return s.kv.Put(DocumentKey, payload)
}

// Export serializes the document as pretty-printed JSON for file download.
func (s *DocumentStore) Export(doc *document.Document) ([]byte, error) {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("exporting document: %w", err)
	}
	return payload, nil
}

// Import parses an exported JSON payload, runs the normal migration and
// validation pipeline, and persists the result. Invalid input surfaces an
// error and leaves the currently stored document untouched.
func (s *DocumentStore) Import(data []byte) (*document.Document, error) {
	var doc document.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid format: %w", err)
	}

	document.Migrate(&doc)
	if errs := document.Validate(&doc); len(errs) > 0 {
		return nil, fmt.Errorf("invalid format: %s", joinErrors(errs))
	}

	if err := s.Save(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func joinErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
