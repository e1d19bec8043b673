package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Collection names. Each one is persisted as its own JSON document under
// the store directory.
const (
	CollectionInstructors = "instructors"
	CollectionSubjects    = "subjects"
	CollectionSlots       = "slots"
	DocumentSession       = "session"
)

// Store is a whole-document key-value store over a filesystem. Every
// collection is read and rewritten as a unit; there is no partial update.
// Single-process, single-goroutine use is assumed, so a read-modify-write
// against one collection is effectively atomic as long as the caller does
// not interleave other store calls in between.
type Store struct {
	fs     afero.Fs
	dir    string
	logger *zap.Logger
}

// New creates the store directory if needed and returns a store over it.
func New(fs afero.Fs, dir string, logger *zap.Logger) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{fs: fs, dir: dir, logger: logger}, nil
}

// Read decodes the named document into out. A missing document or one
// holding bytes that are not valid JSON for out leaves out untouched and
// returns nil: the collection simply appears empty. Unreadable state must
// never surface as an error to the user.
func (s *Store) Read(name string, out any) error {
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		s.logger.Warn("Failed to read document, treating as empty",
			zap.String("document", name),
			zap.Error(err),
		)
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("Corrupt document, treating as empty",
			zap.String("document", name),
			zap.Error(err),
		)
		// json.Unmarshal may have filled part of out before failing.
		_ = json.Unmarshal([]byte("null"), out)
		return nil
	}

	return nil
}

// Write replaces the named document with the JSON encoding of v. The
// document is written to a temp file and renamed into place, so readers
// never observe a half-written document.
func (s *Store) Write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document %s: %w", name, err)
	}

	path := s.path(name)
	tmp := path + ".tmp"

	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", name, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace document %s: %w", name, err)
	}

	return nil
}

// Delete removes the named document. A document that does not exist is
// not an error.
func (s *Store) Delete(name string) error {
	if err := s.fs.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete document %s: %w", name, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
