// Package files owns the on-disk file store shared by all uploads. Stored
// names are server-minted, so the store never sees client-controlled paths.
package files

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type Store struct {
	root string
	log  *slog.Logger
}

// NewStore roots a store at dir, creating it if needed.
func NewStore(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{root: dir, log: log}, nil
}

func (s *Store) Root() string { return s.root }

// CreateTemp opens a scratch file in the store directory so a later rename
// into place stays on the same filesystem.
func (s *Store) CreateTemp() (*os.File, error) {
	return os.CreateTemp(s.root, ".upload-*")
}

// Commit moves a scratch file to its final stored name.
func (s *Store) Commit(tmpPath, storedName string) error {
	return os.Rename(tmpPath, filepath.Join(s.root, storedName))
}

func (s *Store) Stat(storedName string) (os.FileInfo, error) {
	return os.Stat(filepath.Join(s.root, storedName))
}

// Cleanup removes a stored file best-effort. Absence is fine (the file may
// never have been written, or is already gone); other failures are logged and
// swallowed so a database mutation that already succeeded is never rolled
// back over an orphaned file.
func (s *Store) Cleanup(storedName string) {
	if storedName == "" || strings.ContainsAny(storedName, `/\`) {
		return
	}
	if err := os.Remove(filepath.Join(s.root, storedName)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("file cleanup failed", "file", storedName, "err", err)
	}
}
