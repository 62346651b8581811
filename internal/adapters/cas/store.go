// Package cas implements the resolution record store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/thriftpath/internal/core/domain"
	"go.trai.ch/thriftpath/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ResolutionStore = (*Store)(nil)
	_ ports.StoreOpener     = (*Opener)(nil)
)

// Opener opens stores backed by state files.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// OpenStore loads the store kept at path.
func (o *Opener) OpenStore(path string) (ports.ResolutionStore, error) {
	return NewStore(path)
}

// Store implements ports.ResolutionStore using a flat JSON file keyed by staging root.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.ResolutionRecord
}

// NewStore creates a new ResolutionStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.ResolutionRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read resolution store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal resolution store"), "path", s.path)
	}

	return nil
}

// save writes the cache to disk. Callers must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal resolution store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for resolution store"), "path", dir)
	}

	// Write-then-rename keeps the state file whole.
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary resolution store")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Already renamed on success

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write resolution store")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write resolution store")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace resolution store"), "path", s.path)
	}

	return nil
}

// Get retrieves the record for the given staging root.
func (s *Store) Get(stagingRoot string) (*domain.ResolutionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[stagingRoot]
	if !ok {
		return nil, nil
	}
	record.IncludeDirs = slices.Clone(record.IncludeDirs)
	return &record, nil
}

// Put stores the record and persists the store.
func (s *Store) Put(record domain.ResolutionRecord) error {
	if record.StagingRoot == "" {
		return zerr.Wrap(domain.ErrInvalidArgument, "resolution record has no staging root")
	}
	record.IncludeDirs = slices.Clone(record.IncludeDirs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[record.StagingRoot] = record
	return s.save()
}

// Delete removes the record for the given staging root. Deleting an unknown root is a no-op.
func (s *Store) Delete(stagingRoot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cache[stagingRoot]; !ok {
		return nil
	}
	delete(s.cache, stagingRoot)
	return s.save()
}

// List returns all records ordered by staging root.
func (s *Store) List() ([]domain.ResolutionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.ResolutionRecord, 0, len(s.cache))
	for _, record := range s.cache {
		record.IncludeDirs = slices.Clone(record.IncludeDirs)
		records = append(records, record)
	}
	slices.SortFunc(records, func(a, b domain.ResolutionRecord) int {
		return strings.Compare(a.StagingRoot, b.StagingRoot)
	})
	return records, nil
}
