// Package cas implements the on-disk store for cached dependency resolutions.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/attest/internal/core/domain"
	"go.trai.ch/attest/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResolutionStore = (*Store)(nil)

// DefaultFileName is the name of the store file inside the cache directory.
const DefaultFileName = "resolutions.json"

// Store implements ports.ResolutionStore using a flat JSON file keyed by project path.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.Resolution
}

// NewStore creates a new ResolutionStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := newStore(path)
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Open is like NewStore but never fails: an unreadable store is reported to logger
// and replaced by an empty one, which the next Put overwrites.
func Open(path string, logger ports.Logger) *Store {
	s, err := NewStore(path)
	if err != nil {
		logger.Warn("ignoring unreadable resolution cache: " + err.Error())
		return newStore(path)
	}
	return s
}

func newStore(path string) *Store {
	return &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Resolution),
	}
}

// DefaultPath returns the store location under the user cache directory,
// falling back to the temporary directory when there is none.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "attest", DefaultFileName)
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

// save writes the cache to disk. The caller must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal resolution store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for resolution store"), "path", dir)
	}

	// Write to a sibling file and rename so readers never see a partial store.
	tmp, err := os.CreateTemp(dir, DefaultFileName+".*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary resolution store")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Best effort cleanup after rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write resolution store")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write resolution store")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace resolution store"), "path", s.path)
	}

	return nil
}

// Get retrieves the resolution recorded for a project directory.
func (s *Store) Get(project string) (*domain.Resolution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.cache[project]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

// Put stores the resolution and persists the store.
func (s *Store) Put(res domain.Resolution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[res.Project] = res
	return s.save()
}
