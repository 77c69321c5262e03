package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/neonshop/commerce-core/pkg/metrics"
)

// FileStore keeps one pretty-printed JSON document per collection under
// a data directory. Writes go through a temp file and rename so a crash
// mid-write never leaves a torn collection behind.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir %s: %v", ErrUnavailable, dir, err)
	}
	return &FileStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// lockFor returns the advisory lock scoped to one collection's backing
// file. Repositories hold their own mutex across read-modify-write; this
// lock only serializes raw file access.
func (s *FileStore) lockFor(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Load reads and decodes a collection file. A missing file is an empty
// collection.
func (s *FileStore) Load(collection string, dest any) error {
	l := s.lockFor(collection)
	l.Lock()
	defer l.Unlock()

	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read collection %s: %v", ErrUnavailable, collection, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: decode collection %s: %v", ErrUnavailable, collection, err)
	}
	return nil
}

// Save rewrites the whole collection file.
func (s *FileStore) Save(collection string, data any) error {
	l := s.lockFor(collection)
	l.Lock()
	defer l.Unlock()

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		metrics.StoreWrites.WithLabelValues(collection, metrics.StatusError).Inc()
		return fmt.Errorf("%w: encode collection %s: %v", ErrUnavailable, collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		metrics.StoreWrites.WithLabelValues(collection, metrics.StatusError).Inc()
		return fmt.Errorf("%w: stage collection %s: %v", ErrUnavailable, collection, err)
	}

	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		metrics.StoreWrites.WithLabelValues(collection, metrics.StatusError).Inc()
		return fmt.Errorf("%w: write collection %s: %v", ErrUnavailable, collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		metrics.StoreWrites.WithLabelValues(collection, metrics.StatusError).Inc()
		return fmt.Errorf("%w: flush collection %s: %v", ErrUnavailable, collection, err)
	}

	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		metrics.StoreWrites.WithLabelValues(collection, metrics.StatusError).Inc()
		return fmt.Errorf("%w: replace collection %s: %v", ErrUnavailable, collection, err)
	}

	metrics.StoreWrites.WithLabelValues(collection, metrics.StatusOK).Inc()
	return nil
}
