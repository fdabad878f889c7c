package jsonfile

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Store persists named collections as JSON array files under a single
// data directory, one file per collection. All access to a collection
// goes through its own mutex so the read-modify-write cycle is
// serialized; two writers to the same collection cannot interleave.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

// Load returns every record in the collection, in file order.
// A missing file is initialized to an empty array; unparseable content
// is set aside and treated as empty rather than failing the request.
func Load[T any](s *Store, collection string) ([]T, error) {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	return load[T](s, collection)
}

// Save replaces the entire collection with the given records.
func Save[T any](s *Store, collection string, records []T) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	return save(s, collection, records)
}

// Update runs fn over the current records while holding the collection
// lock and persists the slice fn returns. fn returning an error aborts
// the update without writing.
func Update[T any](s *Store, collection string, fn func([]T) ([]T, error)) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	records, err := load[T](s, collection)
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return save(s, collection, updated)
}

func load[T any](s *Store, collection string) ([]T, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}

	path := s.path(collection)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("init collection %s: %w", collection, err)
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		// Unparseable content is treated as empty so reads keep working,
		// but the original bytes are kept next to the file for recovery.
		log.Printf("warning: collection %s is corrupt, treating as empty: %v", collection, err)
		if bakErr := os.WriteFile(path+".bak", data, 0o644); bakErr != nil {
			log.Printf("warning: could not preserve corrupt %s file: %v", collection, bakErr)
		}
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func save[T any](s *Store, collection string, records []T) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}

	// Write to a temp file in the same directory and rename over the
	// target so a crash mid-write cannot leave a truncated collection.
	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}

func (s *Store) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("ensure data dir %s: %w", s.dir, err)
	}
	return nil
}
