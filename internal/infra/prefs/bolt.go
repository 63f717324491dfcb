package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

const preferencesBucketName = "preferences"

// BoltStore persists preferences in a single-file bbolt database. The
// file lock makes concurrent writers from other processes last-write-
// wins at the key level; no merge is attempted.
type BoltStore struct {
	mu     sync.RWMutex
	db     *bolt.DB
	path   string
	closed bool
}

// OpenBoltStore opens (creating if needed) the preference database at
// path.
func OpenBoltStore(path string) (*BoltStore, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("preferences path is required")
	}
	if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
		return nil, fmt.Errorf("ensure preferences dir: %w", err)
	}
	options := &bolt.Options{Timeout: time.Second}
	db, err := bolt.Open(trimmed, 0o600, options)
	if err != nil {
		return nil, fmt.Errorf("open preferences db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(preferencesBucketName))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure preferences bucket: %w", err)
	}
	return &BoltStore{db: db, path: trimmed}, nil
}

// Path returns the database file path.
func (s *BoltStore) Path() string {
	return s.path
}

func (s *BoltStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func (s *BoltStore) Load(key string) ([]byte, bool, error) {
	if strings.TrimSpace(key) == "" {
		return nil, false, ErrEmptyKey
	}
	var value []byte
	var found bool
	err := s.view(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(preferencesBucketName))
		if bucket == nil {
			return fmt.Errorf("missing preferences bucket")
		}
		stored := bucket.Get([]byte(key))
		if stored == nil {
			return nil
		}
		found = true
		value = append([]byte(nil), stored...)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return value, found, nil
}

func (s *BoltStore) Save(key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	if value == nil {
		return fmt.Errorf("preference value is nil for %s", key)
	}
	return s.update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(preferencesBucketName))
		if bucket == nil {
			return fmt.Errorf("missing preferences bucket")
		}
		if err := bucket.Put([]byte(key), value); err != nil {
			return fmt.Errorf("write preference %s: %w", key, err)
		}
		return nil
	})
}

func (s *BoltStore) Delete(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return s.update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(preferencesBucketName))
		if bucket == nil {
			return fmt.Errorf("missing preferences bucket")
		}
		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("delete preference %s: %w", key, err)
		}
		return nil
	})
}

func (s *BoltStore) view(fn func(*bolt.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	return s.db.View(fn)
}

func (s *BoltStore) update(fn func(*bolt.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	return s.db.Update(fn)
}
