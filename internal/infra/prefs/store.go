// Package prefs provides durable per-user key-value storage for the
// favorites and recent-tools ledgers. Values are opaque JSON payloads;
// interpreting (and recovering from corrupt) payloads is the caller's
// concern.
package prefs

import "errors"

var (
	ErrStoreClosed = errors.New("preference store is closed")
	ErrEmptyKey    = errors.New("preference key is required")
)

// Store is the persistence contract the ledgers are constructed with.
// Load reports found=false when the key has never been written or was
// deleted. Implementations must treat Delete of a missing key as a
// no-op.
type Store interface {
	Load(key string) (value []byte, found bool, err error)
	Save(key string, value []byte) error
	Delete(key string) error
	Close() error
}
