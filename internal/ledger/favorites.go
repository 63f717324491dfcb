// Package ledger implements the persisted per-user collections: the
// favorites set and the recently-used list. Both write through to a
// prefs.Store after every mutation; a failed write is logged and the
// in-memory state stays authoritative for the rest of the session.
package ledger

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/hong0506/haoin-tools-sub002/internal/domain"
	"github.com/hong0506/haoin-tools-sub002/internal/infra/prefs"
	"github.com/hong0506/haoin-tools-sub002/internal/infra/telemetry"
)

// Favorites tracks the set of favorited tool ids, persisted as a JSON
// string array under the "favorites" key. Insertion order is kept for
// display.
type Favorites struct {
	mu      sync.Mutex
	store   prefs.Store
	logger  *zap.Logger
	metrics *telemetry.Metrics
	ids     []string
	index   map[string]struct{}
}

// NewFavorites loads the persisted set from store. A corrupt or
// wrong-shaped value is logged and replaced with an empty set; it is
// never an error. metrics may be nil.
func NewFavorites(store prefs.Store, logger *zap.Logger, metrics *telemetry.Metrics) *Favorites {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Favorites{
		store:   store,
		logger:  logger.Named("favorites"),
		metrics: metrics,
		index:   make(map[string]struct{}),
	}
	f.load()
	return f
}

func (f *Favorites) load() {
	value, found, err := f.store.Load(domain.PreferenceKeyFavorites)
	if err != nil {
		f.logger.Warn("load favorites failed", zap.Error(err))
		f.metrics.RecordStoreError()
		return
	}
	if !found {
		return
	}
	var ids []string
	if err := json.Unmarshal(value, &ids); err != nil {
		f.logger.Warn("discarding corrupt favorites value", zap.Error(err))
		return
	}
	for _, id := range ids {
		if _, ok := f.index[id]; ok {
			continue
		}
		f.index[id] = struct{}{}
		f.ids = append(f.ids, id)
	}
}

// IsFavorited reports whether id is in the set.
func (f *Favorites) IsFavorited(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.index[id]
	return ok
}

// Favorites returns the favorited ids in insertion order.
func (f *Favorites) Favorites() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ids...)
}

// Toggle adds id when absent and removes it when present.
func (f *Favorites) Toggle(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.index[id]; ok {
		f.remove(id)
	} else {
		f.add(id)
	}
	f.persist()
}

// Add puts id in the set; adding an existing favorite is a no-op.
func (f *Favorites) Add(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.index[id]; ok {
		return
	}
	f.add(id)
	f.persist()
}

// Remove takes id out of the set; removing a missing id is a no-op.
func (f *Favorites) Remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.index[id]; !ok {
		return
	}
	f.remove(id)
	f.persist()
}

func (f *Favorites) add(id string) {
	f.index[id] = struct{}{}
	f.ids = append(f.ids, id)
}

func (f *Favorites) remove(id string) {
	delete(f.index, id)
	for i, existing := range f.ids {
		if existing == id {
			f.ids = append(f.ids[:i], f.ids[i+1:]...)
			break
		}
	}
}

func (f *Favorites) persist() {
	ids := f.ids
	if ids == nil {
		ids = []string{}
	}
	value, err := json.Marshal(ids)
	if err != nil {
		f.logger.Warn("encode favorites failed", zap.Error(err))
		return
	}
	if err := f.store.Save(domain.PreferenceKeyFavorites, value); err != nil {
		f.logger.Warn("persist favorites failed", zap.Error(err))
		f.metrics.RecordStoreError()
	}
}
