package ledger

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hong0506/haoin-tools-sub002/internal/domain"
	"github.com/hong0506/haoin-tools-sub002/internal/infra/prefs"
	"github.com/hong0506/haoin-tools-sub002/internal/infra/telemetry"
)

// Recents tracks the bounded, expiring list of recently-used tools,
// most recent first, persisted under the "recent-tools" key. Because
// Add always removes any same-id entry before prepending, the list is
// sorted by last access by construction and never holds duplicates.
type Recents struct {
	mu      sync.Mutex
	store   prefs.Store
	logger  *zap.Logger
	metrics *telemetry.Metrics
	entries []domain.RecentTool
	limit   int
	ttl     time.Duration
	now     func() time.Time
}

// RecentsOption adjusts a Recents ledger at construction.
type RecentsOption func(*Recents)

// WithRecentsLimit overrides the entry cap.
func WithRecentsLimit(limit int) RecentsOption {
	return func(r *Recents) {
		if limit > 0 {
			r.limit = limit
		}
	}
}

// WithRecentsTTL overrides the expiry window.
func WithRecentsTTL(ttl time.Duration) RecentsOption {
	return func(r *Recents) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithRecentsClock overrides the time source. Tests use this to pin
// "now".
func WithRecentsClock(now func() time.Time) RecentsOption {
	return func(r *Recents) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRecents loads the persisted list from store, dropping entries
// older than the expiry window. When expiry removed anything the
// compacted list is written back immediately. Corrupt values are
// logged and replaced with an empty list. metrics may be nil.
func NewRecents(store prefs.Store, logger *zap.Logger, metrics *telemetry.Metrics, opts ...RecentsOption) *Recents {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Recents{
		store:   store,
		logger:  logger.Named("recents"),
		metrics: metrics,
		limit:   domain.DefaultMaxRecentTools,
		ttl:     domain.DefaultRecentToolTTLDays * 24 * time.Hour,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.load()
	return r
}

func (r *Recents) load() {
	value, found, err := r.store.Load(domain.PreferenceKeyRecentTools)
	if err != nil {
		r.logger.Warn("load recent tools failed", zap.Error(err))
		r.metrics.RecordStoreError()
		return
	}
	if !found {
		return
	}
	var entries []domain.RecentTool
	if err := json.Unmarshal(value, &entries); err != nil {
		r.logger.Warn("discarding corrupt recent tools value", zap.Error(err))
		return
	}

	cutoff := r.now().Add(-r.ttl)
	kept := make([]domain.RecentTool, 0, len(entries))
	for _, entry := range entries {
		if entry.AccessedAt().Before(cutoff) {
			continue
		}
		kept = append(kept, entry)
	}
	r.entries = kept
	if len(kept) < len(entries) {
		// self-healing compaction: expired entries never come back
		r.persist()
	}
}

// Add records a use of the tool. Any existing entry for the same id is
// replaced, the new entry goes to the front, and the list is truncated
// to the cap.
func (r *Recents) Add(id, title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, entry := range r.entries {
		if entry.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	entry := domain.RecentTool{
		ID:           id,
		Title:        title,
		LastAccessed: r.now().UnixMilli(),
	}
	r.entries = append([]domain.RecentTool{entry}, r.entries...)
	if len(r.entries) > r.limit {
		r.entries = r.entries[:r.limit]
	}
	r.persist()
}

// List returns the entries most recent first.
func (r *Recents) List() []domain.RecentTool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.RecentTool(nil), r.entries...)
}

// Clear empties the list and removes the persisted key entirely rather
// than writing an empty array.
func (r *Recents) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	if err := r.store.Delete(domain.PreferenceKeyRecentTools); err != nil {
		r.logger.Warn("clear recent tools failed", zap.Error(err))
		r.metrics.RecordStoreError()
	}
}

func (r *Recents) persist() {
	entries := r.entries
	if entries == nil {
		entries = []domain.RecentTool{}
	}
	value, err := json.Marshal(entries)
	if err != nil {
		r.logger.Warn("encode recent tools failed", zap.Error(err))
		return
	}
	if err := r.store.Save(domain.PreferenceKeyRecentTools, value); err != nil {
		r.logger.Warn("persist recent tools failed", zap.Error(err))
		r.metrics.RecordStoreError()
	}
}
