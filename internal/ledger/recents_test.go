package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hong0506/haoin-tools-sub002/internal/domain"
	"github.com/hong0506/haoin-tools-sub002/internal/infra/prefs"
	"github.com/hong0506/haoin-tools-sub002/internal/infra/telemetry"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestRecentsDedupAndReorder(t *testing.T) {
	store := prefs.NewMemoryStore()
	recents := NewRecents(store, zap.NewNop(), nil)

	recents.Add("a", "A")
	recents.Add("b", "B")
	require.Equal(t, []string{"b", "a"}, recentIDs(recents))

	recents.Add("a", "A")
	require.Equal(t, []string{"a", "b"}, recentIDs(recents))
	require.Len(t, recents.List(), 2, "no duplicate entry for a")
}

func TestRecentsCap(t *testing.T) {
	store := prefs.NewMemoryStore()
	recents := NewRecents(store, zap.NewNop(), nil)

	for i := 0; i < domain.DefaultMaxRecentTools+1; i++ {
		recents.Add(fmt.Sprintf("tool-%d", i), fmt.Sprintf("Tool %d", i))
	}

	entries := recents.List()
	require.Len(t, entries, domain.DefaultMaxRecentTools)
	require.Equal(t, fmt.Sprintf("tool-%d", domain.DefaultMaxRecentTools), entries[0].ID)
	// the oldest entry fell off
	for _, entry := range entries {
		require.NotEqual(t, "tool-0", entry.ID)
	}
}

func TestRecentsExpiryOnLoad(t *testing.T) {
	store := prefs.NewMemoryStore()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	stale := domain.RecentTool{
		ID:           "stale",
		Title:        "Stale",
		LastAccessed: now.Add(-31 * 24 * time.Hour).UnixMilli(),
	}
	fresh := domain.RecentTool{
		ID:           "fresh",
		Title:        "Fresh",
		LastAccessed: now.Add(-1 * 24 * time.Hour).UnixMilli(),
	}
	payload, err := json.Marshal([]domain.RecentTool{fresh, stale})
	require.NoError(t, err)
	require.NoError(t, store.Save(domain.PreferenceKeyRecentTools, payload))

	recents := NewRecents(store, zap.NewNop(), nil, WithRecentsClock(fixedClock(now)))
	require.Equal(t, []string{"fresh"}, recentIDs(recents))

	// compaction was written back
	value, found, err := store.Load(domain.PreferenceKeyRecentTools)
	require.NoError(t, err)
	require.True(t, found)
	var persisted []domain.RecentTool
	require.NoError(t, json.Unmarshal(value, &persisted))
	require.Len(t, persisted, 1)
	require.Equal(t, "fresh", persisted[0].ID)
}

func TestRecentsClearDeletesKey(t *testing.T) {
	store := prefs.NewMemoryStore()
	recents := NewRecents(store, zap.NewNop(), nil)

	recents.Add("a", "A")
	_, found, err := store.Load(domain.PreferenceKeyRecentTools)
	require.NoError(t, err)
	require.True(t, found)

	recents.Clear()
	require.Empty(t, recents.List())
	_, found, err = store.Load(domain.PreferenceKeyRecentTools)
	require.NoError(t, err)
	require.False(t, found, "clear removes the key, not just its contents")
}

func TestRecentsCorruptValueRecoversEmpty(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.Save(domain.PreferenceKeyRecentTools, []byte(`not json`)))

	recents := NewRecents(store, zap.NewNop(), nil)
	require.Empty(t, recents.List())

	recents.Add("a", "A")
	require.Equal(t, []string{"a"}, recentIDs(recents))
}

func TestRecentsPersistenceRoundTrip(t *testing.T) {
	store := prefs.NewMemoryStore()

	first := NewRecents(store, zap.NewNop(), nil)
	first.Add("word-counter", "Word Counter")

	second := NewRecents(store, zap.NewNop(), nil)
	entries := second.List()
	require.Len(t, entries, 1)
	require.Equal(t, "word-counter", entries[0].ID)
	require.Equal(t, "Word Counter", entries[0].Title)
}

func TestRecentsCustomLimit(t *testing.T) {
	store := prefs.NewMemoryStore()
	recents := NewRecents(store, zap.NewNop(), nil, WithRecentsLimit(2))

	recents.Add("a", "A")
	recents.Add("b", "B")
	recents.Add("c", "C")
	require.Equal(t, []string{"c", "b"}, recentIDs(recents))
}

func TestRecentsCountsWriteFailures(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(registry)
	store := failingStore{Store: prefs.NewMemoryStore(), saveErr: errors.New("disk full")}
	recents := NewRecents(store, zap.NewNop(), metrics)

	recents.Add("a", "A")
	require.Equal(t, []string{"a"}, recentIDs(recents))
	require.Equal(t, 1.0, storeErrorCount(t, registry))
}

func recentIDs(r *Recents) []string {
	entries := r.List()
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	return ids
}
