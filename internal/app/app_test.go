package app

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hong0506/haoin-tools-sub002/internal/domain"
	"github.com/hong0506/haoin-tools-sub002/internal/infra/telemetry"
)

func TestNewWithBuiltinCatalog(t *testing.T) {
	application, err := New(context.Background(), zap.NewNop(), Options{
		DataDir: t.TempDir(),
	})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, application.Close())
	}()

	service := application.Service()
	require.NotEmpty(t, service.Catalog().Tools)

	got := service.Search("uuid")
	require.NotEmpty(t, got)
	require.Equal(t, "uuid-generator", got[0].ID)
}

func TestNewPersistsAcrossInstances(t *testing.T) {
	dataDir := t.TempDir()

	first, err := New(context.Background(), zap.NewNop(), Options{DataDir: dataDir})
	require.NoError(t, err)
	first.Service().AddFavorite("word-counter")
	_, err = first.Service().OpenTool("word-counter")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(context.Background(), zap.NewNop(), Options{DataDir: dataDir})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, second.Close())
	}()

	require.True(t, second.Service().IsFavorited("word-counter"))
	recents := second.Service().RecentTools()
	require.Len(t, recents, 1)
	require.Equal(t, "word-counter", recents[0].ID)
}

func TestNewCountsOperations(t *testing.T) {
	registry := prometheus.NewRegistry()
	application, err := New(context.Background(), zap.NewNop(), Options{
		DataDir: t.TempDir(),
		Metrics: telemetry.NewMetrics(registry),
	})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, application.Close())
	}()

	service := application.Service()
	service.Search("uuid")
	service.ToggleFavorite("word-counter")
	_, err = service.OpenTool("word-counter")
	require.NoError(t, err)

	require.Equal(t, 1.0, counterValue(t, registry, "haoin_searches_total"))
	require.Equal(t, 1.0, counterValue(t, registry, "haoin_tool_opens_total"))
	require.Equal(t, 2.0, counterValue(t, registry, "haoin_ledger_writes_total"))
}

func counterValue(t *testing.T, gatherer prometheus.Gatherer, name string) float64 {
	t.Helper()
	families, err := gatherer.Gather()
	require.NoError(t, err)
	total := 0.0
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

func TestNewRejectsUnknownLanguage(t *testing.T) {
	_, err := New(context.Background(), zap.NewNop(), Options{
		DataDir: t.TempDir(),
		Lang:    domain.Language("xx"),
	})
	require.Error(t, err)
}

func TestNewChineseDisplayLanguage(t *testing.T) {
	application, err := New(context.Background(), zap.NewNop(), Options{
		DataDir: t.TempDir(),
		Lang:    domain.LangChinese,
	})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, application.Close())
	}()

	views := application.Service().AllViews()
	require.NotEmpty(t, views)
	for _, view := range views {
		if view.ID == "word-counter" {
			require.Equal(t, "字数统计", view.Title)
			return
		}
	}
	t.Fatal("word-counter missing from views")
}
