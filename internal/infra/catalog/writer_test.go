package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExportRoundTripsThroughLoad(t *testing.T) {
	loader := NewLoader(zap.NewNop())
	original, err := loader.LoadBuiltin(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "exported.yaml")
	require.NoError(t, WriteFile(path, original))

	reloaded, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(original.Tools, reloaded.Tools))
	require.Empty(t, cmp.Diff(original.Categories, reloaded.Categories))
}

func TestExportEmitsCurrentVersion(t *testing.T) {
	loader := NewLoader(zap.NewNop())
	catalog, err := loader.LoadBuiltin(context.Background())
	require.NoError(t, err)

	data, err := Export(catalog)
	require.NoError(t, err)
	require.Contains(t, string(data), "version: v1.0.0")
}
