package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBuiltinCatalog(t *testing.T) {
	loader := NewLoader(zap.NewNop())
	catalog, err := loader.LoadBuiltin(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, catalog.Tools)
	require.NotEmpty(t, catalog.Categories)

	tool, ok := catalog.ToolByID("word-counter")
	require.True(t, ok)
	require.Equal(t, "Word Counter", tool.Title)

	_, ok = catalog.CategoryByID(tool.Category)
	require.True(t, ok, "every built-in tool must resolve its category")
}

func TestLoadValidFile(t *testing.T) {
	path := writeCatalog(t, `
version: v1.2.0
categories:
  - id: text
    path: /category/text
    icon: type
tools:
  - id: word-counter
    title: Word Counter
    description: Count words
    category: text
    path: /tools/word-counter
    icon: file-text
    badge: new
`)
	loader := NewLoader(zap.NewNop())
	catalog, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, catalog.Tools, 1)
	require.Len(t, catalog.Categories, 1)
}

func TestLoadRejectsDuplicateToolIDs(t *testing.T) {
	path := writeCatalog(t, `
categories:
  - id: text
tools:
  - id: word-counter
    title: Word Counter
    category: text
  - id: word-counter
    title: Word Counter Again
    category: text
`)
	loader := NewLoader(zap.NewNop())
	_, err := loader.Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate id")
}

func TestLoadRejectsIncompatibleVersion(t *testing.T) {
	path := writeCatalog(t, `
version: v2.0.0
categories:
  - id: text
tools:
  - id: word-counter
    title: Word Counter
    category: text
`)
	loader := NewLoader(zap.NewNop())
	_, err := loader.Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "incompatible")
}

func TestLoadDropsOrphanedCategoryTools(t *testing.T) {
	path := writeCatalog(t, `
categories:
  - id: text
tools:
  - id: word-counter
    title: Word Counter
    category: text
  - id: mystery
    title: Mystery Tool
    category: vanished
`)
	loader := NewLoader(zap.NewNop())
	catalog, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, catalog.Tools, 1)
	_, ok := catalog.ToolByID("mystery")
	require.False(t, ok)
}

func TestValidateReportsOrphansAsIssues(t *testing.T) {
	path := writeCatalog(t, `
categories:
  - id: text
tools:
  - id: mystery
    title: Mystery Tool
    category: vanished
`)
	loader := NewLoader(zap.NewNop())
	issues, err := loader.Validate(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Contains(t, issues[0], "unknown category")
}

func TestValidateCleanCatalog(t *testing.T) {
	path := writeCatalog(t, `
version: 1.0.0
categories:
  - id: text
tools:
  - id: word-counter
    title: Word Counter
    category: text
`)
	loader := NewLoader(zap.NewNop())
	issues, err := loader.Validate(context.Background(), path)
	require.NoError(t, err)
	require.Empty(t, issues)
}

func TestLoadRejectsMissingRequiredFields(t *testing.T) {
	path := writeCatalog(t, `
categories:
  - id: text
tools:
  - id: ""
    title: ""
    category: text
`)
	loader := NewLoader(zap.NewNop())
	_, err := loader.Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "id is required")
	require.Contains(t, err.Error(), "title is required")
}
