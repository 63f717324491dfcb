package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hong0506/haoin-tools-sub002/internal/domain"
)

func TestLoadEmbeddedCoversUILanguages(t *testing.T) {
	store, err := LoadEmbedded(zap.NewNop())
	require.NoError(t, err)
	require.ElementsMatch(t, domain.UILanguages, store.Languages())
}

func TestToolTextLookup(t *testing.T) {
	store, err := LoadEmbedded(zap.NewNop())
	require.NoError(t, err)

	title, ok := store.ToolTitle(domain.LangChinese, "word-counter")
	require.True(t, ok)
	require.Equal(t, "字数统计", title)

	_, ok = store.ToolTitle(domain.LangKorean, "word-counter")
	require.False(t, ok, "korean bundle only carries category names")
}

func TestDisplayFallsBackToCanonicalText(t *testing.T) {
	store := NewStore(map[domain.Language]Bundle{
		domain.LangChinese: {
			Tools: map[string]ToolText{
				"word-counter": {Title: "字数统计"},
			},
		},
	})
	tool := domain.Tool{ID: "word-counter", Title: "Word Counter", Description: "Count words"}

	require.Equal(t, "字数统计", store.DisplayTitle(domain.LangChinese, tool))
	// description has no zh entry, canonical text wins
	require.Equal(t, "Count words", store.DisplayDescription(domain.LangChinese, tool))
	// whole language missing
	require.Equal(t, "Word Counter", store.DisplayTitle(domain.LangRussian, tool))
	require.Equal(t, "date", store.DisplayCategory(domain.LangChinese, "date"))
}

func TestLoadDirOverlaysEmbeddedBundles(t *testing.T) {
	dir := t.TempDir()
	override := `
[categories]
text = "Custom Text"

[tools.word-counter]
title = "Custom Counter"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.toml"), []byte(override), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "xx.toml"), []byte("[categories]\n"), 0o644))

	store, err := LoadDir(zap.NewNop(), dir)
	require.NoError(t, err)

	title, ok := store.ToolTitle(domain.LangEnglish, "word-counter")
	require.True(t, ok)
	require.Equal(t, "Custom Counter", title)

	// untouched entries from the embedded bundle survive the overlay
	description, ok := store.ToolDescription(domain.LangEnglish, "word-counter")
	require.True(t, ok)
	require.NotEmpty(t, description)

	name, ok := store.CategoryName(domain.LangEnglish, "text")
	require.True(t, ok)
	require.Equal(t, "Custom Text", name)
}

func TestLoadDirRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.toml"), []byte("not toml ["), 0o644))

	_, err := LoadDir(zap.NewNop(), dir)
	require.Error(t, err)
}
