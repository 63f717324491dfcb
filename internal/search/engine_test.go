package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/hong0506/haoin-tools-sub002/internal/domain"
	"github.com/hong0506/haoin-tools-sub002/internal/infra/locale"
)

func testTools() []domain.Tool {
	return []domain.Tool{
		{ID: "word-counter", Title: "Word Counter", Description: "Count words", Category: "text"},
		{ID: "loan-calculator", Title: "Loan Calculator", Description: "Estimate payments", Category: "finance"},
		{ID: "uuid-generator", Title: "UUID Generator", Description: "Generate identifiers", Category: "generator"},
	}
}

func testTexts() *locale.Store {
	return locale.NewStore(map[domain.Language]locale.Bundle{
		domain.LangChinese: {
			Tools: map[string]locale.ToolText{
				"word-counter": {Title: "字数统计", Description: "统计文本中的字数"},
			},
			Categories: map[string]string{"text": "文本工具"},
		},
		domain.LangSpanish: {
			Tools: map[string]locale.ToolText{
				"loan-calculator": {Title: "Calculadora de préstamos"},
			},
			Categories: map[string]string{"finance": "Finanzas"},
		},
		// not in the search subset, must never produce a match
		domain.LangFrench: {
			Tools: map[string]locale.ToolText{
				"uuid-generator": {Title: "Générateur d'UUID", Description: "unique-needle-french"},
			},
		},
	})
}

func TestSearchBlankQueryReturnsInputUnchanged(t *testing.T) {
	engine := NewEngine(testTexts())
	tools := testTools()

	for _, query := range []string{"", "   ", "\t\n"} {
		got := engine.Search(tools, query)
		require.Empty(t, cmp.Diff(tools, got))
	}
}

func TestSearchCanonicalTitle(t *testing.T) {
	engine := NewEngine(testTexts())

	got := engine.Search(testTools(), "CoUnTeR")
	require.Len(t, got, 1)
	require.Equal(t, "word-counter", got[0].ID)
}

func TestSearchCanonicalDescriptionAndCategory(t *testing.T) {
	engine := NewEngine(testTexts())

	got := engine.Search(testTools(), "payments")
	require.Len(t, got, 1)
	require.Equal(t, "loan-calculator", got[0].ID)

	got = engine.Search(testTools(), "generator")
	require.Len(t, got, 1)
	require.Equal(t, "uuid-generator", got[0].ID)
}

func TestSearchCrossLanguage(t *testing.T) {
	engine := NewEngine(testTexts())

	// zh description matches even though no English field contains it
	got := engine.Search(testTools(), "字数")
	require.Len(t, got, 1)
	require.Equal(t, "word-counter", got[0].ID)

	// es title
	got = engine.Search(testTools(), "préstamos")
	require.Len(t, got, 1)
	require.Equal(t, "loan-calculator", got[0].ID)

	// translated category name
	got = engine.Search(testTools(), "文本工具")
	require.Len(t, got, 1)
	require.Equal(t, "word-counter", got[0].ID)
}

func TestSearchIgnoresLanguagesOutsideSubset(t *testing.T) {
	engine := NewEngine(testTexts())

	got := engine.Search(testTools(), "unique-needle-french")
	require.Empty(t, got)
}

func TestSearchKeepsInputOrder(t *testing.T) {
	engine := NewEngine(testTexts())
	tools := []domain.Tool{
		{ID: "b", Title: "Beta Counter", Category: "text"},
		{ID: "a", Title: "Alpha Counter", Category: "text"},
	}

	got := engine.Search(tools, "counter")
	require.Len(t, got, 2)
	require.Equal(t, "b", got[0].ID)
	require.Equal(t, "a", got[1].ID)
}

func TestSearchNoMatches(t *testing.T) {
	engine := NewEngine(testTexts())
	require.Empty(t, engine.Search(testTools(), "zzz"))
}

func TestSearchNilTextSource(t *testing.T) {
	engine := NewEngine(nil)

	got := engine.Search(testTools(), "count")
	require.Len(t, got, 1)
	require.Equal(t, "word-counter", got[0].ID)
}
