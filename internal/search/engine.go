// Package search filters the tool catalog by free-text query across
// every searchable language at once.
package search

import (
	"strings"

	"github.com/hong0506/haoin-tools-sub002/internal/domain"
)

// TextSource supplies translated text. Lookups report ok=false when no
// translation exists; the engine then simply skips that check.
type TextSource interface {
	ToolTitle(lang domain.Language, toolID string) (string, bool)
	ToolDescription(lang domain.Language, toolID string) (string, bool)
	CategoryName(lang domain.Language, categoryID string) (string, bool)
}

// Engine matches tools against a query. It is a pure filter: results
// keep input order, there is no ranking, and a match in any language or
// field is enough. Users can therefore find a tool by typing in a
// language other than their current locale.
type Engine struct {
	texts TextSource
}

func NewEngine(texts TextSource) *Engine {
	return &Engine{texts: texts}
}

// Search returns the tools matching query. A blank or whitespace-only
// query returns the input unchanged.
func (e *Engine) Search(tools []domain.Tool, query string) []domain.Tool {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return tools
	}

	matched := make([]domain.Tool, 0, len(tools))
	for _, tool := range tools {
		if e.matches(tool, normalized) {
			matched = append(matched, tool)
		}
	}
	return matched
}

func (e *Engine) matches(tool domain.Tool, query string) bool {
	if containsFold(tool.Title, query) ||
		containsFold(tool.Description, query) ||
		containsFold(tool.Category, query) {
		return true
	}
	if e.texts == nil {
		return false
	}
	for _, lang := range domain.SearchLanguages {
		if title, ok := e.texts.ToolTitle(lang, tool.ID); ok && containsFold(title, query) {
			return true
		}
		if description, ok := e.texts.ToolDescription(lang, tool.ID); ok && containsFold(description, query) {
			return true
		}
		if name, ok := e.texts.CategoryName(lang, tool.Category); ok && containsFold(name, query) {
			return true
		}
	}
	return false
}

// containsFold expects needle to be lowercased already.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
