// Package locale holds the per-language text resources for tools and
// categories. Bundles are read-only after load; a missing language,
// tool, or field always falls back to the canonical English text on
// the catalog record.
package locale

import (
	"github.com/hong0506/haoin-tools-sub002/internal/domain"
)

// ToolText is the translated display text of one tool. Either field
// may be empty when the translation is incomplete.
type ToolText struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// Bundle is one language's dictionary.
type Bundle struct {
	Tools      map[string]ToolText `toml:"tools"`
	Categories map[string]string   `toml:"categories"`
}

// Store maps language codes to their bundles.
type Store struct {
	bundles map[domain.Language]Bundle
}

// NewStore wraps already-decoded bundles.
func NewStore(bundles map[domain.Language]Bundle) *Store {
	if bundles == nil {
		bundles = map[domain.Language]Bundle{}
	}
	return &Store{bundles: bundles}
}

// Languages returns the codes that have a bundle loaded.
func (s *Store) Languages() []domain.Language {
	out := make([]domain.Language, 0, len(s.bundles))
	for _, lang := range domain.UILanguages {
		if _, ok := s.bundles[lang]; ok {
			out = append(out, lang)
		}
	}
	return out
}

// ToolTitle returns the translated title of a tool, if present.
func (s *Store) ToolTitle(lang domain.Language, toolID string) (string, bool) {
	text, ok := s.bundles[lang].Tools[toolID]
	if !ok || text.Title == "" {
		return "", false
	}
	return text.Title, true
}

// ToolDescription returns the translated description of a tool, if
// present.
func (s *Store) ToolDescription(lang domain.Language, toolID string) (string, bool) {
	text, ok := s.bundles[lang].Tools[toolID]
	if !ok || text.Description == "" {
		return "", false
	}
	return text.Description, true
}

// CategoryName returns the translated name of a category, if present.
func (s *Store) CategoryName(lang domain.Language, categoryID string) (string, bool) {
	name, ok := s.bundles[lang].Categories[categoryID]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// DisplayTitle returns the tool title for lang, falling back to the
// canonical title.
func (s *Store) DisplayTitle(lang domain.Language, tool domain.Tool) string {
	if title, ok := s.ToolTitle(lang, tool.ID); ok {
		return title
	}
	return tool.Title
}

// DisplayDescription returns the tool description for lang, falling
// back to the canonical description.
func (s *Store) DisplayDescription(lang domain.Language, tool domain.Tool) string {
	if description, ok := s.ToolDescription(lang, tool.ID); ok {
		return description
	}
	return tool.Description
}

// DisplayCategory returns the category name for lang, falling back to
// the category id.
func (s *Store) DisplayCategory(lang domain.Language, categoryID string) string {
	if name, ok := s.CategoryName(lang, categoryID); ok {
		return name
	}
	return categoryID
}
