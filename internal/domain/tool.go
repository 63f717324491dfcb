package domain

// BadgeVariant tags a tool card in the UI (new, hot, updated).
type BadgeVariant string

const (
	BadgeNone    BadgeVariant = ""
	BadgeNew     BadgeVariant = "new"
	BadgeHot     BadgeVariant = "hot"
	BadgeUpdated BadgeVariant = "updated"
)

// Tool is a single utility's catalog entry. The catalog is loaded once
// at startup and never mutated; IDs are stable across releases because
// favorites and recents reference tools by id.
type Tool struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Path         string       `json:"path"`
	Icon         string       `json:"icon"`
	BadgeVariant BadgeVariant `json:"badgeVariant,omitempty"`
}

// Category groups tools in the navigation sidebar.
type Category struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	Icon string `json:"icon"`
}

// Catalog holds the full tool registry. Tools keeps catalog order;
// lookups go through the id indexes.
type Catalog struct {
	Tools      []Tool
	Categories []Category

	toolsByID      map[string]int
	categoriesByID map[string]int
}

// NewCatalog builds the id indexes for the given records. Callers are
// expected to have validated uniqueness already (the loader does).
func NewCatalog(tools []Tool, categories []Category) Catalog {
	c := Catalog{
		Tools:          tools,
		Categories:     categories,
		toolsByID:      make(map[string]int, len(tools)),
		categoriesByID: make(map[string]int, len(categories)),
	}
	for i, tool := range tools {
		c.toolsByID[tool.ID] = i
	}
	for i, category := range categories {
		c.categoriesByID[category.ID] = i
	}
	return c
}

// ToolByID returns the tool for id.
func (c Catalog) ToolByID(id string) (Tool, bool) {
	i, ok := c.toolsByID[id]
	if !ok {
		return Tool{}, false
	}
	return c.Tools[i], true
}

// CategoryByID returns the category for id.
func (c Catalog) CategoryByID(id string) (Category, bool) {
	i, ok := c.categoriesByID[id]
	if !ok {
		return Category{}, false
	}
	return c.Categories[i], true
}

// ToolsInCategory returns the tools of one category in catalog order.
func (c Catalog) ToolsInCategory(categoryID string) []Tool {
	var out []Tool
	for _, tool := range c.Tools {
		if tool.Category == categoryID {
			out = append(out, tool)
		}
	}
	return out
}
