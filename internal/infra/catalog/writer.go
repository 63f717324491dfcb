package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hong0506/haoin-tools-sub002/internal/domain"
)

type exportCatalog struct {
	Version    string           `yaml:"version"`
	Categories []exportCategory `yaml:"categories"`
	Tools      []exportTool     `yaml:"tools"`
}

type exportCategory struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path,omitempty"`
	Icon string `yaml:"icon,omitempty"`
}

type exportTool struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Category    string `yaml:"category"`
	Path        string `yaml:"path,omitempty"`
	Icon        string `yaml:"icon,omitempty"`
	Badge       string `yaml:"badge,omitempty"`
}

// Export serializes a catalog back to its file format. The output round
// trips through Load, so exporting the built-in catalog is the way to
// scaffold a custom one.
func Export(catalog domain.Catalog) ([]byte, error) {
	out := exportCatalog{
		Version:    domain.CatalogSchemaVersion,
		Categories: make([]exportCategory, 0, len(catalog.Categories)),
		Tools:      make([]exportTool, 0, len(catalog.Tools)),
	}
	for _, category := range catalog.Categories {
		out.Categories = append(out.Categories, exportCategory{
			ID:   category.ID,
			Path: category.Path,
			Icon: category.Icon,
		})
	}
	for _, tool := range catalog.Tools {
		out.Tools = append(out.Tools, exportTool{
			ID:          tool.ID,
			Title:       tool.Title,
			Description: tool.Description,
			Category:    tool.Category,
			Path:        tool.Path,
			Icon:        tool.Icon,
			Badge:       string(tool.BadgeVariant),
		})
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return data, nil
}

// WriteFile exports the catalog to path, creating parent directories as
// needed.
func WriteFile(path string, catalog domain.Catalog) error {
	data, err := Export(catalog)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
