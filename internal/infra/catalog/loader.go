// Package catalog loads and validates the tool catalog. The catalog is
// read-only at runtime: it is loaded once at startup, either from the
// embedded built-in file or from a YAML file on disk.
package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/mod/semver"

	"github.com/hong0506/haoin-tools-sub002/internal/domain"
)

type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		return &Loader{logger: zap.NewNop()}
	}
	return &Loader{logger: logger.Named("catalog")}
}

type rawCatalog struct {
	Version    string        `mapstructure:"version"`
	Categories []rawCategory `mapstructure:"categories"`
	Tools      []rawTool     `mapstructure:"tools"`
}

type rawCategory struct {
	ID   string `mapstructure:"id"`
	Path string `mapstructure:"path"`
	Icon string `mapstructure:"icon"`
}

type rawTool struct {
	ID          string `mapstructure:"id"`
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Category    string `mapstructure:"category"`
	Path        string `mapstructure:"path"`
	Icon        string `mapstructure:"icon"`
	Badge       string `mapstructure:"badge"`
}

// Load reads and validates the catalog file at path. Structural
// problems (duplicate ids, missing required fields, incompatible
// version) fail the load; a tool referencing an unknown category is
// dropped with a warning so a stale catalog never takes the whole
// application down.
func (l *Loader) Load(ctx context.Context, path string) (domain.Catalog, error) {
	if path == "" {
		return domain.Catalog{}, errors.New("catalog path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}
	return l.load(data)
}

// LoadBuiltin returns the catalog compiled into the binary.
func (l *Loader) LoadBuiltin(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}
	return l.load(builtinCatalog)
}

// Validate runs the full pipeline on the file at path and returns every
// issue found, including orphaned category references that Load would
// only warn about. An empty slice means the catalog is clean.
func (l *Loader) Validate(ctx context.Context, path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("catalog path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := decodeCatalog(data)
	if err != nil {
		return nil, err
	}
	catalog, issues := normalizeCatalog(raw)
	for _, tool := range orphanedTools(catalog) {
		issues = append(issues, fmt.Sprintf("tool %q references unknown category %q", tool.ID, tool.Category))
	}
	return issues, nil
}

func (l *Loader) load(data []byte) (domain.Catalog, error) {
	raw, err := decodeCatalog(data)
	if err != nil {
		return domain.Catalog{}, err
	}
	catalog, issues := normalizeCatalog(raw)
	if len(issues) > 0 {
		return domain.Catalog{}, errors.New(strings.Join(issues, "; "))
	}

	orphans := orphanedTools(catalog)
	if len(orphans) == 0 {
		return catalog, nil
	}
	dropped := make(map[string]struct{}, len(orphans))
	for _, tool := range orphans {
		dropped[tool.ID] = struct{}{}
		l.logger.Warn("dropping tool with unknown category",
			zap.String("tool", tool.ID),
			zap.String("category", tool.Category),
		)
	}
	kept := make([]domain.Tool, 0, len(catalog.Tools))
	for _, tool := range catalog.Tools {
		if _, ok := dropped[tool.ID]; ok {
			continue
		}
		kept = append(kept, tool)
	}
	return domain.NewCatalog(kept, catalog.Categories), nil
}

func decodeCatalog(data []byte) (rawCatalog, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBuffer(data)); err != nil {
		return rawCatalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	var raw rawCatalog
	if err := v.Unmarshal(&raw); err != nil {
		return rawCatalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return raw, nil
}

func normalizeCatalog(raw rawCatalog) (domain.Catalog, []string) {
	var issues []string

	if err := checkVersion(raw.Version); err != nil {
		issues = append(issues, err.Error())
	}

	categories := make([]domain.Category, 0, len(raw.Categories))
	categorySeen := make(map[string]struct{}, len(raw.Categories))
	for i, rc := range raw.Categories {
		id := strings.TrimSpace(rc.ID)
		if id == "" {
			issues = append(issues, fmt.Sprintf("categories[%d]: id is required", i))
			continue
		}
		if _, ok := categorySeen[id]; ok {
			issues = append(issues, fmt.Sprintf("categories[%d]: duplicate id %q", i, id))
			continue
		}
		categorySeen[id] = struct{}{}
		categories = append(categories, domain.Category{
			ID:   id,
			Path: strings.TrimSpace(rc.Path),
			Icon: strings.TrimSpace(rc.Icon),
		})
	}

	tools := make([]domain.Tool, 0, len(raw.Tools))
	toolSeen := make(map[string]struct{}, len(raw.Tools))
	for i, rt := range raw.Tools {
		tool := domain.Tool{
			ID:           strings.TrimSpace(rt.ID),
			Title:        strings.TrimSpace(rt.Title),
			Description:  strings.TrimSpace(rt.Description),
			Category:     strings.TrimSpace(rt.Category),
			Path:         strings.TrimSpace(rt.Path),
			Icon:         strings.TrimSpace(rt.Icon),
			BadgeVariant: domain.BadgeVariant(strings.TrimSpace(rt.Badge)),
		}
		if errs := validateTool(tool, i); len(errs) > 0 {
			issues = append(issues, errs...)
			continue
		}
		if _, ok := toolSeen[tool.ID]; ok {
			issues = append(issues, fmt.Sprintf("tools[%d]: duplicate id %q", i, tool.ID))
			continue
		}
		toolSeen[tool.ID] = struct{}{}
		tools = append(tools, tool)
	}

	return domain.NewCatalog(tools, categories), issues
}

func validateTool(tool domain.Tool, index int) []string {
	var errs []string
	if tool.ID == "" {
		errs = append(errs, fmt.Sprintf("tools[%d]: id is required", index))
	}
	if tool.Title == "" {
		errs = append(errs, fmt.Sprintf("tools[%d]: title is required", index))
	}
	if tool.Category == "" {
		errs = append(errs, fmt.Sprintf("tools[%d]: category is required", index))
	}
	switch tool.BadgeVariant {
	case domain.BadgeNone, domain.BadgeNew, domain.BadgeHot, domain.BadgeUpdated:
	default:
		errs = append(errs, fmt.Sprintf("tools[%d]: badge must be one of: new, hot, updated", index))
	}
	return errs
}

func checkVersion(version string) error {
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		// files predating the version field are treated as current
		return nil
	}
	if !strings.HasPrefix(trimmed, "v") {
		trimmed = "v" + trimmed
	}
	if !semver.IsValid(trimmed) {
		return fmt.Errorf("version %q is not valid semver", version)
	}
	if semver.Major(trimmed) != semver.Major(domain.CatalogSchemaVersion) {
		return fmt.Errorf("catalog version %s is incompatible with %s", version, domain.CatalogSchemaVersion)
	}
	return nil
}

func orphanedTools(catalog domain.Catalog) []domain.Tool {
	var orphans []domain.Tool
	for _, tool := range catalog.Tools {
		if _, ok := catalog.CategoryByID(tool.Category); !ok {
			orphans = append(orphans, tool)
		}
	}
	return orphans
}
