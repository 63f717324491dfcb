package locale

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/hong0506/haoin-tools-sub002/internal/domain"
)

//go:embed locales/*.toml
var embeddedLocales embed.FS

// LoadEmbedded decodes the bundles shipped with the binary. Files for
// languages outside domain.UILanguages are skipped with a warning.
func LoadEmbedded(logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("locale")

	entries, err := embeddedLocales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read embedded locales: %w", err)
	}

	bundles := make(map[domain.Language]Bundle, len(entries))
	for _, entry := range entries {
		lang := domain.Language(strings.TrimSuffix(entry.Name(), ".toml"))
		if !domain.IsUILanguage(lang) {
			logger.Warn("skipping unknown locale file", zap.String("file", entry.Name()))
			continue
		}
		data, err := embeddedLocales.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", entry.Name(), err)
		}
		bundle, err := decodeBundle(data)
		if err != nil {
			return nil, fmt.Errorf("decode locale %s: %w", entry.Name(), err)
		}
		bundles[lang] = bundle
	}
	return NewStore(bundles), nil
}

// LoadDir overlays bundles from dir on top of the embedded defaults.
// Only *.toml files named by a UI language code are considered; an
// override replaces individual tool and category entries, not the
// whole language.
func LoadDir(logger *zap.Logger, dir string) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	store, err := LoadEmbedded(logger)
	if err != nil {
		return nil, err
	}
	logger = logger.Named("locale")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		lang := domain.Language(strings.TrimSuffix(entry.Name(), ".toml"))
		if !domain.IsUILanguage(lang) {
			logger.Warn("skipping unknown locale file", zap.String("file", entry.Name()))
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", entry.Name(), err)
		}
		override, err := decodeBundle(data)
		if err != nil {
			return nil, fmt.Errorf("decode locale %s: %w", entry.Name(), err)
		}
		store.bundles[lang] = mergeBundle(store.bundles[lang], override)
	}
	return store, nil
}

func decodeBundle(data []byte) (Bundle, error) {
	var bundle Bundle
	if err := toml.Unmarshal(data, &bundle); err != nil {
		return Bundle{}, err
	}
	return bundle, nil
}

func mergeBundle(base, override Bundle) Bundle {
	merged := Bundle{
		Tools:      make(map[string]ToolText, len(base.Tools)+len(override.Tools)),
		Categories: make(map[string]string, len(base.Categories)+len(override.Categories)),
	}
	for id, text := range base.Tools {
		merged.Tools[id] = text
	}
	for id, text := range override.Tools {
		existing := merged.Tools[id]
		if text.Title != "" {
			existing.Title = text.Title
		}
		if text.Description != "" {
			existing.Description = text.Description
		}
		merged.Tools[id] = existing
	}
	for id, name := range base.Categories {
		merged.Categories[id] = name
	}
	for id, name := range override.Categories {
		if name != "" {
			merged.Categories[id] = name
		}
	}
	return merged
}
