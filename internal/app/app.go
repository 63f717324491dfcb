// Package app wires the catalog, locales, preference store and ledgers
// into the service the UI layer (here, the CLI) talks to.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/hong0506/haoin-tools-sub002/internal/domain"
	infracatalog "github.com/hong0506/haoin-tools-sub002/internal/infra/catalog"
	"github.com/hong0506/haoin-tools-sub002/internal/infra/locale"
	"github.com/hong0506/haoin-tools-sub002/internal/infra/prefs"
	"github.com/hong0506/haoin-tools-sub002/internal/infra/telemetry"
	"github.com/hong0506/haoin-tools-sub002/internal/ledger"
	"github.com/hong0506/haoin-tools-sub002/internal/search"
)

// Options configures App construction. Zero values select the embedded
// catalog and locales, the default data directory, and English.
type Options struct {
	CatalogPath string
	LocalesDir  string
	DataDir     string
	Lang        domain.Language
	Metrics     *telemetry.Metrics
}

type App struct {
	logger  *zap.Logger
	store   prefs.Store
	service *Service
}

// New builds the application. A preference store that cannot be opened
// degrades to an in-memory store: the session then behaves as if the
// user had no saved preferences, which is never fatal.
func New(ctx context.Context, logger *zap.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	lang := opts.Lang
	if lang == "" {
		lang = domain.DefaultLanguage
	}
	if !domain.IsUILanguage(lang) {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}

	loader := infracatalog.NewLoader(logger)
	var catalog domain.Catalog
	var err error
	if opts.CatalogPath == "" {
		catalog, err = loader.LoadBuiltin(ctx)
	} else {
		catalog, err = loader.Load(ctx, opts.CatalogPath)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var locales *locale.Store
	if opts.LocalesDir == "" {
		locales, err = locale.LoadEmbedded(logger)
	} else {
		locales, err = locale.LoadDir(logger, opts.LocalesDir)
	}
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}

	store := openStore(logger, opts.DataDir)

	service := NewService(logger, ServiceDeps{
		Catalog:   catalog,
		Locales:   locales,
		Engine:    search.NewEngine(locales),
		Favorites: ledger.NewFavorites(store, logger, opts.Metrics),
		Recents:   ledger.NewRecents(store, logger, opts.Metrics),
		Metrics:   opts.Metrics,
		Lang:      lang,
	})

	return &App{
		logger:  logger,
		store:   store,
		service: service,
	}, nil
}

func (a *App) Service() *Service {
	return a.service
}

func (a *App) Close() error {
	return a.store.Close()
}

func openStore(logger *zap.Logger, dataDir string) prefs.Store {
	if dataDir == "" {
		resolved, err := DefaultDataDir()
		if err != nil {
			logger.Warn("resolve data dir failed, preferences will not persist", zap.Error(err))
			return prefs.NewMemoryStore()
		}
		dataDir = resolved
	}
	store, err := prefs.OpenBoltStore(filepath.Join(dataDir, "preferences.db"))
	if err != nil {
		logger.Warn("open preference store failed, preferences will not persist", zap.Error(err))
		return prefs.NewMemoryStore()
	}
	return store
}

// DefaultDataDir returns the per-user directory holding the preference
// database.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "haoin-tools"), nil
}
