package app

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	infracatalog "github.com/hong0506/haoin-tools-sub002/internal/infra/catalog"
)

const watchDebounce = 200 * time.Millisecond

// ValidationResult is one round of catalog validation from the
// watcher.
type ValidationResult struct {
	Issues []string
	Err    error
}

// CatalogWatcher re-validates a catalog file whenever it changes on
// disk. It watches the parent directory because editors replace files
// on save.
type CatalogWatcher struct {
	logger *zap.Logger
	loader *infracatalog.Loader
	path   string
}

func NewCatalogWatcher(logger *zap.Logger, path string) *CatalogWatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogWatcher{
		logger: logger.Named("catalog_watcher"),
		loader: infracatalog.NewLoader(logger),
		path:   path,
	}
}

// Run validates once immediately and then on every (debounced) change
// until ctx is done. Results are delivered through onResult on the
// watcher's goroutine.
func (w *CatalogWatcher) Run(ctx context.Context, onResult func(ValidationResult)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	onResult(w.validate(ctx))

	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-watcher.Errors:
			if err != nil {
				w.logger.Warn("catalog watcher error", zap.Error(err))
			}
		case event := <-watcher.Events:
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(watchDebounce)
		case <-timerChan(timer):
			timer = nil
			onResult(w.validate(ctx))
		}
	}
}

func (w *CatalogWatcher) validate(ctx context.Context) ValidationResult {
	issues, err := w.loader.Validate(ctx, w.path)
	return ValidationResult{Issues: issues, Err: err}
}

func timerChan(timer *time.Timer) <-chan time.Time {
	if timer == nil {
		return nil
	}
	return timer.C
}
