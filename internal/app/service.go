package app

import (
	"go.uber.org/zap"

	"github.com/hong0506/haoin-tools-sub002/internal/domain"
	"github.com/hong0506/haoin-tools-sub002/internal/infra/locale"
	"github.com/hong0506/haoin-tools-sub002/internal/infra/telemetry"
	"github.com/hong0506/haoin-tools-sub002/internal/ledger"
	"github.com/hong0506/haoin-tools-sub002/internal/search"
)

// ToolView is a tool rendered for the active display language.
type ToolView struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Path        string              `json:"path"`
	Badge       domain.BadgeVariant `json:"badge,omitempty"`
	Favorited   bool                `json:"favorited"`
}

// ServiceDeps are the collaborators a Service is built from.
type ServiceDeps struct {
	Catalog   domain.Catalog
	Locales   *locale.Store
	Engine    *search.Engine
	Favorites *ledger.Favorites
	Recents   *ledger.Recents
	Metrics   *telemetry.Metrics
	Lang      domain.Language
}

// Service is the surface the UI layer calls. All operations are
// synchronous; persistence failures degrade inside the ledgers and
// never reach the caller.
type Service struct {
	logger    *zap.Logger
	catalog   domain.Catalog
	locales   *locale.Store
	engine    *search.Engine
	favorites *ledger.Favorites
	recents   *ledger.Recents
	metrics   *telemetry.Metrics
	lang      domain.Language
}

func NewService(logger *zap.Logger, deps ServiceDeps) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		logger:    logger.Named("service"),
		catalog:   deps.Catalog,
		locales:   deps.Locales,
		engine:    deps.Engine,
		favorites: deps.Favorites,
		recents:   deps.Recents,
		metrics:   deps.Metrics,
		lang:      deps.Lang,
	}
}

// Catalog returns the loaded catalog.
func (s *Service) Catalog() domain.Catalog {
	return s.catalog
}

// Search filters the catalog by query across every searchable
// language.
func (s *Service) Search(query string) []domain.Tool {
	s.metrics.RecordSearch()
	return s.engine.Search(s.catalog.Tools, query)
}

// SearchViews is Search rendered for display.
func (s *Service) SearchViews(query string) []ToolView {
	return s.views(s.Search(query))
}

// AllViews renders the whole catalog for display.
func (s *Service) AllViews() []ToolView {
	return s.views(s.catalog.Tools)
}

func (s *Service) views(tools []domain.Tool) []ToolView {
	out := make([]ToolView, 0, len(tools))
	for _, tool := range tools {
		out = append(out, ToolView{
			ID:          tool.ID,
			Title:       s.locales.DisplayTitle(s.lang, tool),
			Description: s.locales.DisplayDescription(s.lang, tool),
			Category:    s.locales.DisplayCategory(s.lang, tool.Category),
			Path:        tool.Path,
			Badge:       tool.BadgeVariant,
			Favorited:   s.favorites.IsFavorited(tool.ID),
		})
	}
	return out
}

// IsFavorited reports whether the tool is favorited.
func (s *Service) IsFavorited(id string) bool {
	return s.favorites.IsFavorited(id)
}

// Favorites returns the favorited tool ids.
func (s *Service) Favorites() []string {
	return s.favorites.Favorites()
}

// ToggleFavorite flips the favorite state of id.
func (s *Service) ToggleFavorite(id string) {
	s.favorites.Toggle(id)
	s.metrics.RecordLedgerWrite("favorites")
}

// AddFavorite favorites id.
func (s *Service) AddFavorite(id string) {
	s.favorites.Add(id)
	s.metrics.RecordLedgerWrite("favorites")
}

// RemoveFavorite unfavorites id.
func (s *Service) RemoveFavorite(id string) {
	s.favorites.Remove(id)
	s.metrics.RecordLedgerWrite("favorites")
}

// OpenTool records a navigation into the tool and returns its record.
// The recents entry carries the canonical title, so renamed catalog
// titles refresh on the next visit.
func (s *Service) OpenTool(id string) (domain.Tool, error) {
	tool, ok := s.catalog.ToolByID(id)
	if !ok {
		return domain.Tool{}, domain.ErrToolNotFound
	}
	s.recents.Add(tool.ID, tool.Title)
	s.metrics.RecordToolOpen()
	s.metrics.RecordLedgerWrite("recents")
	return tool, nil
}

// RecentTools returns the recently-used entries, most recent first.
func (s *Service) RecentTools() []domain.RecentTool {
	return s.recents.List()
}

// ClearRecentTools empties the recently-used list.
func (s *Service) ClearRecentTools() {
	s.recents.Clear()
	s.metrics.RecordLedgerWrite("recents")
}
