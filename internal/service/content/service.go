// Package content serves meal and drink records from the public content
// APIs, with an optional cache in front and activity tracking on detail views.
package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentProvider interface {
	Search(ctx context.Context, keyword string) ([]domain.ContentSummary, error)
	Lookup(ctx context.Context, id string) (*domain.ContentItem, error)
}

type contentCache interface {
	GetItem(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error)
	SetItem(ctx context.Context, item *domain.ContentItem, ttl time.Duration) error
	GetSearch(ctx context.Context, kind domain.ContentKind, keyword string) ([]domain.ContentSummary, bool, error)
	SetSearch(ctx context.Context, kind domain.ContentKind, keyword string, results []domain.ContentSummary, ttl time.Duration) error
}

type activityTracker interface {
	Track(ctx context.Context, label string)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements content search and detail lookups.
type Service struct {
	log       *slog.Logger
	providers map[domain.ContentKind]contentProvider
	cache     contentCache
	cacheTTL  time.Duration
	tracker   activityTracker
}

// NewService creates a new content service. cache may be nil, in which case
// every call goes to the provider.
func NewService(
	logger *slog.Logger,
	meals contentProvider,
	drinks contentProvider,
	cache contentCache,
	cacheTTL time.Duration,
	tracker activityTracker,
) *Service {
	return &Service{
		log: logger.With("service", "content"),
		providers: map[domain.ContentKind]contentProvider{
			domain.ContentMeal:  meals,
			domain.ContentDrink: drinks,
		},
		cache:    cache,
		cacheTTL: cacheTTL,
		tracker:  tracker,
	}
}
