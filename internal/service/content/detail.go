package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
)

// Detail returns one record and hands its label to the activity tracker.
// The tracker decides whether the caller is signed in; anonymous views are
// served but not recorded.
// Returns ErrNotFound if the API has no record with that id.
func (s *Service) Detail(ctx context.Context, input DetailInput) (*domain.ContentItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	id := strings.TrimSpace(input.ID)

	item, err := s.lookup(ctx, input.Kind, id)
	if err != nil {
		return nil, err
	}

	s.tracker.Track(ctx, item.Label())

	return item, nil
}

func (s *Service) lookup(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error) {
	if s.cache != nil {
		cached, err := s.cache.GetItem(ctx, kind, id)
		if err != nil {
			s.log.WarnContext(ctx, "content cache read failed",
				slog.String("kind", kind.String()),
				slog.String("id", id),
				slog.String("error", err.Error()))
		} else if cached != nil {
			return cached, nil
		}
	}

	item, err := s.providers[kind].Lookup(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("content.Detail: %w: %w", domain.ErrUpstream, err)
	}
	if item == nil {
		return nil, fmt.Errorf("content.Detail: %s %s: %w", kind, id, domain.ErrNotFound)
	}

	if s.cache != nil {
		if err := s.cache.SetItem(ctx, item, s.cacheTTL); err != nil {
			s.log.WarnContext(ctx, "content cache write failed",
				slog.String("kind", kind.String()),
				slog.String("id", id),
				slog.String("error", err.Error()))
		}
	}

	return item, nil
}
