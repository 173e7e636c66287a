package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
)

// Search returns the records of input.Kind whose name matches the keyword.
// A blank keyword returns an empty list without contacting the API.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.ContentSummary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	keyword := strings.TrimSpace(input.Keyword)
	if keyword == "" {
		return []domain.ContentSummary{}, nil
	}

	if s.cache != nil {
		cached, found, err := s.cache.GetSearch(ctx, input.Kind, keyword)
		if err != nil {
			s.log.WarnContext(ctx, "content cache read failed",
				slog.String("kind", input.Kind.String()),
				slog.String("error", err.Error()))
		} else if found {
			return cached, nil
		}
	}

	results, err := s.providers[input.Kind].Search(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("content.Search: %w: %w", domain.ErrUpstream, err)
	}
	if results == nil {
		results = []domain.ContentSummary{}
	}

	if s.cache != nil {
		if err := s.cache.SetSearch(ctx, input.Kind, keyword, results, s.cacheTTL); err != nil {
			s.log.WarnContext(ctx, "content cache write failed",
				slog.String("kind", input.Kind.String()),
				slog.String("error", err.Error()))
		}
	}

	return results, nil
}
