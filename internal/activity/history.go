package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
	"github.com/heartmarshall/traveleats-backend/pkg/ctxutil"
)

type profileReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// HistoryService serves the caller's presented activity log.
type HistoryService struct {
	profiles profileReader
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(profiles profileReader) *HistoryService {
	return &HistoryService{profiles: profiles}
}

// History reads the caller's profile and presents its activity log.
// Returns ErrUnauthorized if no userID is found in context.
func (s *HistoryService) History(ctx context.Context) (domain.ActivityView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ActivityView{}, domain.ErrUnauthorized
	}

	user, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return domain.ActivityView{}, fmt.Errorf("activity.History: %w", err)
	}

	return Present(user.Preferences.ActivityLog), nil
}
