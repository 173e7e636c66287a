// Package profile implements reading and editing the caller's own profile.
package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
)

// profileRepo defines the profile repository interface needed by profile service.
type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch) (*domain.User, error)
}

// Service implements profile operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		profiles: profiles,
	}
}
