package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
	"github.com/heartmarshall/traveleats-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfile replaces the fields set in input on the caller's profile.
// The avatar is replaced wholesale; an empty AvatarURL removes it.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.profiles.Update(ctx, userID, domain.ProfilePatch{
		Username:  input.Username,
		FullName:  input.FullName,
		AvatarURL: input.AvatarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("profile.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.String("fields", strings.Join(input.fields(), ",")))

	return user, nil
}
