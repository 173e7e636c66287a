package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
	"github.com/heartmarshall/traveleats-backend/internal/service/profile"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input profile.UpdateProfileInput) (*domain.User, error)
}

type historyService interface {
	History(ctx context.Context) (domain.ActivityView, error)
}

// ProfileHandler serves the caller's own profile and activity history.
type ProfileHandler struct {
	profiles profileService
	history  historyService
	log      *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(profiles profileService, history historyService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, history: history, log: logger.With("handler", "profile")}
}

// updateProfileRequest fields are optional; an absent or null field is left
// unchanged and "avatarUrl": "" removes the avatar.
type updateProfileRequest struct {
	Username  *string `json:"username"`
	FullName  *string `json:"fullname"`
	AvatarURL *string `json:"avatarUrl"`
}

// Get handles GET /api/me.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.profiles.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(user))
}

// Update handles PATCH /api/me.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.profiles.UpdateProfile(r.Context(), profile.UpdateProfileInput{
		Username:  req.Username,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(user))
}

// Activity handles GET /api/me/activity.
func (h *ProfileHandler) Activity(w http.ResponseWriter, r *http.Request) {
	view, err := h.history.History(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
