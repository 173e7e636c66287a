package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
	"github.com/heartmarshall/traveleats-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Content *ContentHandler
	Health  *HealthHandler
}

// NewRouter mounts the HTTP API. authenticate resolves bearer tokens into
// the request context; credentialLimit guards register and login.
func NewRouter(h Handlers, authenticate, credentialLimit middleware.Middleware) http.Handler {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeValidation, "method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/auth", func(r chi.Router) {
		r.With(credentialLimit).Post("/register", h.Auth.Register)
		r.With(credentialLimit).Post("/login", h.Auth.Login)
		r.Post("/refresh", h.Auth.Refresh)
		r.With(authenticate, middleware.RequireUser).Post("/logout", h.Auth.Logout)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/meals", h.Content.Search(domain.ContentMeal))
		r.Get("/meals/{id}", h.Content.Detail(domain.ContentMeal))
		r.Get("/drinks", h.Content.Search(domain.ContentDrink))
		r.Get("/drinks/{id}", h.Content.Detail(domain.ContentDrink))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/me", h.Profile.Get)
			r.Patch("/me", h.Profile.Update)
			r.Get("/me/activity", h.Profile.Activity)
		})
	})

	return r
}
