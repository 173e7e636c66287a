package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
	"github.com/heartmarshall/traveleats-backend/internal/service/content"
)

type contentService interface {
	Search(ctx context.Context, input content.SearchInput) ([]domain.ContentSummary, error)
	Detail(ctx context.Context, input content.DetailInput) (*domain.ContentItem, error)
}

// ContentHandler serves meal and drink search and detail endpoints.
type ContentHandler struct {
	svc contentService
	log *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(svc contentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, log: logger.With("handler", "content")}
}

type searchResponse struct {
	Results []domain.ContentSummary `json:"results"`
}

// Search returns a handler for GET /api/{meals|drinks}?q=.
func (h *ContentHandler) Search(kind domain.ContentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := h.svc.Search(r.Context(), content.SearchInput{
			Kind:    kind,
			Keyword: r.URL.Query().Get("q"),
		})
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}

		writeJSON(w, http.StatusOK, searchResponse{Results: results})
	}
}

// Detail returns a handler for GET /api/{meals|drinks}/{id}. Viewing a
// record while signed in adds it to the caller's activity log.
func (h *ContentHandler) Detail(kind domain.ContentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := h.svc.Detail(r.Context(), content.DetailInput{
			Kind: kind,
			ID:   chi.URLParam(r, "id"),
		})
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}
