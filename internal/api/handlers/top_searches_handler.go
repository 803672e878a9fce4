package handlers

import (
	"context"
	"net/http"

	"github.com/snapseek/backend/internal/domain/entities"
)

// topSearchesLimit is the fixed size of the public leaderboard.
const topSearchesLimit = 5

// TopTermsService defines the aggregation operations used by the handler.
type TopTermsService interface {
	TopTerms(ctx context.Context, n int) ([]entities.TopTerm, error)
}

// TopSearchesHandler serves the global most-searched-terms leaderboard.
type TopSearchesHandler struct {
	service TopTermsService
}

// NewTopSearchesHandler creates a new top searches handler
func NewTopSearchesHandler(service TopTermsService) *TopSearchesHandler {
	return &TopSearchesHandler{service: service}
}

// GetTopSearches handles GET /api/top-searches
func (h *TopSearchesHandler) GetTopSearches(w http.ResponseWriter, r *http.Request) {
	top, err := h.service.TopTerms(r.Context(), topSearchesLimit)
	if err != nil {
		respondWithAppError(w, r, err, "failed to compute top searches")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"top": top,
	})
}
