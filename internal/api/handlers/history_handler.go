package handlers

import (
	"context"
	"net/http"

	"github.com/snapseek/backend/internal/api/middleware"
	"github.com/snapseek/backend/internal/application/services"
	"github.com/snapseek/backend/internal/domain/entities"
)

// HistoryService defines the history operations used by the handler.
type HistoryService interface {
	HistoryFor(ctx context.Context, userID string, limit int) ([]entities.HistoryEntry, error)
}

// HistoryHandler serves a user's own search history.
type HistoryHandler struct {
	service HistoryService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(service HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// GetHistory handles GET /api/history
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	history, err := h.service.HistoryFor(r.Context(), user.ID, services.DefaultHistoryLimit)
	if err != nil {
		respondWithAppError(w, r, err, "failed to get history")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"history": history,
	})
}
