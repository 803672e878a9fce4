package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/snapseek/backend/internal/api/middleware"
	"github.com/snapseek/backend/internal/application/services"
	"github.com/snapseek/backend/internal/infrastructure/observability"
	apperrors "github.com/snapseek/backend/pkg/errors"
)

// SearchService defines the search operations used by the handler.
type SearchService interface {
	Search(ctx context.Context, userID, term string) (*services.SearchResult, error)
}

// SearchHandler handles search submissions.
type SearchHandler struct {
	service SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

type searchRequest struct {
	Term string `json:"term"`
}

// Search handles POST /api/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var payload searchRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.service.Search(r.Context(), user.ID, payload.Term)
	if err != nil {
		respondWithAppError(w, r, err, "search failed")
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps the error taxonomy to status codes and short
// user-facing messages. Internal detail stays in the logs; the distinct
// messages let a caller tell a store outage from a provider outage.
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := observability.LoggerFromContext(r.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeUnauthorized:
			respondWithError(w, http.StatusUnauthorized, "authentication required")
		case apperrors.ErrorTypeExternal:
			logger.Error().Err(err).Msg("image provider failure")
			respondWithError(w, http.StatusInternalServerError, "image search is unavailable")
		default:
			logger.Error().Err(err).Msg("persistence failure")
			respondWithError(w, http.StatusInternalServerError, fallback)
		}
		return
	}

	logger.Error().Err(err).Msg("unexpected failure")
	respondWithError(w, http.StatusInternalServerError, fallback)
}
