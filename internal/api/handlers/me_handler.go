package handlers

import (
	"net/http"

	"github.com/snapseek/backend/internal/api/middleware"
)

// MeHandler reports the identity resolved for the current request.
type MeHandler struct{}

// NewMeHandler creates a new me handler
func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe handles GET /api/me. Anonymous requests get a null user rather than
// an error; issuing the actual authentication challenge is not this
// service's job.
func (h *MeHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
