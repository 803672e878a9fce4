package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/snapseek/backend/internal/api/handlers"
	"github.com/snapseek/backend/internal/api/middleware"
	"github.com/snapseek/backend/internal/application/services"
	"github.com/snapseek/backend/internal/domain/entities"
	apperrors "github.com/snapseek/backend/pkg/errors"
)

type stubSearchService struct {
	result   *services.SearchResult
	err      error
	calls    int
	lastTerm string
	lastUser string
}

func (s *stubSearchService) Search(ctx context.Context, userID, term string) (*services.SearchResult, error) {
	s.calls++
	s.lastUser = userID
	s.lastTerm = term
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func authenticatedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := middleware.WithUser(req.Context(), &entities.User{ID: "user-1", Name: "Ada", Provider: "google"})
	return req.WithContext(ctx)
}

func TestSearchHandler_Search_Success(t *testing.T) {
	service := &stubSearchService{result: &services.SearchResult{
		Message: "You searched for 'mountains' -- 2 results.",
		Images: []entities.Image{
			{ID: "a", ThumbnailURL: "u1", AltText: "alpine"},
			{ID: "b", ThumbnailURL: "u2", AltText: "image"},
		},
	}}
	handler := handlers.NewSearchHandler(service)

	req := authenticatedRequest("POST", "/api/search", `{"term":"mountains"}`)
	w := httptest.NewRecorder()

	handler.Search(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", service.lastUser)
	assert.Equal(t, "mountains", service.lastTerm)

	var response struct {
		Message string           `json:"message"`
		Images  []entities.Image `json:"images"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "You searched for 'mountains' -- 2 results.", response.Message)
	assert.Len(t, response.Images, 2)
}

func TestSearchHandler_Search_Unauthenticated(t *testing.T) {
	service := &stubSearchService{}
	handler := handlers.NewSearchHandler(service)

	req := httptest.NewRequest("POST", "/api/search", strings.NewReader(`{"term":"cats"}`))
	w := httptest.NewRecorder()

	handler.Search(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, service.calls)
}

func TestSearchHandler_Search_InvalidPayload(t *testing.T) {
	service := &stubSearchService{}
	handler := handlers.NewSearchHandler(service)

	req := authenticatedRequest("POST", "/api/search", `{"term":`)
	w := httptest.NewRecorder()

	handler.Search(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, service.calls)
}

func TestSearchHandler_Search_EmptyTerm(t *testing.T) {
	service := &stubSearchService{err: apperrors.NewValidationError("term is required")}
	handler := handlers.NewSearchHandler(service)

	req := authenticatedRequest("POST", "/api/search", `{"term":"   "}`)
	w := httptest.NewRecorder()

	handler.Search(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "term is required", response["error"])
}

func TestSearchHandler_Search_FailureMessagesAreDistinct(t *testing.T) {
	t.Run("persistence failure", func(t *testing.T) {
		service := &stubSearchService{err: apperrors.NewInternalError("insert failed", nil)}
		handler := handlers.NewSearchHandler(service)

		req := authenticatedRequest("POST", "/api/search", `{"term":"cats"}`)
		w := httptest.NewRecorder()

		handler.Search(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "search failed", response["error"])
	})

	t.Run("provider failure", func(t *testing.T) {
		service := &stubSearchService{err: apperrors.NewExternalError("provider down", nil)}
		handler := handlers.NewSearchHandler(service)

		req := authenticatedRequest("POST", "/api/search", `{"term":"cats"}`)
		w := httptest.NewRecorder()

		handler.Search(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "image search is unavailable", response["error"])
	})
}
