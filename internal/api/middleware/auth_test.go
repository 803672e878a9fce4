package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/snapseek/backend/internal/api/middleware"
	"github.com/snapseek/backend/internal/domain/entities"
)

type stubSessionStore struct {
	sessions map[string]*entities.User
	getErr   error
	touched  []string
}

func (s *stubSessionStore) Get(ctx context.Context, sessionID string) (*entities.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.sessions[sessionID], nil
}

func (s *stubSessionStore) Touch(ctx context.Context, sessionID string) error {
	s.touched = append(s.touched, sessionID)
	return nil
}

func resolveIdentity(t *testing.T, store *stubSessionStore, cookie *http.Cookie) *entities.User {
	t.Helper()

	var got *entities.User
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.UserFromContext(r.Context())
	})

	req := httptest.NewRequest("GET", "/api/history", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	middleware.SessionIdentity(store, "sid")(inner).ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestSessionIdentity_ResolvesUser(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*entities.User{
		"abc": {ID: "user-1", Name: "Ada", Provider: "google"},
	}}

	user := resolveIdentity(t, store, &http.Cookie{Name: "sid", Value: "abc"})

	assert.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, []string{"abc"}, store.touched, "an active session gets its expiry extended")
}

func TestSessionIdentity_NoCookieIsAnonymous(t *testing.T) {
	store := &stubSessionStore{}

	user := resolveIdentity(t, store, nil)

	assert.Nil(t, user)
	assert.Empty(t, store.touched)
}

func TestSessionIdentity_UnknownSessionIsAnonymous(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*entities.User{}}

	user := resolveIdentity(t, store, &http.Cookie{Name: "sid", Value: "missing"})

	assert.Nil(t, user)
}

func TestSessionIdentity_StoreFailureIsAnonymous(t *testing.T) {
	store := &stubSessionStore{getErr: errors.New("redis down")}

	user := resolveIdentity(t, store, &http.Cookie{Name: "sid", Value: "abc"})

	assert.Nil(t, user)
}

func TestRequireAuth(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("rejects anonymous requests", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/history", nil)
		w := httptest.NewRecorder()

		middleware.RequireAuth(inner).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("passes authenticated requests through", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/history", nil)
		req = req.WithContext(middleware.WithUser(req.Context(), &entities.User{ID: "user-1"}))
		w := httptest.NewRecorder()

		middleware.RequireAuth(inner).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
