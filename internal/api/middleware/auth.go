package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/snapseek/backend/internal/domain/entities"
	"github.com/snapseek/backend/internal/domain/providers"
)

type contextKey string

const userContextKey contextKey = "currentUser"

// SessionIdentity resolves the session cookie to an identity and stores it
// in the request context. Session establishment happens elsewhere; this
// side only consumes the resolved identity. Requests without a valid
// session proceed anonymously.
func SessionIdentity(store providers.SessionStore, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := store.Get(r.Context(), cookie.Value)
			if err != nil {
				// A session store outage must not take down routes that
				// work anonymously; the request proceeds unauthenticated.
				log.Warn().Err(err).Msg("failed to resolve session")
				next.ServeHTTP(w, r)
				return
			}

			if user != nil {
				if err := store.Touch(r.Context(), cookie.Value); err != nil {
					log.Warn().Err(err).Msg("failed to extend session")
				}
				r = r.WithContext(context.WithValue(r.Context(), userContextKey, user))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth rejects requests that carry no resolved identity.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFromContext(r.Context()) == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext returns the identity resolved for this request, or nil.
func UserFromContext(ctx context.Context) *entities.User {
	user, _ := ctx.Value(userContextKey).(*entities.User)
	return user
}

// WithUser returns a context carrying the given identity. Used by tests.
func WithUser(ctx context.Context, user *entities.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
