package routes

import (
	"net/http"

	"github.com/snapseek/backend/internal/api/handlers"
	"github.com/snapseek/backend/internal/api/middleware"
	"github.com/snapseek/backend/internal/domain/providers"
	"github.com/snapseek/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	searchHandler      *handlers.SearchHandler
	historyHandler     *handlers.HistoryHandler
	topSearchesHandler *handlers.TopSearchesHandler
	meHandler          *handlers.MeHandler

	sessionStore providers.SessionStore
	cookieName   string
	metrics      *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	searchHandler *handlers.SearchHandler,
	historyHandler *handlers.HistoryHandler,
	topSearchesHandler *handlers.TopSearchesHandler,
	meHandler *handlers.MeHandler,
	sessionStore providers.SessionStore,
	cookieName string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                http.NewServeMux(),
		searchHandler:      searchHandler,
		historyHandler:     historyHandler,
		topSearchesHandler: topSearchesHandler,
		meHandler:          meHandler,
		sessionStore:       sessionStore,
		cookieName:         cookieName,
		metrics:            metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Search endpoints; search and history need a resolved identity
	r.mux.Handle("POST /api/search", middleware.RequireAuth(http.HandlerFunc(r.searchHandler.Search)))
	r.mux.Handle("GET /api/history", middleware.RequireAuth(http.HandlerFunc(r.historyHandler.GetHistory)))

	// Public endpoints
	r.mux.HandleFunc("GET /api/top-searches", r.topSearchesHandler.GetTopSearches)
	r.mux.HandleFunc("GET /api/me", r.meHandler.GetMe)

	// Apply middleware in reverse order (last middleware wraps first).
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	// Identity resolution wraps the mux so per-route auth checks see it.
	if r.sessionStore != nil {
		handler = middleware.SessionIdentity(r.sessionStore, r.cookieName)(handler)
	}

	// CORS outermost so preflights never hit the session store.
	handler = middleware.CORSMiddleware(handler)

	return handler
}
