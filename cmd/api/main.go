package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/snapseek/backend/internal/adapters/database"
	"github.com/snapseek/backend/internal/adapters/providers/images"
	"github.com/snapseek/backend/internal/adapters/session"
	"github.com/snapseek/backend/internal/api/handlers"
	"github.com/snapseek/backend/internal/api/routes"
	"github.com/snapseek/backend/internal/application/services"
	"github.com/snapseek/backend/internal/domain/providers"
	"github.com/snapseek/backend/internal/infrastructure/clients/postgres"
	"github.com/snapseek/backend/internal/infrastructure/clients/redis"
	"github.com/snapseek/backend/internal/infrastructure/observability"
	"github.com/snapseek/backend/pkg/config"
)

func main() {
	// Load .env for local development; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	// Initialize Redis; without it every request is simply anonymous, so
	// the public endpoints keep working.
	var sessionStore providers.SessionStore
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize Redis client; sessions disabled")
	} else {
		defer redisClient.Close()
		sessionStore = session.NewRedisStore(redisClient, cfg.Session.TTL)
		log.Info().Msg("Redis session store initialized")
	}

	// Initialize adapters
	eventRepo := database.NewSearchEventAdapter(pgClient)
	imageProvider := images.NewImageProvider(&cfg.Unsplash)

	// Initialize services
	searchService := services.NewSearchService(eventRepo, imageProvider)
	historyService := services.NewHistoryService(eventRepo)
	topTermsService := services.NewTopTermsService(eventRepo)

	// Set up router
	router := routes.NewRouter(
		handlers.NewSearchHandler(searchService),
		handlers.NewHistoryHandler(historyService),
		handlers.NewTopSearchesHandler(topTermsService),
		handlers.NewMeHandler(),
		sessionStore,
		cfg.Session.CookieName,
		metrics,
	)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
