package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/snapseek/backend/internal/adapters/database"
	"github.com/snapseek/backend/internal/domain/entities"
	"github.com/snapseek/backend/internal/infrastructure/clients/postgres"
	redisclient "github.com/snapseek/backend/internal/infrastructure/clients/redis"
	"github.com/snapseek/backend/pkg/config"
)

// Seeds a local environment: a couple of demo sessions in Redis (normally
// written by the external auth service) and a spread of search events so
// history and top-searches return something interesting.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating search_events before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, `TRUNCATE TABLE search_events RESTART IDENTITY`); err != nil {
			log.Fatalf("Failed to truncate search_events: %v", err)
		}
	}

	eventRepo := database.NewSearchEventAdapter(pgClient)

	type seedSearch struct {
		userID string
		term   string
		age    time.Duration
	}
	searches := []seedSearch{
		{"demo-alice", "mountains", 96 * time.Hour},
		{"demo-alice", "coffee", 72 * time.Hour},
		{"demo-alice", "mountains", 48 * time.Hour},
		{"demo-alice", "aurora borealis", 2 * time.Hour},
		{"demo-bob", "mountains", 24 * time.Hour},
		{"demo-bob", "street photography", 12 * time.Hour},
		{"demo-bob", "coffee", 6 * time.Hour},
		{"demo-bob", "coffee", 1 * time.Hour},
	}

	now := time.Now().UTC()
	for _, s := range searches {
		event := &entities.SearchEvent{
			UserID:    s.userID,
			Term:      s.term,
			CreatedAt: now.Add(-s.age),
		}
		if err := eventRepo.Record(ctx, event); err != nil {
			log.Fatalf("Failed to record search event for %s: %v", s.userID, err)
		}
	}
	log.Printf("Seeded %d search events", len(searches))

	rdClient, err := redisclient.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, skipping demo sessions: %v", err)
		return
	}
	defer rdClient.Close()

	sessions := map[string]entities.User{
		"demo-session-alice": {ID: "demo-alice", Name: "Alice Demo", Provider: "google"},
		"demo-session-bob":   {ID: "demo-bob", Name: "Bob Demo", Provider: "github"},
	}
	for sid, user := range sessions {
		payload, err := json.Marshal(map[string]string{
			"user_id":  user.ID,
			"name":     user.Name,
			"provider": user.Provider,
		})
		if err != nil {
			log.Fatalf("Failed to marshal session payload: %v", err)
		}
		if err := rdClient.Client().Set(ctx, "sess:"+sid, payload, cfg.Session.TTL).Err(); err != nil {
			log.Fatalf("Failed to write demo session %s: %v", sid, err)
		}
	}
	log.Printf("Seeded %d demo sessions (cookie name %q)", len(sessions), cfg.Session.CookieName)
}
