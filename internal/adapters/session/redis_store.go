package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/snapseek/backend/internal/domain/entities"
	"github.com/snapseek/backend/internal/domain/providers"
	redisclient "github.com/snapseek/backend/internal/infrastructure/clients/redis"
)

const sessionKeyPrefix = "sess:"

// RedisStore reads sessions the external auth service writes to Redis.
// Values are JSON-encoded identities keyed by session id.
type RedisStore struct {
	client *redisclient.Client
	ttl    time.Duration
}

// NewRedisStore creates a new Redis session store adapter
func NewRedisStore(client *redisclient.Client, ttl time.Duration) providers.SessionStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

type sessionPayload struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

// Get resolves a session id to an identity. Unknown or expired sessions
// yield (nil, nil); only a store failure is an error.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*entities.User, error) {
	data, err := s.client.Client().Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var payload sessionPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		// A corrupt session is indistinguishable from no session for the
		// caller; it must not fail the request.
		log.Warn().Err(err).Msg("discarding malformed session payload")
		return nil, nil
	}
	if payload.UserID == "" {
		return nil, nil
	}

	return &entities.User{
		ID:       payload.UserID,
		Name:     payload.Name,
		Provider: payload.Provider,
	}, nil
}

// Touch extends the session TTL, giving cookie sessions a rolling expiry.
func (s *RedisStore) Touch(ctx context.Context, sessionID string) error {
	if err := s.client.Client().Expire(ctx, sessionKeyPrefix+sessionID, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}
