package repositories

import (
	"context"

	"github.com/snapseek/backend/internal/domain/entities"
)

// SearchEventRepository defines the interface for the append-only search
// event store.
type SearchEventRepository interface {
	// Record appends one immutable event. The write is durable before
	// Record returns successfully.
	Record(ctx context.Context, event *entities.SearchEvent) error

	// ListByUser returns the user's most recent events, newest first,
	// bounded by limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]*entities.SearchEvent, error)

	// CountByTerm returns the number of events per exact-match term across
	// all users. Full-scan semantics; no incremental counters.
	CountByTerm(ctx context.Context) ([]entities.TopTerm, error)
}
