package database

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/snapseek/backend/internal/domain/entities"
	"github.com/snapseek/backend/internal/domain/repositories"
	"github.com/snapseek/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/snapseek/backend/pkg/errors"
)

const searchEventsTable = "search_events"

// SearchEventAdapter implements the append-only search event store in
// Postgres. Events are inserted once and never updated or deleted.
type SearchEventAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSearchEventAdapter creates a new search event adapter
func NewSearchEventAdapter(client *postgres.Client) repositories.SearchEventRepository {
	return &SearchEventAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Record appends one immutable search event. The single-row insert is the
// only write this adapter performs; concurrent writers are serialized by the
// database itself.
func (a *SearchEventAdapter) Record(ctx context.Context, event *entities.SearchEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	record := goqu.Record{
		"id":         event.ID,
		"user_id":    event.UserID,
		"term":       event.Term,
		"created_at": event.CreatedAt,
	}

	query, args, err := a.db.Insert(searchEventsTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build search event insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to record search event", err)
	}

	return nil
}

// ListByUser returns the user's most recent events, newest first. The seq
// column breaks ties between events sharing a timestamp so the order is
// stable under burst submissions.
func (a *SearchEventAdapter) ListByUser(ctx context.Context, userID string, limit int) ([]*entities.SearchEvent, error) {
	query, args, err := a.db.Select("id", "user_id", "term", "seq", "created_at").
		From(searchEventsTable).
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Desc(), goqu.I("seq").Desc()).
		Limit(uint(limit)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build history query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list search events", err)
	}
	defer rows.Close()

	var events []*entities.SearchEvent
	for rows.Next() {
		e := &entities.SearchEvent{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.Term, &e.Seq, &e.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan search event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read search events", err)
	}

	return events, nil
}

// CountByTerm counts events grouped by exact-match term across all users.
// Full scan on every call; counts are always derived from the log.
func (a *SearchEventAdapter) CountByTerm(ctx context.Context) ([]entities.TopTerm, error) {
	query, args, err := a.db.Select(goqu.C("term"), goqu.COUNT(goqu.Star()).As("count")).
		From(searchEventsTable).
		GroupBy("term").
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build term count query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count search terms", err)
	}
	defer rows.Close()

	var counts []entities.TopTerm
	for rows.Next() {
		var tc entities.TopTerm
		if err := rows.Scan(&tc.Term, &tc.Count); err != nil {
			return nil, apperrors.NewInternalError("failed to scan term count", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read term counts", err)
	}

	return counts, nil
}
