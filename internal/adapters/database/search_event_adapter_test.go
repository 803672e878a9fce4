package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/snapseek/backend/internal/adapters/database"
	"github.com/snapseek/backend/internal/domain/entities"
	"github.com/snapseek/backend/internal/domain/repositories"
	"github.com/snapseek/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/snapseek/backend/pkg/errors"
)

func newMockAdapter(t *testing.T) (repositories.SearchEventRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return database.NewSearchEventAdapter(postgres.NewClientWithDB(db)), mock
}

func TestSearchEventAdapter_Record(t *testing.T) {
	t.Run("assigns id and timestamp and inserts one row", func(t *testing.T) {
		adapter, mock := newMockAdapter(t)

		mock.ExpectExec(`INSERT INTO "search_events"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		event := &entities.SearchEvent{UserID: "user-1", Term: "mountains"}
		err := adapter.Record(context.Background(), event)

		require.NoError(t, err)
		assert.NotEmpty(t, event.ID)
		assert.False(t, event.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("preserves a caller-supplied id", func(t *testing.T) {
		adapter, mock := newMockAdapter(t)

		mock.ExpectExec(`INSERT INTO "search_events"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		event := &entities.SearchEvent{
			ID:        "fixed-id",
			UserID:    "user-1",
			Term:      "cats",
			CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		}
		err := adapter.Record(context.Background(), event)

		require.NoError(t, err)
		assert.Equal(t, "fixed-id", event.ID)
	})

	t.Run("maps a rejected write to a persistence error", func(t *testing.T) {
		adapter, mock := newMockAdapter(t)

		mock.ExpectExec(`INSERT INTO "search_events"`).
			WillReturnError(errors.New("connection refused"))

		err := adapter.Record(context.Background(), &entities.SearchEvent{UserID: "user-1", Term: "cats"})

		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
	})
}

func TestSearchEventAdapter_ListByUser(t *testing.T) {
	t.Run("returns events newest first", func(t *testing.T) {
		adapter, mock := newMockAdapter(t)

		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "user_id", "term", "seq", "created_at"}).
			AddRow("id-3", "user-1", "cat", int64(3), now).
			AddRow("id-2", "user-1", "dog", int64(2), now.Add(-time.Minute)).
			AddRow("id-1", "user-1", "cat", int64(1), now.Add(-2*time.Minute))

		mock.ExpectQuery(`SELECT .+ FROM "search_events" WHERE \("user_id" = .+ ORDER BY "created_at" DESC, "seq" DESC LIMIT`).
			WillReturnRows(rows)

		events, err := adapter.ListByUser(context.Background(), "user-1", 10)

		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, "cat", events[0].Term)
		assert.Equal(t, "dog", events[1].Term)
		assert.Equal(t, "cat", events[2].Term)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps a failed scan to a persistence error", func(t *testing.T) {
		adapter, mock := newMockAdapter(t)

		mock.ExpectQuery(`SELECT .+ FROM "search_events"`).
			WillReturnError(errors.New("read timeout"))

		_, err := adapter.ListByUser(context.Background(), "user-1", 10)

		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
	})
}

func TestSearchEventAdapter_CountByTerm(t *testing.T) {
	t.Run("returns one count per distinct term", func(t *testing.T) {
		adapter, mock := newMockAdapter(t)

		rows := sqlmock.NewRows([]string{"term", "count"}).
			AddRow("cat", int64(3)).
			AddRow("dog", int64(1)).
			AddRow("fox", int64(2))

		mock.ExpectQuery(`SELECT .+ COUNT\(\*\) AS "count" FROM "search_events" GROUP BY "term"`).
			WillReturnRows(rows)

		counts, err := adapter.CountByTerm(context.Background())

		require.NoError(t, err)
		require.Len(t, counts, 3)
		assert.Equal(t, entities.TopTerm{Term: "cat", Count: 3}, counts[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps an unreachable store to a persistence error", func(t *testing.T) {
		adapter, mock := newMockAdapter(t)

		mock.ExpectQuery(`SELECT .+ FROM "search_events" GROUP BY "term"`).
			WillReturnError(errors.New("connection refused"))

		_, err := adapter.CountByTerm(context.Background())

		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
	})
}
