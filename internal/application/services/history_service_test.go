package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/snapseek/backend/internal/application/services"
	"github.com/snapseek/backend/internal/domain/entities"
	apperrors "github.com/snapseek/backend/pkg/errors"
)

func recordTerms(t *testing.T, repo *stubEventRepo, userID string, terms ...string) {
	t.Helper()
	for _, term := range terms {
		require.NoError(t, repo.Record(context.Background(), &entities.SearchEvent{UserID: userID, Term: term}))
	}
}

func TestHistoryService_HistoryFor_NewestFirst(t *testing.T) {
	repo := &stubEventRepo{}
	recordTerms(t, repo, "user-1", "cat", "dog", "cat")
	service := services.NewHistoryService(repo)

	history, err := service.HistoryFor(context.Background(), "user-1", 10)

	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "cat", history[0].Term)
	assert.Equal(t, "dog", history[1].Term)
	assert.Equal(t, "cat", history[2].Term)
}

func TestHistoryService_HistoryFor_Bounded(t *testing.T) {
	repo := &stubEventRepo{}
	recordTerms(t, repo, "user-1", "a", "b", "c", "d")
	service := services.NewHistoryService(repo)

	history, err := service.HistoryFor(context.Background(), "user-1", 2)

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "d", history[0].Term)
	assert.Equal(t, "c", history[1].Term)
}

func TestHistoryService_HistoryFor_Isolation(t *testing.T) {
	repo := &stubEventRepo{}
	recordTerms(t, repo, "user-a", "alpha")
	recordTerms(t, repo, "user-b", "bravo")
	recordTerms(t, repo, "user-a", "again")
	service := services.NewHistoryService(repo)

	history, err := service.HistoryFor(context.Background(), "user-a", 10)

	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, entry := range history {
		assert.NotEqual(t, "bravo", entry.Term, "a user's history may never contain another user's events")
	}
}

func TestHistoryService_HistoryFor_InvalidLimit(t *testing.T) {
	service := services.NewHistoryService(&stubEventRepo{})

	for _, limit := range []int{0, -1} {
		_, err := service.HistoryFor(context.Background(), "user-1", limit)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	}
}

func TestHistoryService_HistoryFor_RequiresIdentity(t *testing.T) {
	service := services.NewHistoryService(&stubEventRepo{})

	_, err := service.HistoryFor(context.Background(), "", 10)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestHistoryService_HistoryFor_PersistenceFailure(t *testing.T) {
	repo := &stubEventRepo{listErr: apperrors.NewInternalError("store down", nil)}
	service := services.NewHistoryService(repo)

	_, err := service.HistoryFor(context.Background(), "user-1", 10)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
}
