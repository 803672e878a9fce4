package services

import (
	"context"

	"github.com/snapseek/backend/internal/domain/entities"
	"github.com/snapseek/backend/internal/domain/repositories"
	apperrors "github.com/snapseek/backend/pkg/errors"
)

// DefaultHistoryLimit bounds the history view when the caller does not ask
// for a specific size.
const DefaultHistoryLimit = 50

// HistoryService serves a user's own recent searches, newest first. The
// user id always comes from the authenticated request context, never from
// client input, so one user can never read another's history.
type HistoryService struct {
	repo repositories.SearchEventRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(repo repositories.SearchEventRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// HistoryFor returns up to limit of the user's most recent searches.
func (s *HistoryService) HistoryFor(ctx context.Context, userID string, limit int) ([]entities.HistoryEntry, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("identity is required")
	}
	if limit <= 0 {
		return nil, apperrors.NewValidationError("history limit must be positive")
	}

	events, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	history := make([]entities.HistoryEntry, 0, len(events))
	for _, event := range events {
		history = append(history, entities.HistoryEntry{
			Term:      event.Term,
			Timestamp: event.CreatedAt,
		})
	}

	return history, nil
}
