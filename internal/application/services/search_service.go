package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/snapseek/backend/internal/domain/entities"
	"github.com/snapseek/backend/internal/domain/providers"
	"github.com/snapseek/backend/internal/domain/repositories"
	apperrors "github.com/snapseek/backend/pkg/errors"
)

// recordTimeout bounds the event write once it has been issued. The write
// runs on a context detached from the request so a client disconnect cannot
// leave an ambiguous half-recorded search.
const recordTimeout = 5 * time.Second

// SearchResult is the composed response of one successful search.
type SearchResult struct {
	Message string           `json:"message"`
	Images  []entities.Image `json:"images"`
}

// SearchService orchestrates one search request: validate the term, record
// the event, fetch images, compose the response. Each step's failure is
// terminal; the recorded event is never rolled back on a provider failure.
type SearchService struct {
	repo     repositories.SearchEventRepository
	provider providers.ImageProvider
}

// NewSearchService creates a new search service
func NewSearchService(repo repositories.SearchEventRepository, provider providers.ImageProvider) *SearchService {
	return &SearchService{
		repo:     repo,
		provider: provider,
	}
}

// Search runs the straight-line flow for one request. The event write
// happens before the provider call: "the user searched for X" is true
// regardless of whether images could be fetched.
func (s *SearchService) Search(ctx context.Context, userID, term string) (*SearchResult, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("identity is required")
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperrors.NewValidationError("term is required")
	}

	event := &entities.SearchEvent{
		UserID: userID,
		Term:   term,
	}

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()
	if err := s.repo.Record(recordCtx, event); err != nil {
		return nil, err
	}

	images, err := s.provider.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Message: fmt.Sprintf("You searched for '%s' -- %d results.", term, len(images)),
		Images:  images,
	}, nil
}
