package services

import (
	"context"
	"sort"

	"github.com/snapseek/backend/internal/domain/entities"
	"github.com/snapseek/backend/internal/domain/repositories"
)

// TopTermsService computes the global most-searched-terms ranking. Counts
// are recomputed from the event log on every call, so the ranking always
// reflects the store at read time.
type TopTermsService struct {
	repo repositories.SearchEventRepository
}

// NewTopTermsService creates a new top terms service
func NewTopTermsService(repo repositories.SearchEventRepository) *TopTermsService {
	return &TopTermsService{repo: repo}
}

// TopTerms returns at most n terms ordered by count descending. Equal
// counts are broken lexicographically by term so the output is
// deterministic.
func (s *TopTermsService) TopTerms(ctx context.Context, n int) ([]entities.TopTerm, error) {
	if n <= 0 {
		return []entities.TopTerm{}, nil
	}

	counts, err := s.repo.CountByTerm(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Term < counts[j].Term
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	if counts == nil {
		counts = []entities.TopTerm{}
	}

	return counts, nil
}
