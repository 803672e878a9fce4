package images

import (
	"context"
	"fmt"

	"github.com/snapseek/backend/internal/domain/entities"
	"github.com/snapseek/backend/internal/domain/providers"
)

// MockImageProvider returns deterministic placeholder images so the service
// can run in development without an Unsplash key.
type MockImageProvider struct{}

// NewMockImageProvider creates a new mock image provider
func NewMockImageProvider() providers.ImageProvider {
	return &MockImageProvider{}
}

// Search returns three placeholder descriptors derived from the term.
func (m *MockImageProvider) Search(ctx context.Context, term string) ([]entities.Image, error) {
	images := make([]entities.Image, 0, 3)
	for i := 1; i <= 3; i++ {
		images = append(images, entities.Image{
			ID:           fmt.Sprintf("mock-%s-%d", term, i),
			ThumbnailURL: fmt.Sprintf("https://picsum.photos/seed/%s-%d/200", term, i),
			AltText:      term,
		})
	}
	return images, nil
}
