package providers

import (
	"context"

	"github.com/snapseek/backend/internal/domain/entities"
)

// ImageProvider defines the interface for the external image search service.
type ImageProvider interface {
	// Search issues a single live call for the term and returns a bounded
	// set of image descriptors. Results are never cached.
	Search(ctx context.Context, term string) ([]entities.Image, error)
}
