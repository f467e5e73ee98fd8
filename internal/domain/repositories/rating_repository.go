package repositories

import (
	"context"

	"github.com/Japacho1/tasky/internal/domain/entities"
)

// RatingRepository defines the interface for rating operations
type RatingRepository interface {
	// Create inserts a rating row
	Create(ctx context.Context, rating *entities.Rating) error

	// AverageForProvider returns the mean of the provider's ratings, or nil
	// when it has none.
	AverageForProvider(ctx context.Context, providerID string) (*float64, error)
}
