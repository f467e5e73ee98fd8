package repositories

import (
	"context"

	"github.com/Japacho1/tasky/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user. Returns a conflict error when the email or
	// username is already taken.
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*entities.User, error)

	// UpdateLocation overwrites the location fields of the user with the
	// given email. Returns a not-found error when no row is updated.
	UpdateLocation(ctx context.Context, email string, loc entities.Location) error

	// UpdateRating stores the recomputed average rating for a provider
	UpdateRating(ctx context.Context, providerID string, rating float64) error
}

// ProviderRepository defines read operations over the provider population
type ProviderRepository interface {
	// FindByServicesAndCity returns providers in the given city offering at
	// least one of the given services, each with its average rating.
	FindByServicesAndCity(ctx context.Context, serviceIDs []string, city string) ([]entities.ProviderMatch, error)

	// ListWithServices returns every provider with the ids of its offered
	// services and its average rating.
	ListWithServices(ctx context.Context) ([]entities.ProviderSummary, error)

	// ListLocations returns every provider's last known position
	ListLocations(ctx context.Context) ([]entities.ProviderLocation, error)
}
