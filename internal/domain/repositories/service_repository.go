package repositories

import (
	"context"

	"github.com/Japacho1/tasky/internal/domain/entities"
)

// ServiceRepository defines the interface for catalog operations
type ServiceRepository interface {
	// List returns the full service catalog
	List(ctx context.Context) ([]entities.Service, error)

	// ListByProvider returns the services a provider offers; an empty slice
	// when it offers none.
	ListByProvider(ctx context.Context, providerID string) ([]entities.Service, error)

	// ReplaceForProvider atomically replaces the provider's offered-service
	// set. The previous set stays intact when any step fails.
	ReplaceForProvider(ctx context.Context, providerID string, serviceIDs []string) error

	// ProviderOffers reports whether the provider currently offers the service
	ProviderOffers(ctx context.Context, providerID, serviceID string) (bool, error)
}
