package services

import (
	"context"

	"github.com/Japacho1/tasky/internal/domain/entities"
	"github.com/Japacho1/tasky/internal/domain/repositories"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
)

// MatchingService finds providers for a set of desired services and a city.
type MatchingService struct {
	providers repositories.ProviderRepository
}

// NewMatchingService creates a new matching service
func NewMatchingService(providers repositories.ProviderRepository) *MatchingService {
	return &MatchingService{providers: providers}
}

// FindProviders returns providers in the city offering at least one of the
// requested services.
func (s *MatchingService) FindProviders(ctx context.Context, serviceIDs []string, city string) ([]entities.ProviderMatch, error) {
	if len(serviceIDs) == 0 {
		return nil, apperrors.NewValidationError("service ids must be a non-empty list")
	}
	if city == "" {
		return nil, apperrors.NewValidationError("city is required to filter providers by location")
	}

	return s.providers.FindByServicesAndCity(ctx, serviceIDs, city)
}

// ListProviders returns every provider with its services and average rating
func (s *MatchingService) ListProviders(ctx context.Context) ([]entities.ProviderSummary, error) {
	return s.providers.ListWithServices(ctx)
}

// ListProviderLocations returns every provider's last known position
func (s *MatchingService) ListProviderLocations(ctx context.Context) ([]entities.ProviderLocation, error) {
	return s.providers.ListLocations(ctx)
}
