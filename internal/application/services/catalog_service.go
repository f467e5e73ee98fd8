package services

import (
	"context"

	"github.com/Japacho1/tasky/internal/domain/entities"
	"github.com/Japacho1/tasky/internal/domain/repositories"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
)

// CatalogService exposes the service catalog and provider memberships.
type CatalogService struct {
	services repositories.ServiceRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(services repositories.ServiceRepository) *CatalogService {
	return &CatalogService{services: services}
}

// List returns the full catalog
func (s *CatalogService) List(ctx context.Context) ([]entities.Service, error) {
	return s.services.List(ctx)
}

// ListForProvider returns the services a provider offers
func (s *CatalogService) ListForProvider(ctx context.Context, providerID string) ([]entities.Service, error) {
	return s.services.ListByProvider(ctx, providerID)
}

// Replace atomically replaces the acting provider's offered-service set
func (s *CatalogService) Replace(ctx context.Context, providerID string, serviceIDs []string) error {
	if len(serviceIDs) == 0 {
		return apperrors.NewValidationError("no services selected")
	}
	for _, id := range serviceIDs {
		if id == "" {
			return apperrors.NewValidationError("service ids must not be empty")
		}
	}

	return s.services.ReplaceForProvider(ctx, providerID, serviceIDs)
}
