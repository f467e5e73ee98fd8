package services

import (
	"context"

	"github.com/Japacho1/tasky/internal/domain/entities"
	"github.com/Japacho1/tasky/internal/domain/repositories"
)

// LocationService applies client-reported geolocation updates.
type LocationService struct {
	users repositories.UserRepository
}

// NewLocationService creates a new location service
func NewLocationService(users repositories.UserRepository) *LocationService {
	return &LocationService{users: users}
}

// Update overwrites the acting user's stored location. Coordinates are
// stored as reported; there is no bounds validation.
func (s *LocationService) Update(ctx context.Context, email string, loc entities.Location) error {
	return s.users.UpdateLocation(ctx, email, loc)
}
