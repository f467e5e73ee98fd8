package services

import (
	"context"
	"time"

	"github.com/Japacho1/tasky/internal/domain/entities"
	"github.com/Japacho1/tasky/internal/domain/repositories"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
	"github.com/google/uuid"
)

// RatingService records ratings and keeps the provider's stored average in
// step with the rating rows.
type RatingService struct {
	ratings repositories.RatingRepository
	users   repositories.UserRepository
}

// NewRatingService creates a new rating service
func NewRatingService(ratings repositories.RatingRepository, users repositories.UserRepository) *RatingService {
	return &RatingService{ratings: ratings, users: users}
}

// Submit inserts a rating and refreshes the provider's denormalized average
// so subsequent reads observe the new mean immediately.
func (s *RatingService) Submit(ctx context.Context, requesterID, providerID string, rating int) error {
	if providerID == "" {
		return apperrors.NewValidationError("provider id is required")
	}
	if rating < 1 || rating > 5 {
		return apperrors.NewValidationError("rating must be between 1 and 5")
	}

	entry := &entities.Rating{
		ID:          uuid.New().String(),
		ProviderID:  providerID,
		RequesterID: requesterID,
		Rating:      rating,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.ratings.Create(ctx, entry); err != nil {
		return err
	}

	avg, err := s.ratings.AverageForProvider(ctx, providerID)
	if err != nil {
		return err
	}
	if avg == nil {
		// The row we just wrote guarantees at least one rating.
		v := float64(rating)
		avg = &v
	}

	return s.users.UpdateRating(ctx, providerID, *avg)
}

// Average returns the mean of the provider's ratings, nil when it has none
func (s *RatingService) Average(ctx context.Context, providerID string) (*float64, error) {
	return s.ratings.AverageForProvider(ctx, providerID)
}
