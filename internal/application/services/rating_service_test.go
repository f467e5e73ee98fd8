package services

import (
	"context"
	"testing"

	"github.com/Japacho1/tasky/internal/domain/entities"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingService_Submit_UpdatesProviderAverage(t *testing.T) {
	ratings := &memRatingRepo{}
	users := newMemUserRepo()
	users.users["prov-1"] = &entities.User{ID: "prov-1", Role: entities.RoleProvider}
	service := NewRatingService(ratings, users)

	require.NoError(t, service.Submit(context.Background(), "req-1", "prov-1", 5))
	assert.Equal(t, 5.0, users.ratingUpdates["prov-1"])

	require.NoError(t, service.Submit(context.Background(), "req-2", "prov-1", 2))
	assert.InDelta(t, 3.5, users.ratingUpdates["prov-1"], 1e-9)
}

func TestRatingService_Submit_BoundsCheck(t *testing.T) {
	tests := []struct {
		name   string
		rating int
	}{
		{name: "below minimum", rating: 0},
		{name: "above maximum", rating: 6},
		{name: "negative", rating: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewRatingService(&memRatingRepo{}, newMemUserRepo())

			err := service.Submit(context.Background(), "req-1", "prov-1", tt.rating)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		})
	}
}

func TestRatingService_Submit_MissingProviderID(t *testing.T) {
	service := NewRatingService(&memRatingRepo{}, newMemUserRepo())

	err := service.Submit(context.Background(), "req-1", "", 4)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestRatingService_RepeatRatingsBySameRequester(t *testing.T) {
	ratings := &memRatingRepo{}
	users := newMemUserRepo()
	service := NewRatingService(ratings, users)

	require.NoError(t, service.Submit(context.Background(), "req-1", "prov-1", 4))
	require.NoError(t, service.Submit(context.Background(), "req-1", "prov-1", 2))

	// Both ratings count toward the mean.
	assert.Len(t, ratings.ratings, 2)
	assert.InDelta(t, 3.0, users.ratingUpdates["prov-1"], 1e-9)
}

func TestRatingService_Average(t *testing.T) {
	ratings := &memRatingRepo{}
	service := NewRatingService(ratings, newMemUserRepo())

	avg, err := service.Average(context.Background(), "prov-1")
	require.NoError(t, err)
	assert.Nil(t, avg, "provider without ratings has no average")

	require.NoError(t, service.Submit(context.Background(), "req-1", "prov-1", 3))

	avg, err = service.Average(context.Background(), "prov-1")
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.Equal(t, 3.0, *avg)
}
