package database

import (
	"context"
	"database/sql"

	"github.com/Japacho1/tasky/internal/domain/entities"
	"github.com/Japacho1/tasky/internal/domain/repositories"
	"github.com/Japacho1/tasky/internal/infrastructure/clients/postgres"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
	"github.com/doug-martin/goqu/v9"
)

// RatingAdapter implements the RatingRepository interface against the
// provider_ratings table, the single canonical rating store.
type RatingAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewRatingAdapter creates a new rating adapter
func NewRatingAdapter(client *postgres.Client) repositories.RatingRepository {
	return &RatingAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a rating row
func (a *RatingAdapter) Create(ctx context.Context, rating *entities.Rating) error {
	record := goqu.Record{
		"id":           rating.ID,
		"provider_id":  rating.ProviderID,
		"requester_id": rating.RequesterID,
		"rating":       rating.Rating,
		"created_at":   rating.CreatedAt,
	}

	query, args, err := a.db.Insert("provider_ratings").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build rating insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create rating", err)
	}

	return nil
}

// AverageForProvider returns the mean of the provider's ratings, or nil when
// it has none.
func (a *RatingAdapter) AverageForProvider(ctx context.Context, providerID string) (*float64, error) {
	query, args, err := a.db.From("provider_ratings").
		Select(goqu.AVG("rating")).
		Where(goqu.Ex{"provider_id": providerID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build average rating query", err)
	}

	var avg sql.NullFloat64
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&avg); err != nil {
		return nil, apperrors.NewInternalError("failed to get average rating", err)
	}

	if !avg.Valid {
		return nil, nil
	}
	v := avg.Float64
	return &v, nil
}
