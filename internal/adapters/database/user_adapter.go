package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Japacho1/tasky/internal/domain/entities"
	"github.com/Japacho1/tasky/internal/domain/repositories"
	"github.com/Japacho1/tasky/internal/infrastructure/clients/postgres"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// UserAdapter implements the UserRepository interface
type UserAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a new user row
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	record := goqu.Record{
		"id":           user.ID,
		"f_name":       user.FirstName,
		"l_name":       user.LastName,
		"username":     user.Username,
		"email":        user.Email,
		"password":     user.Password,
		"role":         string(user.Role),
		"current_town": user.CurrentTown,
		"latitude":     user.Latitude,
		"longitude":    user.Longitude,
		"rating":       user.Rating,
		"created_at":   user.CreatedAt,
	}

	query, args, err := a.db.Insert("users").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build user insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return apperrors.NewConflictError("email or username already in use")
		}
		return apperrors.NewInternalError("failed to create user", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return a.getByField(ctx, "id", id)
}

// GetByEmail retrieves a user by email
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return a.getByField(ctx, "email", email)
}

func (a *UserAdapter) getByField(ctx context.Context, field, value string) (*entities.User, error) {
	query, args, err := a.db.Select(
		"id", "f_name", "l_name", "username", "email", "password",
		"role", "current_town", "latitude", "longitude", "rating", "created_at",
	).From("users").
		Where(goqu.Ex{field: value}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user query", err)
	}

	user := &entities.User{}
	var role string
	var town sql.NullString
	var lat, lon, rating sql.NullFloat64

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Username,
		&user.Email,
		&user.Password,
		&role,
		&town,
		&lat,
		&lon,
		&rating,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with %s %s not found", field, value))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	user.Role = entities.Role(role)
	user.CurrentTown = town.String
	user.Latitude = lat.Float64
	user.Longitude = lon.Float64
	user.Rating = rating.Float64

	return user, nil
}

// UpdateLocation overwrites the location fields of the user with the given email
func (a *UserAdapter) UpdateLocation(ctx context.Context, email string, loc entities.Location) error {
	query, args, err := a.db.Update("users").
		Set(goqu.Record{
			"latitude":     loc.Latitude,
			"longitude":    loc.Longitude,
			"current_town": loc.CurrentTown,
		}).
		Where(goqu.Ex{"email": email}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build location update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update location", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to read affected rows", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}

	return nil
}

// UpdateRating stores the recomputed average rating for a provider
func (a *UserAdapter) UpdateRating(ctx context.Context, providerID string, rating float64) error {
	query, args, err := a.db.Update("users").
		Set(goqu.Record{"rating": rating}).
		Where(goqu.Ex{"id": providerID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build rating update query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to update provider rating", err)
	}

	return nil
}
