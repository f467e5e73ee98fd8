package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Japacho1/tasky/internal/adapters/database"
	"github.com/Japacho1/tasky/internal/domain/entities"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userColumns() []string {
	return []string{
		"id", "f_name", "l_name", "username", "email", "password",
		"role", "current_town", "latitude", "longitude", "rating", "created_at",
	}
}

func TestUserAdapter_Create(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := database.NewUserAdapter(client)

	user := &entities.User{
		ID:        "user-1",
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  "janedoe",
		Email:     "jane@example.com",
		Password:  "$2a$10$hash",
		Role:      entities.RoleRequester,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := adapter.Create(context.Background(), user)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAdapter_Create_DuplicateEmail(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := database.NewUserAdapter(client)

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(&pq.Error{Code: "23505"})

	err := adapter.Create(context.Background(), &entities.User{
		ID:    "user-1",
		Email: "taken@example.com",
		Role:  entities.RoleRequester,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAdapter_GetByEmail(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := database.NewUserAdapter(client)

	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(userColumns()).AddRow(
		"prov-1", "John", "Smith", "jsmith", "john@example.com", "$2a$10$hash",
		"provider", "Nakuru", 0.28, 36.07, 4.5, created,
	)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE`).WillReturnRows(rows)

	user, err := adapter.GetByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "prov-1", user.ID)
	assert.Equal(t, entities.RoleProvider, user.Role)
	assert.Equal(t, "Nakuru", user.CurrentTown)
	assert.Equal(t, 4.5, user.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAdapter_GetByEmail_NullableFields(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := database.NewUserAdapter(client)

	rows := sqlmock.NewRows(userColumns()).AddRow(
		"req-1", "Jane", "Doe", "janedoe", "jane@example.com", "$2a$10$hash",
		"requester", nil, nil, nil, nil, time.Now(),
	)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE`).WillReturnRows(rows)

	user, err := adapter.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Empty(t, user.CurrentTown)
	assert.Zero(t, user.Latitude)
	assert.Zero(t, user.Rating)
}

func TestUserAdapter_GetByID_NotFound(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := database.NewUserAdapter(client)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE`).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := adapter.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestUserAdapter_UpdateLocation(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := database.NewUserAdapter(client)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := adapter.UpdateLocation(context.Background(), "jane@example.com", entities.Location{
		Latitude:    -1.29,
		Longitude:   36.82,
		CurrentTown: "Nairobi",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAdapter_UpdateLocation_UnknownEmail(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := database.NewUserAdapter(client)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := adapter.UpdateLocation(context.Background(), "nobody@example.com", entities.Location{})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestUserAdapter_UpdateRating(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := database.NewUserAdapter(client)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := adapter.UpdateRating(context.Background(), "prov-1", 4.25)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
