package database_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Japacho1/tasky/internal/infrastructure/clients/postgres"
)

func newMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return postgres.NewClientWithDB(db), mock
}
