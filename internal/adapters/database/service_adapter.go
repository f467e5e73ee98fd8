package database

import (
	"context"

	"github.com/Japacho1/tasky/internal/domain/entities"
	"github.com/Japacho1/tasky/internal/domain/repositories"
	"github.com/Japacho1/tasky/internal/infrastructure/clients/postgres"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
	"github.com/doug-martin/goqu/v9"
)

// ServiceAdapter implements the ServiceRepository interface
type ServiceAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewServiceAdapter creates a new service catalog adapter
func NewServiceAdapter(client *postgres.Client) repositories.ServiceRepository {
	return &ServiceAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List returns the full service catalog
func (a *ServiceAdapter) List(ctx context.Context) ([]entities.Service, error) {
	query, args, err := a.db.From("services").
		Select("id", "name").
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build service list query", err)
	}

	return a.queryServices(ctx, query, args)
}

// ListByProvider returns the services a provider offers
func (a *ServiceAdapter) ListByProvider(ctx context.Context, providerID string) ([]entities.Service, error) {
	query, args, err := a.db.From(goqu.T("provider_services").As("ps")).
		Join(
			goqu.T("services").As("s"),
			goqu.On(goqu.I("s.id").Eq(goqu.I("ps.service_id"))),
		).
		Select(goqu.I("s.id"), goqu.I("s.name")).
		Where(goqu.Ex{"ps.provider_id": providerID}).
		Order(goqu.I("s.id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build provider service query", err)
	}

	return a.queryServices(ctx, query, args)
}

func (a *ServiceAdapter) queryServices(ctx context.Context, query string, args []interface{}) ([]entities.Service, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list services", err)
	}
	defer rows.Close()

	services := []entities.Service{}
	for rows.Next() {
		var s entities.Service
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, apperrors.NewInternalError("failed to scan service", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate services", err)
	}

	return services, nil
}

// ReplaceForProvider atomically replaces the provider's offered-service set.
// Delete and insert run in one transaction so a concurrent reader never sees
// a partially updated set.
func (a *ServiceAdapter) ReplaceForProvider(ctx context.Context, providerID string, serviceIDs []string) error {
	deleteSQL, deleteArgs, err := a.db.Delete("provider_services").
		Where(goqu.Ex{"provider_id": providerID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build service delete query", err)
	}

	records := make([]interface{}, 0, len(serviceIDs))
	for _, serviceID := range serviceIDs {
		records = append(records, goqu.Record{
			"provider_id": providerID,
			"service_id":  serviceID,
		})
	}
	insertSQL, insertArgs, err := a.db.Insert("provider_services").Rows(records...).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build service insert query", err)
	}

	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}

	if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
		tx.Rollback()
		return apperrors.NewInternalError("failed to clear provider services", err)
	}

	if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
		tx.Rollback()
		return apperrors.NewInternalError("failed to insert provider services", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit provider services", err)
	}

	return nil
}

// ProviderOffers reports whether the provider currently offers the service
func (a *ServiceAdapter) ProviderOffers(ctx context.Context, providerID, serviceID string) (bool, error) {
	query, args, err := a.db.From("provider_services").
		Select(goqu.COUNT("*")).
		Where(goqu.Ex{
			"provider_id": providerID,
			"service_id":  serviceID,
		}).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build provider offer query", err)
	}

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, apperrors.NewInternalError("failed to check provider offer", err)
	}

	return count > 0, nil
}
