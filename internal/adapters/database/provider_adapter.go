package database

import (
	"context"
	"database/sql"

	"github.com/Japacho1/tasky/internal/domain/entities"
	"github.com/Japacho1/tasky/internal/domain/repositories"
	"github.com/Japacho1/tasky/internal/infrastructure/clients/postgres"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

// ProviderAdapter implements provider discovery queries against Postgres
type ProviderAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewProviderAdapter creates a new provider adapter
func NewProviderAdapter(client *postgres.Client) repositories.ProviderRepository {
	return &ProviderAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// FindByServicesAndCity returns providers in the city offering at least one
// of the requested services. Matching is OR across services; a provider
// matching several appears once. Ordered by id for determinism.
func (a *ProviderAdapter) FindByServicesAndCity(ctx context.Context, serviceIDs []string, city string) ([]entities.ProviderMatch, error) {
	query, args, err := a.db.From(goqu.T("users").As("u")).
		Join(
			goqu.T("provider_services").As("ps"),
			goqu.On(goqu.I("ps.provider_id").Eq(goqu.I("u.id"))),
		).
		LeftJoin(
			goqu.T("provider_ratings").As("r"),
			goqu.On(goqu.I("r.provider_id").Eq(goqu.I("u.id"))),
		).
		Select(
			goqu.I("u.id"),
			goqu.I("u.f_name"),
			goqu.I("u.l_name"),
			goqu.I("u.username"),
			goqu.I("u.email"),
			goqu.I("u.current_town"),
			goqu.AVG(goqu.I("r.rating")).As("average_rating"),
		).
		Where(goqu.Ex{
			"ps.service_id":  serviceIDs,
			"u.role":         string(entities.RoleProvider),
			"u.current_town": city,
		}).
		GroupBy(
			goqu.I("u.id"),
			goqu.I("u.f_name"),
			goqu.I("u.l_name"),
			goqu.I("u.username"),
			goqu.I("u.email"),
			goqu.I("u.current_town"),
		).
		Order(goqu.I("u.id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build provider match query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to find providers", err)
	}
	defer rows.Close()

	matches := []entities.ProviderMatch{}
	for rows.Next() {
		var m entities.ProviderMatch
		var avg sql.NullFloat64

		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Username, &m.Email, &m.CurrentTown, &avg); err != nil {
			return nil, apperrors.NewInternalError("failed to scan provider match", err)
		}
		if avg.Valid {
			v := avg.Float64
			m.AverageRating = &v
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate provider matches", err)
	}

	return matches, nil
}

// ListWithServices returns every provider with its offered service ids and
// average rating.
func (a *ProviderAdapter) ListWithServices(ctx context.Context) ([]entities.ProviderSummary, error) {
	query, args, err := a.db.From(goqu.T("users").As("u")).
		LeftJoin(
			goqu.T("provider_services").As("ps"),
			goqu.On(goqu.I("ps.provider_id").Eq(goqu.I("u.id"))),
		).
		LeftJoin(
			goqu.T("provider_ratings").As("r"),
			goqu.On(goqu.I("r.provider_id").Eq(goqu.I("u.id"))),
		).
		Select(
			goqu.I("u.id"),
			goqu.I("u.f_name"),
			goqu.I("u.l_name"),
			goqu.I("u.username"),
			goqu.I("u.email"),
			goqu.L("array_remove(array_agg(DISTINCT ps.service_id), NULL)").As("service_ids"),
			goqu.AVG(goqu.I("r.rating")).As("average_rating"),
		).
		Where(goqu.Ex{"u.role": string(entities.RoleProvider)}).
		GroupBy(
			goqu.I("u.id"),
			goqu.I("u.f_name"),
			goqu.I("u.l_name"),
			goqu.I("u.username"),
			goqu.I("u.email"),
		).
		Order(goqu.I("u.id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build provider list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list providers", err)
	}
	defer rows.Close()

	summaries := []entities.ProviderSummary{}
	for rows.Next() {
		var s entities.ProviderSummary
		var serviceIDs pq.StringArray
		var avg sql.NullFloat64

		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Username, &s.Email, &serviceIDs, &avg); err != nil {
			return nil, apperrors.NewInternalError("failed to scan provider summary", err)
		}
		s.ServiceIDs = []string(serviceIDs)
		if s.ServiceIDs == nil {
			s.ServiceIDs = []string{}
		}
		if avg.Valid {
			v := avg.Float64
			s.AverageRating = &v
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate provider summaries", err)
	}

	return summaries, nil
}

// ListLocations returns every provider's last known position
func (a *ProviderAdapter) ListLocations(ctx context.Context) ([]entities.ProviderLocation, error) {
	query, args, err := a.db.From("users").
		Select("id", "f_name", "l_name", "latitude", "longitude", "current_town").
		Where(goqu.Ex{"role": string(entities.RoleProvider)}).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build provider location query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list provider locations", err)
	}
	defer rows.Close()

	locations := []entities.ProviderLocation{}
	for rows.Next() {
		var l entities.ProviderLocation
		var lat, lon sql.NullFloat64
		var town sql.NullString

		if err := rows.Scan(&l.ID, &l.FirstName, &l.LastName, &lat, &lon, &town); err != nil {
			return nil, apperrors.NewInternalError("failed to scan provider location", err)
		}
		l.Latitude = lat.Float64
		l.Longitude = lon.Float64
		l.CurrentTown = town.String
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate provider locations", err)
	}

	return locations, nil
}
