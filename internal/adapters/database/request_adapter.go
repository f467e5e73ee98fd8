package database

import (
	"context"

	"github.com/Japacho1/tasky/internal/domain/entities"
	"github.com/Japacho1/tasky/internal/domain/repositories"
	"github.com/Japacho1/tasky/internal/infrastructure/clients/postgres"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
	"github.com/doug-martin/goqu/v9"
)

// RequestAdapter implements the RequestRepository interface
type RequestAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewRequestAdapter creates a new request adapter
func NewRequestAdapter(client *postgres.Client) repositories.RequestRepository {
	return &RequestAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a pending request. Several pending requests for the same
// requester/provider/service triple are allowed.
func (a *RequestAdapter) Create(ctx context.Context, request *entities.Request) error {
	record := goqu.Record{
		"id":           request.ID,
		"requester_id": request.RequesterID,
		"provider_id":  request.ProviderID,
		"service_id":   request.ServiceID,
		"status":       string(request.Status),
		"request_date": request.RequestDate,
	}

	query, args, err := a.db.Insert("requests").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build request insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create request", err)
	}

	return nil
}

// ListByRequester returns every request the user created, newest first
func (a *RequestAdapter) ListByRequester(ctx context.Context, requesterID string) ([]entities.RequesterRequestView, error) {
	query, args, err := a.db.From(goqu.T("requests").As("r")).
		Join(
			goqu.T("services").As("s"),
			goqu.On(goqu.I("s.id").Eq(goqu.I("r.service_id"))),
		).
		Select(
			goqu.I("r.id"),
			goqu.I("r.request_date"),
			goqu.I("r.status"),
			goqu.I("s.name").As("service_name"),
		).
		Where(goqu.Ex{"r.requester_id": requesterID}).
		Order(goqu.I("r.request_date").Desc(), goqu.I("r.id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build requester request query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list requester requests", err)
	}
	defer rows.Close()

	views := []entities.RequesterRequestView{}
	for rows.Next() {
		var v entities.RequesterRequestView
		var status string
		if err := rows.Scan(&v.ID, &v.RequestDate, &status, &v.ServiceName); err != nil {
			return nil, apperrors.NewInternalError("failed to scan requester request", err)
		}
		v.Status = entities.RequestStatus(status)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate requester requests", err)
	}

	return views, nil
}

// ListPendingByProvider returns pending requests addressed to the provider
// with the requester's identity and the service name joined in.
func (a *RequestAdapter) ListPendingByProvider(ctx context.Context, providerID string) ([]entities.ProviderRequestView, error) {
	query, args, err := a.db.From(goqu.T("requests").As("r")).
		Join(
			goqu.T("users").As("u"),
			goqu.On(goqu.I("u.id").Eq(goqu.I("r.requester_id"))),
		).
		Join(
			goqu.T("services").As("s"),
			goqu.On(goqu.I("s.id").Eq(goqu.I("r.service_id"))),
		).
		Select(
			goqu.I("r.id").As("request_id"),
			goqu.I("r.service_id"),
			goqu.I("u.f_name"),
			goqu.I("u.l_name"),
			goqu.I("u.email"),
			goqu.I("s.name").As("service_name"),
		).
		Where(goqu.Ex{
			"r.provider_id": providerID,
			"r.status":      string(entities.RequestStatusPending),
		}).
		Order(goqu.I("r.request_date").Asc(), goqu.I("r.id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build provider request query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list provider requests", err)
	}
	defer rows.Close()

	views := []entities.ProviderRequestView{}
	for rows.Next() {
		var v entities.ProviderRequestView
		if err := rows.Scan(
			&v.RequestID,
			&v.ServiceID,
			&v.RequesterFirstName,
			&v.RequesterLastName,
			&v.RequesterEmail,
			&v.ServiceName,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan provider request", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate provider requests", err)
	}

	return views, nil
}

// Accept moves a pending request addressed to the provider to accepted
func (a *RequestAdapter) Accept(ctx context.Context, requestID, providerID string) error {
	query, args, err := a.db.Update("requests").
		Set(goqu.Record{"status": string(entities.RequestStatusAccepted)}).
		Where(goqu.Ex{
			"id":          requestID,
			"provider_id": providerID,
			"status":      string(entities.RequestStatusPending),
		}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build accept query", err)
	}

	return a.execExpectingRow(ctx, query, args, "failed to accept request")
}

// DeleteByProvider removes a request addressed to the provider
func (a *RequestAdapter) DeleteByProvider(ctx context.Context, requestID, providerID string) error {
	query, args, err := a.db.Delete("requests").
		Where(goqu.Ex{
			"id":          requestID,
			"provider_id": providerID,
		}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build decline query", err)
	}

	return a.execExpectingRow(ctx, query, args, "failed to decline request")
}

// DeleteByRequester removes a request the user created
func (a *RequestAdapter) DeleteByRequester(ctx context.Context, requestID, requesterID string) error {
	query, args, err := a.db.Delete("requests").
		Where(goqu.Ex{
			"id":           requestID,
			"requester_id": requesterID,
		}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build cancel query", err)
	}

	return a.execExpectingRow(ctx, query, args, "failed to cancel request")
}

func (a *RequestAdapter) execExpectingRow(ctx context.Context, query string, args []interface{}, failMsg string) error {
	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError(failMsg, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to read affected rows", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("request not found")
	}

	return nil
}
