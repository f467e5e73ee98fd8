package repositories

import (
	"context"

	"github.com/Japacho1/tasky/internal/domain/entities"
)

// RequestRepository defines the interface for request lifecycle operations.
// Every mutation is keyed by both the request id and the owning party, so a
// request that exists but belongs to someone else reads as not found.
type RequestRepository interface {
	// Create inserts a pending request
	Create(ctx context.Context, request *entities.Request) error

	// ListByRequester returns every request the user created, newest first
	ListByRequester(ctx context.Context, requesterID string) ([]entities.RequesterRequestView, error)

	// ListPendingByProvider returns pending requests addressed to the provider
	ListPendingByProvider(ctx context.Context, providerID string) ([]entities.ProviderRequestView, error)

	// Accept moves a pending request addressed to the provider to accepted.
	// Returns a not-found error when no such pending request exists.
	Accept(ctx context.Context, requestID, providerID string) error

	// DeleteByProvider removes a request addressed to the provider (decline)
	DeleteByProvider(ctx context.Context, requestID, providerID string) error

	// DeleteByRequester removes a request the user created (cancel)
	DeleteByRequester(ctx context.Context, requestID, requesterID string) error
}
