package services

import (
	"context"
	"time"

	"github.com/Japacho1/tasky/internal/domain/entities"
	"github.com/Japacho1/tasky/internal/domain/repositories"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
	"github.com/google/uuid"
)

// RequestService drives the request lifecycle: create, list from either
// party's perspective, accept, decline, cancel. Declined and canceled
// requests are removed outright.
type RequestService struct {
	requests repositories.RequestRepository
	services repositories.ServiceRepository
	users    repositories.UserRepository
}

// NewRequestService creates a new request service
func NewRequestService(
	requests repositories.RequestRepository,
	services repositories.ServiceRepository,
	users repositories.UserRepository,
) *RequestService {
	return &RequestService{
		requests: requests,
		services: services,
		users:    users,
	}
}

// Create inserts a pending request after checking that the addressed user
// is a provider currently offering the service. Duplicate pending requests
// for the same pair are allowed.
func (s *RequestService) Create(ctx context.Context, requesterID, providerID, serviceID string) (*entities.Request, error) {
	if providerID == "" || serviceID == "" {
		return nil, apperrors.NewValidationError("provider id and service id are required")
	}

	provider, err := s.users.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider.Role != entities.RoleProvider {
		return nil, apperrors.NewValidationError("addressed user is not a provider")
	}

	offers, err := s.services.ProviderOffers(ctx, providerID, serviceID)
	if err != nil {
		return nil, err
	}
	if !offers {
		return nil, apperrors.NewValidationError("provider does not offer this service")
	}

	request := &entities.Request{
		ID:          uuid.New().String(),
		RequesterID: requesterID,
		ProviderID:  providerID,
		ServiceID:   serviceID,
		Status:      entities.RequestStatusPending,
		RequestDate: time.Now().UTC(),
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// ListForRequester returns the acting requester's requests
func (s *RequestService) ListForRequester(ctx context.Context, requesterID string) ([]entities.RequesterRequestView, error) {
	return s.requests.ListByRequester(ctx, requesterID)
}

// ListForProvider returns pending requests addressed to the acting provider
func (s *RequestService) ListForProvider(ctx context.Context, providerID string) ([]entities.ProviderRequestView, error) {
	return s.requests.ListPendingByProvider(ctx, providerID)
}

// Accept marks a pending request accepted. Only the addressed provider may
// accept; anyone else sees not found.
func (s *RequestService) Accept(ctx context.Context, providerID, requestID string) error {
	return s.requests.Accept(ctx, requestID, providerID)
}

// Decline removes a request addressed to the acting provider
func (s *RequestService) Decline(ctx context.Context, providerID, requestID string) error {
	return s.requests.DeleteByProvider(ctx, requestID, providerID)
}

// Cancel removes a request created by the acting requester
func (s *RequestService) Cancel(ctx context.Context, requesterID, requestID string) error {
	return s.requests.DeleteByRequester(ctx, requestID, requesterID)
}
