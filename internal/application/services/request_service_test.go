package services

import (
	"context"
	"testing"

	"github.com/Japacho1/tasky/internal/domain/entities"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestFixture() (*RequestService, *memRequestRepo, *stubServiceRepo, *memUserRepo) {
	requests := newMemRequestRepo()
	catalog := newStubServiceRepo()
	users := newMemUserRepo()

	users.users["req-1"] = &entities.User{ID: "req-1", Email: "jane@example.com", Role: entities.RoleRequester}
	users.users["prov-1"] = &entities.User{ID: "prov-1", Email: "john@example.com", Role: entities.RoleProvider}
	catalog.offered["prov-1"] = []string{"svc-1"}

	return NewRequestService(requests, catalog, users), requests, catalog, users
}

func TestRequestService_Create(t *testing.T) {
	service, requests, _, _ := newRequestFixture()

	request, err := service.Create(context.Background(), "req-1", "prov-1", "svc-1")
	require.NoError(t, err)

	assert.NotEmpty(t, request.ID)
	assert.Equal(t, entities.RequestStatusPending, request.Status)
	assert.False(t, request.RequestDate.IsZero())
	assert.Contains(t, requests.requests, request.ID)
}

func TestRequestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name       string
		providerID string
		serviceID  string
		errType    apperrors.ErrorType
	}{
		{name: "missing provider id", providerID: "", serviceID: "svc-1", errType: apperrors.ErrorTypeValidation},
		{name: "missing service id", providerID: "prov-1", serviceID: "", errType: apperrors.ErrorTypeValidation},
		{name: "unknown provider", providerID: "ghost", serviceID: "svc-1", errType: apperrors.ErrorTypeNotFound},
		{name: "provider not offering service", providerID: "prov-1", serviceID: "svc-99", errType: apperrors.ErrorTypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _ := newRequestFixture()

			_, err := service.Create(context.Background(), "req-1", tt.providerID, tt.serviceID)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.errType))
		})
	}
}

func TestRequestService_Create_TargetMustBeProvider(t *testing.T) {
	service, _, _, users := newRequestFixture()
	users.users["req-2"] = &entities.User{ID: "req-2", Role: entities.RoleRequester}

	_, err := service.Create(context.Background(), "req-1", "req-2", "svc-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestRequestService_DuplicatePendingAllowed(t *testing.T) {
	service, requests, _, _ := newRequestFixture()

	first, err := service.Create(context.Background(), "req-1", "prov-1", "svc-1")
	require.NoError(t, err)
	second, err := service.Create(context.Background(), "req-1", "prov-1", "svc-1")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, requests.requests, 2)
}

func TestRequestService_AcceptLifecycle(t *testing.T) {
	service, _, _, _ := newRequestFixture()

	request, err := service.Create(context.Background(), "req-1", "prov-1", "svc-1")
	require.NoError(t, err)

	require.NoError(t, service.Accept(context.Background(), "prov-1", request.ID))

	// The request is no longer pending, so accepting again reads as not found.
	err = service.Accept(context.Background(), "prov-1", request.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestRequestService_Accept_WrongProvider(t *testing.T) {
	service, _, _, users := newRequestFixture()
	users.users["prov-2"] = &entities.User{ID: "prov-2", Role: entities.RoleProvider}

	request, err := service.Create(context.Background(), "req-1", "prov-1", "svc-1")
	require.NoError(t, err)

	err = service.Accept(context.Background(), "prov-2", request.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestRequestService_DeclineRemovesRequest(t *testing.T) {
	service, requests, _, _ := newRequestFixture()

	request, err := service.Create(context.Background(), "req-1", "prov-1", "svc-1")
	require.NoError(t, err)

	require.NoError(t, service.Decline(context.Background(), "prov-1", request.ID))
	assert.NotContains(t, requests.requests, request.ID)

	// Declining twice is the same as declining a missing request.
	err = service.Decline(context.Background(), "prov-1", request.ID)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestRequestService_Cancel_OnlyOwner(t *testing.T) {
	service, requests, _, _ := newRequestFixture()

	request, err := service.Create(context.Background(), "req-1", "prov-1", "svc-1")
	require.NoError(t, err)

	err = service.Cancel(context.Background(), "someone-else", request.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	assert.Contains(t, requests.requests, request.ID)

	require.NoError(t, service.Cancel(context.Background(), "req-1", request.ID))
	assert.NotContains(t, requests.requests, request.ID)
}

func TestRequestService_ListForProvider_OnlyPending(t *testing.T) {
	service, _, _, _ := newRequestFixture()

	pending, err := service.Create(context.Background(), "req-1", "prov-1", "svc-1")
	require.NoError(t, err)
	accepted, err := service.Create(context.Background(), "req-1", "prov-1", "svc-1")
	require.NoError(t, err)
	require.NoError(t, service.Accept(context.Background(), "prov-1", accepted.ID))

	views, err := service.ListForProvider(context.Background(), "prov-1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, pending.ID, views[0].RequestID)
}
