package services

import (
	"context"
	"testing"

	"github.com/Japacho1/tasky/internal/domain/entities"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_List(t *testing.T) {
	catalog := newStubServiceRepo()
	catalog.services = []entities.Service{
		{ID: "svc-1", Name: "Plumbing"},
		{ID: "svc-2", Name: "Gardening"},
	}
	service := NewCatalogService(catalog)

	services, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.services, services)
}

func TestCatalogService_Replace(t *testing.T) {
	catalog := newStubServiceRepo()
	service := NewCatalogService(catalog)

	err := service.Replace(context.Background(), "prov-1", []string{"svc-1", "svc-2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-1", "svc-2"}, catalog.replaced["prov-1"])
}

func TestCatalogService_Replace_Validation(t *testing.T) {
	tests := []struct {
		name       string
		serviceIDs []string
	}{
		{name: "empty selection", serviceIDs: []string{}},
		{name: "nil selection", serviceIDs: nil},
		{name: "blank id", serviceIDs: []string{"svc-1", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := newStubServiceRepo()
			service := NewCatalogService(catalog)

			err := service.Replace(context.Background(), "prov-1", tt.serviceIDs)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
			assert.Empty(t, catalog.replaced)
		})
	}
}

func TestCatalogService_ListForProvider(t *testing.T) {
	catalog := newStubServiceRepo()
	catalog.offered["prov-1"] = []string{"svc-1"}
	service := NewCatalogService(catalog)

	services, err := service.ListForProvider(context.Background(), "prov-1")
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "svc-1", services[0].ID)

	none, err := service.ListForProvider(context.Background(), "prov-2")
	require.NoError(t, err)
	assert.Empty(t, none)
}
