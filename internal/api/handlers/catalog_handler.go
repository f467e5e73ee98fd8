package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Japacho1/tasky/internal/api/middleware"
	"github.com/Japacho1/tasky/internal/domain/entities"
)

// CatalogService defines the catalog operations used by the handler.
type CatalogService interface {
	List(ctx context.Context) ([]entities.Service, error)
	ListForProvider(ctx context.Context, providerID string) ([]entities.Service, error)
	Replace(ctx context.Context, providerID string, serviceIDs []string) error
}

// CatalogHandler serves the service catalog and provider memberships.
type CatalogHandler struct {
	service CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListServices handles GET /api/services
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.List(r.Context())
	if err != nil {
		respondAppError(w, err, "failed to list services")
		return
	}

	respondWithJSON(w, http.StatusOK, services)
}

// GetProviderServices handles GET /api/provider-services for the acting provider
func (h *CatalogHandler) GetProviderServices(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	services, err := h.service.ListForProvider(r.Context(), claims.UserID)
	if err != nil {
		respondAppError(w, err, "failed to list provider services")
		return
	}

	respondWithJSON(w, http.StatusOK, services)
}

// GetServicesByProvider handles GET /api/providers/{id}/services
func (h *CatalogHandler) GetServicesByProvider(w http.ResponseWriter, r *http.Request) {
	providerID := r.PathValue("id")
	if providerID == "" {
		respondWithError(w, http.StatusBadRequest, "provider ID is required")
		return
	}

	services, err := h.service.ListForProvider(r.Context(), providerID)
	if err != nil {
		respondAppError(w, err, "failed to list provider services")
		return
	}

	respondWithJSON(w, http.StatusOK, services)
}

type replaceServicesRequest struct {
	ServiceIDs []string `json:"serviceIds"`
}

// UpdateProviderServices handles POST /api/provider-services. The offered
// set is replaced whole; the storage layer guarantees all-or-nothing.
func (h *CatalogHandler) UpdateProviderServices(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var payload replaceServicesRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Replace(r.Context(), claims.UserID, payload.ServiceIDs); err != nil {
		respondAppError(w, err, "failed to update services")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Services updated successfully",
	})
}
