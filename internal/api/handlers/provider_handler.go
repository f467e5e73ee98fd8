package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Japacho1/tasky/internal/domain/entities"
)

// MatchingService defines the provider discovery operations used by the handler.
type MatchingService interface {
	FindProviders(ctx context.Context, serviceIDs []string, city string) ([]entities.ProviderMatch, error)
	ListProviders(ctx context.Context) ([]entities.ProviderSummary, error)
	ListProviderLocations(ctx context.Context) ([]entities.ProviderLocation, error)
}

// ProviderHandler serves provider discovery endpoints.
type ProviderHandler struct {
	service MatchingService
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(service MatchingService) *ProviderHandler {
	return &ProviderHandler{service: service}
}

type findProvidersRequest struct {
	ServiceIDs []string `json:"serviceIds"`
	City       string   `json:"city"`
}

// FindProviders handles POST /api/providers-by-service
func (h *ProviderHandler) FindProviders(w http.ResponseWriter, r *http.Request) {
	var payload findProvidersRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	matches, err := h.service.FindProviders(r.Context(), payload.ServiceIDs, payload.City)
	if err != nil {
		respondAppError(w, err, "failed to find providers")
		return
	}

	respondWithJSON(w, http.StatusOK, matches)
}

// ListProviders handles GET /api/providers
func (h *ProviderHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.service.ListProviders(r.Context())
	if err != nil {
		respondAppError(w, err, "failed to list providers")
		return
	}

	respondWithJSON(w, http.StatusOK, providers)
}

// ListProvidersWithLocation handles GET /api/providers-with-location
func (h *ProviderHandler) ListProvidersWithLocation(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.ListProviderLocations(r.Context())
	if err != nil {
		respondAppError(w, err, "failed to list provider locations")
		return
	}

	respondWithJSON(w, http.StatusOK, locations)
}
