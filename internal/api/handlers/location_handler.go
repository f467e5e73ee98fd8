package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Japacho1/tasky/internal/api/middleware"
	"github.com/Japacho1/tasky/internal/domain/entities"
)

// LocationService defines the location operations used by the handler.
type LocationService interface {
	Update(ctx context.Context, email string, loc entities.Location) error
}

// LocationHandler applies client geolocation updates for the acting user.
type LocationHandler struct {
	service LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

type locationRequest struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CurrentTown string  `json:"current_town"`
	// The requester-side client sends the town under "city"
	City string `json:"city"`
}

func (p locationRequest) town() string {
	if p.CurrentTown != "" {
		return p.CurrentTown
	}
	return p.City
}

// UpdateLocation handles POST /api/update-location and
// POST /api/update-requester-location.
func (h *LocationHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var payload locationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	loc := entities.Location{
		Latitude:    payload.Latitude,
		Longitude:   payload.Longitude,
		CurrentTown: payload.town(),
	}

	if err := h.service.Update(r.Context(), claims.Email, loc); err != nil {
		respondAppError(w, err, "failed to update location")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Location updated successfully",
	})
}
