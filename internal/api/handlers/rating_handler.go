package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Japacho1/tasky/internal/api/middleware"
)

// RatingService defines the rating operations used by the handler.
type RatingService interface {
	Submit(ctx context.Context, requesterID, providerID string, rating int) error
	Average(ctx context.Context, providerID string) (*float64, error)
}

// RatingHandler records ratings and serves provider averages.
type RatingHandler struct {
	service RatingService
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(service RatingService) *RatingHandler {
	return &RatingHandler{service: service}
}

type submitRatingRequest struct {
	ProviderID string `json:"providerId"`
	Rating     int    `json:"rating"`
}

// SubmitRating handles POST /api/ratings
func (h *RatingHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var payload submitRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Submit(r.Context(), claims.UserID, payload.ProviderID, payload.Rating); err != nil {
		respondAppError(w, err, "failed to submit rating")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Rating submitted successfully",
	})
}

// GetAverageRating handles GET /api/providers/{id}/average-rating
func (h *RatingHandler) GetAverageRating(w http.ResponseWriter, r *http.Request) {
	providerID := r.PathValue("id")
	if providerID == "" {
		respondWithError(w, http.StatusBadRequest, "provider ID is required")
		return
	}

	avg, err := h.service.Average(r.Context(), providerID)
	if err != nil {
		respondAppError(w, err, "failed to fetch average rating")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]*float64{
		"avgRating": avg,
	})
}
