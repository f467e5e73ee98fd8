package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Japacho1/tasky/internal/api/middleware"
	"github.com/Japacho1/tasky/internal/domain/entities"
)

// RequestService defines the lifecycle operations used by the handler.
type RequestService interface {
	Create(ctx context.Context, requesterID, providerID, serviceID string) (*entities.Request, error)
	ListForRequester(ctx context.Context, requesterID string) ([]entities.RequesterRequestView, error)
	ListForProvider(ctx context.Context, providerID string) ([]entities.ProviderRequestView, error)
	Accept(ctx context.Context, providerID, requestID string) error
	Decline(ctx context.Context, providerID, requestID string) error
	Cancel(ctx context.Context, requesterID, requestID string) error
}

// RequestHandler drives the request lifecycle endpoints.
type RequestHandler struct {
	service RequestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(service RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

type createRequestPayload struct {
	ProviderID string `json:"providerId"`
	ServiceID  string `json:"serviceId"`
}

// CreateRequest handles POST /api/requests
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var payload createRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.ProviderID == "" || payload.ServiceID == "" {
		respondWithError(w, http.StatusBadRequest, "Provider ID and Service ID are required")
		return
	}

	request, err := h.service.Create(r.Context(), claims.UserID, payload.ProviderID, payload.ServiceID)
	if err != nil {
		respondAppError(w, err, "failed to create request")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"message":   "Request created successfully",
		"requestId": request.ID,
	})
}

// GetProviderRequests handles GET /api/provider-requests
func (h *RequestHandler) GetProviderRequests(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	requests, err := h.service.ListForProvider(r.Context(), claims.UserID)
	if err != nil {
		respondAppError(w, err, "failed to list provider requests")
		return
	}

	respondWithJSON(w, http.StatusOK, requests)
}

// GetMyRequests handles GET /api/my-requests
func (h *RequestHandler) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	requests, err := h.service.ListForRequester(r.Context(), claims.UserID)
	if err != nil {
		respondAppError(w, err, "failed to list requests")
		return
	}

	respondWithJSON(w, http.StatusOK, requests)
}

// AcceptRequest handles POST /api/requests/accept/{id}
func (h *RequestHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	requestID := r.PathValue("id")
	if requestID == "" {
		respondWithError(w, http.StatusBadRequest, "request ID is required")
		return
	}

	if err := h.service.Accept(r.Context(), claims.UserID, requestID); err != nil {
		respondAppError(w, err, "failed to accept request")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Request accepted successfully",
	})
}

// DeleteRequest handles DELETE /api/requests/{id}. A provider declines a
// request addressed to it; a requester cancels one it created.
func (h *RequestHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	requestID := r.PathValue("id")
	if requestID == "" {
		respondWithError(w, http.StatusBadRequest, "request ID is required")
		return
	}

	var err error
	var message string
	if claims.Role == string(entities.RoleProvider) {
		err = h.service.Decline(r.Context(), claims.UserID, requestID)
		message = "Request declined successfully"
	} else {
		err = h.service.Cancel(r.Context(), claims.UserID, requestID)
		message = "Request canceled successfully"
	}
	if err != nil {
		respondAppError(w, err, "failed to delete request")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": message})
}
