package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Japacho1/tasky/internal/application/services"
	"github.com/Japacho1/tasky/internal/domain/entities"
)

// AuthService defines the identity operations used by the handler.
type AuthService interface {
	Register(ctx context.Context, input services.RegisterInput) (*entities.User, error)
	Login(ctx context.Context, email, password string) (string, entities.Role, error)
}

// AuthHandler handles signup and login.
type AuthHandler struct {
	service AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type signupRequest struct {
	FirstName string `json:"f_name"`
	LastName  string `json:"l_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload signupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.service.Register(r.Context(), services.RegisterInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Username:  payload.Username,
		Email:     payload.Email,
		Password:  payload.Password,
		Role:      payload.Role,
	})
	if err != nil {
		respondAppError(w, err, "failed to register user")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully",
		"userId":  user.ID,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	token, role, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		respondAppError(w, err, "failed to log in")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
		"role":    string(role),
	})
}
