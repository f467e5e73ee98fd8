package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Japacho1/tasky/internal/api/middleware"
	"github.com/Japacho1/tasky/internal/application/services"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims *services.Claims
	err    error
	tokens []string
}

func (v *stubVerifier) VerifyToken(token string) (*services.Claims, error) {
	v.tokens = append(v.tokens, token)
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

func okHandler(t *testing.T, sawClaims **services.Claims) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			*sawClaims = claims
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_ValidToken(t *testing.T) {
	verifier := &stubVerifier{claims: &services.Claims{UserID: "user-1", Role: "provider"}}

	var sawClaims *services.Claims
	handler := middleware.Authenticate(verifier)(okHandler(t, &sawClaims))

	req := httptest.NewRequest("GET", "/api/provider-requests", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, sawClaims)
	assert.Equal(t, "user-1", sawClaims.UserID)
	assert.Equal(t, []string{"good-token"}, verifier.tokens)
}

func TestAuthenticate_MissingOrMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "no bearer prefix", header: "good-token"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &stubVerifier{claims: &services.Claims{}}

			var sawClaims *services.Claims
			handler := middleware.Authenticate(verifier)(okHandler(t, &sawClaims))

			req := httptest.NewRequest("GET", "/api/my-requests", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Nil(t, sawClaims)
			assert.Empty(t, verifier.tokens, "verifier must not run without a bearer token")
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: apperrors.NewUnauthorizedError("invalid or expired token")}

	var sawClaims *services.Claims
	handler := middleware.Authenticate(verifier)(okHandler(t, &sawClaims))

	req := httptest.NewRequest("GET", "/api/my-requests", nil)
	req.Header.Set("Authorization", "Bearer expired")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
	assert.Nil(t, sawClaims)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{name: "matching role", role: "provider", wantStatus: http.StatusOK},
		{name: "mismatched role", role: "requester", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sawClaims *services.Claims
			handler := middleware.RequireRole("provider")(okHandler(t, &sawClaims))

			req := httptest.NewRequest("GET", "/api/provider-services", nil)
			req = req.WithContext(middleware.ContextWithClaims(
				req.Context(), &services.Claims{UserID: "user-1", Role: tt.role},
			))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireRole_WithoutAuthenticate(t *testing.T) {
	var sawClaims *services.Claims
	handler := middleware.RequireRole("provider")(okHandler(t, &sawClaims))

	req := httptest.NewRequest("GET", "/api/provider-services", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
