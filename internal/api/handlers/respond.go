package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Japacho1/tasky/internal/infrastructure/observability"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondAppError maps an AppError onto its status code; anything else
// becomes a generic 500 with the fallback message. Internal details are
// logged, never returned.
func respondAppError(w http.ResponseWriter, err error, fallback string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Type != apperrors.ErrorTypeInternal {
		respondWithError(w, appErr.HTTPStatus(), appErr.Message)
		return
	}

	observability.GetLogger().Error().Err(err).Msg(fallback)
	respondWithError(w, http.StatusInternalServerError, fallback)
}
