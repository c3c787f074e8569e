package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/groupbudget/internal/auth"
	"github.com/mmynk/groupbudget/internal/service"
)

// statusFor maps workflow errors to HTTP status codes:
// validation and conflict failures are 400, missing records 404,
// credential and token failures 401, everything else 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, service.ErrBadUsernameChar),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrBadUsernameLen),
		errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidBudget),
		errors.Is(err, service.ErrGroupLimit),
		errors.Is(err, service.ErrGroupExists):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrGroupNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError emits the {"message": ...} error shape used across the API.
// 500s surface the raw underlying message to the client; that leak is a
// known weakness kept for developer visibility, and the full error is also
// logged server-side.
func writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		slog.Error("Internal error", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(map[string]string{"message": err.Error()}); encodeErr != nil {
		slog.Error("Failed to encode error response", "error", encodeErr)
	}
}
