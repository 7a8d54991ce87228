package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dan9191/blog-service/internal/service"
)

// errorBody is the normalized error response shape
type errorBody struct {
	Message   string      `json:"message"`
	ErrorCode string      `json:"errorCode"`
	Details   interface{} `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]errorBody{
		"error": {Message: message, ErrorCode: code, Details: nil},
	})
}

// respondError maps service errors to HTTP responses. Anything unrecognized
// falls through as a 500.
func respondError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, "VALIDATION", vErr.Message)
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Unauthorized")
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect username/email or password")
	case errors.Is(err, service.ErrDuplicate):
		writeError(w, http.StatusConflict, "DUPLICATE", "Username or email already in use")
	default:
		writeError(w, http.StatusInternalServerError, "SERVER_ERROR", "Internal Server Error")
	}
}
