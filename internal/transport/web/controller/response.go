package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/jbeshir/movie-match/internal/domain"
)

// errorStatus maps domain errors onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrSessionComplete):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidDecision), errors.Is(err, domain.ErrInvalidSwipe):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	logger := domain.LoggerFromContext(ctx)

	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, "error", err)
		w.WriteHeader(status)
		return
	}

	logger.DebugContext(ctx, msg, "error", err, "status", status)
	writeJSON(ctx, w, status, map[string]string{"error": err.Error()})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}
