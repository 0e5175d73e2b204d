package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"card-game-service/internal/domain"
	"card-game-service/internal/http/middleware"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeDomainError maps core failure kinds onto transport status codes: a
// create conflict is a bad request, missing games/players are not found.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := http.StatusNotFound
	if domain.IsGameAlreadyExists(err) {
		status = http.StatusBadRequest
	}
	writeError(w, r, status, err.Error(), logger)
}
