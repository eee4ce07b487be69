// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"expense-ledger/internal/api/types"
	"expense-ledger/internal/util"
)

// DefaultTimeout bounds request handling; no operation should block longer
// than one round trip to the store.
const DefaultTimeout = 30 * time.Second

// respondWithJSON serializes payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, logger *slog.Logger, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps application errors to HTTP status codes.
// Store failures keep their underlying message in the body; acceptable for an
// internal tool, flagged as a liability for a public one.
func respondWithError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := http.StatusInternalServerError
	message := err.Error()

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
	case util.IsError(err, util.ErrNotFound), util.IsError(err, util.ErrUserNotFound):
		statusCode = http.StatusNotFound
	case util.IsError(err, util.ErrConflict):
		statusCode = http.StatusConflict
	case util.IsError(err, util.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(w, logger, statusCode, types.ErrorResponse{Error: message})
}
