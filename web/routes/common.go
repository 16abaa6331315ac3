package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dasdy/stockroom/db"
)

// ServerHandler holds all dependencies needed for the API handlers.
type ServerHandler struct {
	Store db.Store
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// writeMessage emits the {"message": ...} error shape the client extracts.
func writeMessage(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{"message": fmt.Sprintf(format, args...)})
}

// storeError maps db.ErrNotFound to a 404 with an "X not found" message and
// everything else to a 500.
func storeError(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, db.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "%s not found", what)

		return
	}

	slog.Error("store operation failed", "what", what, "error", err)
	writeMessage(w, http.StatusInternalServerError, "internal error")
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")

		return false
	}

	return true
}
