package api

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.Any("err", err))
	}
}

// writeInternalError logs the store error and surfaces the generic body the
// API contract promises.
func writeInternalError(w http.ResponseWriter, context string, err error) {
	logger.Error(context, slog.Any("err", err))
	writeJSON(w, map[string]string{"error": "Internal server error"}, http.StatusInternalServerError)
}

func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, map[string]string{"error": message}, http.StatusNotFound)
}

// NotFoundHandler answers unmatched routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeNotFound(w, "Route not found")
}
