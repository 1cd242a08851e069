package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kainoa/surftrack/internal/db"
	"github.com/kainoa/surftrack/pkg/models"
)

type SystemHandler struct {
	db          *db.DB
	environment string
}

func NewSystemHandler(database *db.DB, environment string) *SystemHandler {
	return &SystemHandler{db: database, environment: environment}
}

type healthResponse struct {
	Status      string                `json:"status"`
	Timestamp   string                `json:"timestamp"`
	Environment string                `json:"environment"`
	Database    models.DatabaseHealth `json:"database"`
}

// HealthHandler reports process and store health: 200 while the store answers
// a trivial query, 503 otherwise.
func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	dbHealth := h.db.Health(r.Context())

	resp := healthResponse{
		Status:      "OK",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.environment,
		Database:    dbHealth,
	}
	status := http.StatusOK
	if dbHealth.Status != "healthy" {
		resp.Status = "ERROR"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, resp, status)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":%q,"buildTime":%q}`, version, buildTime)
	}
}
