package api

import (
	"net/http"

	"github.com/kainoa/surftrack/pkg/repository"
)

type DashboardHandler struct {
	dashRepo repository.DashboardRepo
}

func NewDashboardHandler(dr repository.DashboardRepo) *DashboardHandler {
	return &DashboardHandler{dashRepo: dr}
}

// GetDashboard returns the aggregate view of the request owner's session
// history. An empty history yields zero counts and the placeholder spot name.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashRepo.DashboardStats(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeInternalError(w, "failed to load dashboard stats", err)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}
