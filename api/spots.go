package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kainoa/surftrack/internal/metrics"
	"github.com/kainoa/surftrack/pkg/models"
	"github.com/kainoa/surftrack/pkg/repository"
)

type SpotsHandler struct {
	spotRepo repository.SpotRepo
}

func NewSpotsHandler(sr repository.SpotRepo) *SpotsHandler {
	return &SpotsHandler{spotRepo: sr}
}

// createSpotRequest carries the client field names; they map onto snake_case
// columns on the way in.
type createSpotRequest struct {
	Name             string  `json:"name"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	BreakType        string  `json:"breakType"`
	SkillRequirement string  `json:"skillRequirement"`
	Description      string  `json:"description"`
}

type updateSpotRequest struct {
	Name             *string  `json:"name"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	BreakType        *string  `json:"breakType"`
	SkillRequirement *string  `json:"skillRequirement"`
	Description      *string  `json:"description"`
}

func (h *SpotsHandler) ListSpots(w http.ResponseWriter, r *http.Request) {
	spots, err := h.spotRepo.ListActiveSpots(r.Context())
	if err != nil {
		writeInternalError(w, "failed to list surf spots", err)
		return
	}

	if spots == nil {
		spots = []models.SurfSpot{}
	}

	writeJSON(w, spots, http.StatusOK)
}

// CreateSpot inserts a spot owned by the request identity. Field values flow
// to the store as submitted; a malformed row surfaces as a store error.
func (h *SpotsHandler) CreateSpot(w http.ResponseWriter, r *http.Request) {
	var req createSpotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	spot := &models.SurfSpot{
		UserID:           UserIDFromContext(ctx),
		Name:             req.Name,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		BreakType:        models.BreakType(req.BreakType),
		SkillRequirement: models.SkillRequirement(req.SkillRequirement),
		Notes:            req.Description,
	}

	id, err := h.spotRepo.CreateSpot(ctx, spot)
	if err != nil {
		writeInternalError(w, "failed to create surf spot", err)
		return
	}

	created, err := h.spotRepo.GetSpotByID(ctx, id)
	if err != nil || created == nil {
		writeInternalError(w, "failed to load created surf spot", err)
		return
	}

	metrics.SpotsCreatedTotal.Inc()
	writeJSON(w, created, http.StatusCreated)
}

func (h *SpotsHandler) GetSpot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	spot, err := h.spotRepo.GetSpotByID(r.Context(), id)
	if err != nil {
		writeInternalError(w, "failed to load surf spot", err)
		return
	}
	if spot == nil || !spot.IsActive {
		writeNotFound(w, "Surf spot not found")
		return
	}

	writeJSON(w, spot, http.StatusOK)
}

func (h *SpotsHandler) UpdateSpot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateSpotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	spot, err := h.spotRepo.GetSpotByID(ctx, id)
	if err != nil {
		writeInternalError(w, "failed to load surf spot", err)
		return
	}
	if spot == nil {
		writeNotFound(w, "Surf spot not found")
		return
	}

	if req.Name != nil {
		spot.Name = *req.Name
	}
	if req.Latitude != nil {
		spot.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		spot.Longitude = *req.Longitude
	}
	if req.BreakType != nil {
		spot.BreakType = models.BreakType(*req.BreakType)
	}
	if req.SkillRequirement != nil {
		spot.SkillRequirement = models.SkillRequirement(*req.SkillRequirement)
	}
	if req.Description != nil {
		spot.Notes = *req.Description
	}

	if err := h.spotRepo.UpdateSpot(ctx, spot); err != nil {
		writeInternalError(w, "failed to update surf spot", err)
		return
	}

	updated, err := h.spotRepo.GetSpotByID(ctx, id)
	if err != nil || updated == nil {
		writeInternalError(w, "failed to load updated surf spot", err)
		return
	}

	writeJSON(w, updated, http.StatusOK)
}

// DeleteSpot deactivates the row instead of removing it so existing sessions
// keep their join target.
func (h *SpotsHandler) DeleteSpot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	spot, err := h.spotRepo.GetSpotByID(ctx, id)
	if err != nil {
		writeInternalError(w, "failed to load surf spot", err)
		return
	}
	if spot == nil {
		writeNotFound(w, "Surf spot not found")
		return
	}

	if err := h.spotRepo.DeactivateSpot(ctx, id); err != nil {
		writeInternalError(w, "failed to delete surf spot", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} route variable, answering 400 itself on garbage.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
