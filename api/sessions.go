package api

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/kainoa/surftrack/internal/metrics"
	"github.com/kainoa/surftrack/pkg/models"
	"github.com/kainoa/surftrack/pkg/repository"
)

type SessionsHandler struct {
	sessionRepo repository.SessionRepo
	spotRepo    repository.SpotRepo
}

func NewSessionsHandler(sr repository.SessionRepo, spr repository.SpotRepo) *SessionsHandler {
	return &SessionsHandler{sessionRepo: sr, spotRepo: spr}
}

// createSessionRequest names the spot instead of referencing its id; the
// lookup happens server side. Optional numerics stay pointers so an omitted
// field reaches the store as NULL, not zero.
type createSessionRequest struct {
	SurfSpot         string `json:"surfSpot"`
	Date             string `json:"date"`
	Duration         *int64 `json:"duration"`
	WaveCount        *int64 `json:"waveCount"`
	Rating           *int64 `json:"rating"`
	ConditionsRating *int64 `json:"conditionsRating"`
	Notes            string `json:"notes"`
}

type updateSessionRequest struct {
	SurfSpot         *string `json:"surfSpot"`
	Date             *string `json:"date"`
	Duration         *int64  `json:"duration"`
	WaveCount        *int64  `json:"waveCount"`
	Rating           *int64  `json:"rating"`
	ConditionsRating *int64  `json:"conditionsRating"`
	Notes            *string `json:"notes"`
}

func (h *SessionsHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessionRepo.ListSessions(r.Context())
	if err != nil {
		writeInternalError(w, "failed to list surf sessions", err)
		return
	}

	if sessions == nil {
		sessions = []models.SurfSession{}
	}

	writeJSON(w, sessions, http.StatusOK)
}

// CreateSession resolves the submitted spot name to an id, first match only.
// No match stores a NULL reference rather than rejecting the session.
func (h *SessionsHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	spotID, err := h.spotRepo.GetSpotIDByName(ctx, req.SurfSpot)
	if err != nil {
		writeInternalError(w, "failed to resolve surf spot", err)
		return
	}
	if spotID == nil {
		logger.Warn("session references unknown spot, storing null reference",
			slog.String("spot", req.SurfSpot))
	}

	session := &models.SurfSession{
		UserID:            UserIDFromContext(ctx),
		SurfSpotID:        spotID,
		SessionDate:       req.Date,
		DurationMinutes:   req.Duration,
		WavesCaught:       req.WaveCount,
		PerformanceRating: req.Rating,
		WaveQualityRating: req.ConditionsRating,
		SessionNotes:      req.Notes,
	}

	id, err := h.sessionRepo.CreateSession(ctx, session)
	if err != nil {
		writeInternalError(w, "failed to create surf session", err)
		return
	}

	created, err := h.sessionRepo.GetSessionByID(ctx, id)
	if err != nil || created == nil {
		writeInternalError(w, "failed to load created surf session", err)
		return
	}

	metrics.SessionsCreatedTotal.WithLabelValues(boolLabel(spotID != nil)).Inc()
	writeJSON(w, created, http.StatusCreated)
}

func (h *SessionsHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	session, err := h.sessionRepo.GetSessionByID(r.Context(), id)
	if err != nil {
		writeInternalError(w, "failed to load surf session", err)
		return
	}
	if session == nil {
		writeNotFound(w, "Surf session not found")
		return
	}

	writeJSON(w, session, http.StatusOK)
}

func (h *SessionsHandler) ListSessionsBySpot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	sessions, err := h.sessionRepo.ListSessionsBySpot(r.Context(), id)
	if err != nil {
		writeInternalError(w, "failed to list surf sessions for spot", err)
		return
	}

	if sessions == nil {
		sessions = []models.SurfSession{}
	}

	writeJSON(w, sessions, http.StatusOK)
}

func (h *SessionsHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	session, err := h.sessionRepo.GetSessionByID(ctx, id)
	if err != nil {
		writeInternalError(w, "failed to load surf session", err)
		return
	}
	if session == nil {
		writeNotFound(w, "Surf session not found")
		return
	}

	if req.SurfSpot != nil {
		spotID, err := h.spotRepo.GetSpotIDByName(ctx, *req.SurfSpot)
		if err != nil {
			writeInternalError(w, "failed to resolve surf spot", err)
			return
		}
		session.SurfSpotID = spotID
	}
	if req.Date != nil {
		session.SessionDate = *req.Date
	}
	if req.Duration != nil {
		session.DurationMinutes = req.Duration
	}
	if req.WaveCount != nil {
		session.WavesCaught = req.WaveCount
	}
	if req.Rating != nil {
		session.PerformanceRating = req.Rating
	}
	if req.ConditionsRating != nil {
		session.WaveQualityRating = req.ConditionsRating
	}
	if req.Notes != nil {
		session.SessionNotes = *req.Notes
	}

	if err := h.sessionRepo.UpdateSession(ctx, session); err != nil {
		writeInternalError(w, "failed to update surf session", err)
		return
	}

	updated, err := h.sessionRepo.GetSessionByID(ctx, id)
	if err != nil || updated == nil {
		writeInternalError(w, "failed to load updated surf session", err)
		return
	}

	writeJSON(w, updated, http.StatusOK)
}

func (h *SessionsHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	session, err := h.sessionRepo.GetSessionByID(ctx, id)
	if err != nil {
		writeInternalError(w, "failed to load surf session", err)
		return
	}
	if session == nil {
		writeNotFound(w, "Surf session not found")
		return
	}

	if err := h.sessionRepo.DeleteSession(ctx, id); err != nil {
		writeInternalError(w, "failed to delete surf session", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
