package handlers

import (
	"encoding/json"
	"net/http"

	"HeritagePartage/internal/service"

	"go.uber.org/zap"
)

// PreferenceHandler serves preference reads/writes and the repartition view.
type PreferenceHandler struct {
	Service *service.PreferenceService
	Logger  *zap.SugaredLogger
}

func NewPreferenceHandler(s *service.PreferenceService, logger *zap.SugaredLogger) *PreferenceHandler {
	return &PreferenceHandler{Service: s, Logger: logger}
}

type setPreferenceRequest struct {
	Level string `json:"level"`
}

// Set POST /api/items/{id}/preferences
func (h *PreferenceHandler) Set(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	var req setPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Set preference: invalid request body", "error", err)
		writeError(w, h.Logger, service.Validationf("corps de requête invalide"))
		return
	}
	p, err := h.Service.Set(r.Context(), callerID(r), id, req.Level)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toPreferenceDTO(p))
}

// GetMine GET /api/items/{id}/preferences/me
// Responds with JSON null when the caller has no preference yet.
func (h *PreferenceHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	p, err := h.Service.GetMine(r.Context(), callerID(r), id)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	if p == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, toPreferenceDTO(p))
}

// ListForItem GET /api/items/{id}/preferences
func (h *PreferenceHandler) ListForItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	prefs, err := h.Service.ListForItem(r.Context(), id)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	dtos := make([]PreferenceDTO, 0, len(prefs))
	for i := range prefs {
		dtos = append(dtos, toPreferenceDTO(&prefs[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Repartition GET /api/stats/repartition
func (h *PreferenceHandler) Repartition(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Repartition(r.Context())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	dtos := make([]RepartitionStatDTO, 0, len(stats))
	for i := range stats {
		dtos = append(dtos, toRepartitionDTO(&stats[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}
