package handlers

import (
	"encoding/json"
	"net/http"

	"HeritagePartage/internal/config"
	"HeritagePartage/internal/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ItemHandler serves the catalog: fiches and their photos.
type ItemHandler struct {
	Service *service.ItemService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

func NewItemHandler(s *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{Service: s, Logger: logger, Config: cfg}
}

// maxBody caps request bodies carrying a base64 photo payload.
func (h *ItemHandler) maxBody() int64 {
	return int64(h.Config.PhotoMaxSizeMB)*1024*1024 + 1*1024*1024
}

type itemRequest struct {
	Photo       string   `json:"photo,omitempty"`
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Value       *float64 `json:"value,omitempty"`
}

func (req *itemRequest) toUpdate() service.ItemUpdate {
	upd := service.ItemUpdate{Title: req.Title, Description: req.Description}
	if req.Value != nil {
		v := decimal.NewFromFloat(*req.Value)
		upd.Value = &v
	}
	return upd
}

// Create POST /api/items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody())
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create item: invalid request body", "error", err)
		writeError(w, h.Logger, service.Validationf("corps de requête invalide"))
		return
	}
	item, err := h.Service.Create(r.Context(), callerID(r), req.Photo, req.toUpdate())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemDTO(item))
}

// List GET /api/items?filter=&userId=&showDeleted=
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	showDeleted := q.Get("showDeleted") != "false"
	var filterUserID int64
	if raw := q.Get("userId"); raw != "" {
		id, err := pathIDFromString(raw)
		if err != nil {
			writeError(w, h.Logger, err)
			return
		}
		filterUserID = id
	}
	views, err := h.Service.List(r.Context(), callerID(r), filterUserID, q.Get("filter"), showDeleted)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	dtos := make([]ItemDTO, 0, len(views))
	for i := range views {
		dtos = append(dtos, toItemViewDTO(&views[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Get GET /api/items/{id}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	item, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(item))
}

// Update PATCH /api/items/{id}
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update item: invalid request body", "error", err)
		writeError(w, h.Logger, service.Validationf("corps de requête invalide"))
		return
	}
	item, err := h.Service.Update(r.Context(), callerID(r), id, req.toUpdate())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(item))
}

// Delete DELETE /api/items/{id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	if err := h.Service.SoftDelete(r.Context(), callerID(r), id); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Restore PATCH|PUT /api/items/{id}/restore
func (h *ItemHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	item, err := h.Service.Restore(r.Context(), callerID(r), id)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(item))
}

type addPhotoRequest struct {
	Photo string `json:"photo"`
}

// AddPhoto POST /api/items/{id}/photos
func (h *ItemHandler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody())
	var req addPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Add photo: invalid request body", "error", err)
		writeError(w, h.Logger, service.Validationf("corps de requête invalide"))
		return
	}
	photo, err := h.Service.AddPhoto(r.Context(), callerID(r), id, req.Photo)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPhotoDTO(photo))
}

// DeletePhoto DELETE /api/items/{id}/photos/{photoID}
func (h *ItemHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	photoID, err := pathID(r, "photoID")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	if err := h.Service.DeletePhoto(r.Context(), callerID(r), id, photoID); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reorderRequest struct {
	PhotoIDs []int64 `json:"photoIds"`
}

// ReorderPhotos PATCH /api/items/{id}/photos/reorder
func (h *ItemHandler) ReorderPhotos(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Reorder photos: invalid request body", "error", err)
		writeError(w, h.Logger, service.Validationf("corps de requête invalide"))
		return
	}
	item, err := h.Service.ReorderPhotos(r.Context(), callerID(r), id, req.PhotoIDs)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(item))
}
