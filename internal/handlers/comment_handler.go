package handlers

import (
	"encoding/json"
	"net/http"

	"HeritagePartage/internal/service"

	"go.uber.org/zap"
)

// CommentHandler serves the per-item comment thread.
type CommentHandler struct {
	Service *service.CommentService
	Logger  *zap.SugaredLogger
}

func NewCommentHandler(s *service.CommentService, logger *zap.SugaredLogger) *CommentHandler {
	return &CommentHandler{Service: s, Logger: logger}
}

// List GET /api/items/{id}/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	comments, err := h.Service.List(r.Context(), id)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	dtos := make([]CommentDTO, 0, len(comments))
	for i := range comments {
		dtos = append(dtos, toCommentDTO(&comments[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

type createCommentRequest struct {
	Text string `json:"text"`
}

// Create POST /api/items/{id}/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create comment: invalid request body", "error", err)
		writeError(w, h.Logger, service.Validationf("corps de requête invalide"))
		return
	}
	c, err := h.Service.Create(r.Context(), callerID(r), id, req.Text)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentDTO(c))
}

// Delete DELETE /api/items/{id}/comments/{commentID}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	commentID, err := pathID(r, "commentID")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	if err := h.Service.Delete(r.Context(), callerID(r), id, commentID); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
