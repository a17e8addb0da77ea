package handlers

import (
	"encoding/json"
	"net/http"

	"HeritagePartage/internal/service"

	"go.uber.org/zap"
)

// UserHandler serves the identification endpoints.
type UserHandler struct {
	Service *service.UserService
	Logger  *zap.SugaredLogger
}

func NewUserHandler(s *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{Service: s, Logger: logger}
}

// List GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.List(r.Context())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	dtos := make([]UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, toUserDTO(&users[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Get GET /api/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	u, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(u))
}

type createUserRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Create POST /api/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create user: invalid request body", "error", err)
		writeError(w, h.Logger, service.Validationf("corps de requête invalide"))
		return
	}
	u, err := h.Service.Create(r.Context(), req.Name, req.Role)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserDTO(u))
}
