package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"HeritagePartage/internal/middleware"
	"HeritagePartage/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Message string `json:"message"`
}

// writeError maps the service error taxonomy to flat HTTP statuses.
func writeError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorBody{Message: ve.Msg})
	case errors.Is(err, service.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, errorBody{Message: err.Error()})
	case errors.Is(err, service.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorBody{Message: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Message: err.Error()})
	case errors.Is(err, service.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody{Message: err.Error()})
	default:
		logger.Errorw("unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "erreur interne"})
	}
}

// callerID returns the asserted user id, 0 when anonymous. Existence checks
// happen in the services.
func callerID(r *http.Request) int64 {
	id, _ := middleware.GetUserIDFromContext(r.Context())
	return id
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	return pathIDFromString(chi.URLParam(r, name))
}

func pathIDFromString(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, service.Validationf("identifiant invalide")
	}
	return id, nil
}
