package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oriontour/admin-api/internal/model"
	"github.com/oriontour/admin-api/internal/service"
	"go.uber.org/zap"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, model.ErrorResponse{Message: message})
}

// respondServiceError maps service errors to HTTP statuses. Unknown
// errors are logged and returned as an opaque 500.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidation):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
