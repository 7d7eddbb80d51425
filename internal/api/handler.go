package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/oriontour/admin-api/internal/auth"
	"github.com/oriontour/admin-api/internal/model"
	"github.com/oriontour/admin-api/internal/service"
	"go.uber.org/zap"
)

// Handler handles HTTP requests
type Handler struct {
	service service.ServiceInterface
	auth    *auth.Manager
	logger  *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface, authManager *auth.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		auth:    authManager,
		logger:  logger,
	}
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Login handles POST /admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.auth.Login(req.Login, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.logger.Error("Login failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, model.LoginResponse{Token: token})
}

// pathID extracts a positive integer path variable
func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// optionsFromQuery parses the shared typeahead query parameters
func optionsFromQuery(r *http.Request) (model.OptionsRequest, error) {
	opts := model.OptionsRequest{
		Query: r.URL.Query().Get("q"),
	}

	if countryStr := r.URL.Query().Get("country_id"); countryStr != "" {
		countryID, err := strconv.Atoi(countryStr)
		if err != nil || countryID <= 0 {
			return opts, errors.New("invalid country_id parameter")
		}
		opts.CountryID = &countryID
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return opts, errors.New("invalid limit parameter")
		}
		opts.Limit = limit
	}

	return opts, nil
}
