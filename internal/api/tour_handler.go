package api

import (
	"encoding/json"
	"net/http"

	"github.com/oriontour/admin-api/internal/model"
)

// ListTours handles GET /admin/tours
func (h *Handler) ListTours(w http.ResponseWriter, r *http.Request) {
	tours, err := h.service.ListTours(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, tours)
}

// TourOptions handles GET /admin/tours/options
func (h *Handler) TourOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	options, err := h.service.TourOptions(r.Context(), opts)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, options)
}

// UpsertTour handles POST /admin/tours
func (h *Handler) UpsertTour(w http.ResponseWriter, r *http.Request) {
	var req model.TourUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tour, err := h.service.UpsertTour(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, tour)
}

// UpdateTour handles PUT /admin/tours/{id}
func (h *Handler) UpdateTour(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid tour id")
		return
	}

	var req model.TourUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tour, err := h.service.UpdateTour(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, tour)
}

// DeleteTour handles DELETE /admin/tours/{id}
func (h *Handler) DeleteTour(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid tour id")
		return
	}

	if err := h.service.DeleteTour(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
