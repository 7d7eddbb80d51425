package api

import (
	"encoding/json"
	"net/http"

	"github.com/oriontour/admin-api/internal/model"
)

// ListCountries handles GET /admin/countries
func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.ListCountries(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, countries)
}

// UpsertCountry handles POST /admin/countries
func (h *Handler) UpsertCountry(w http.ResponseWriter, r *http.Request) {
	var req model.CountryUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	country, err := h.service.UpsertCountry(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, country)
}

// UpdateCountry handles PUT /admin/countries/{id}
func (h *Handler) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid country id")
		return
	}

	var req model.CountryUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	country, err := h.service.UpdateCountry(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, country)
}

// DeleteCountry handles DELETE /admin/countries/{id}
func (h *Handler) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid country id")
		return
	}

	if err := h.service.DeleteCountry(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
