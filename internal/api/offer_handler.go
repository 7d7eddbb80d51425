package api

import (
	"encoding/json"
	"net/http"

	"github.com/oriontour/admin-api/internal/model"
)

// ListOffers handles GET /admin/offers
func (h *Handler) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.ListOffers(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, offers)
}

// UpsertOffer handles POST /admin/offers
func (h *Handler) UpsertOffer(w http.ResponseWriter, r *http.Request) {
	var req model.OfferUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	offer, err := h.service.UpsertOffer(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, offer)
}

// PatchOffer handles PATCH /admin/offers/{id}
func (h *Handler) PatchOffer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid offer id")
		return
	}

	var req model.OfferPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	offer, err := h.service.PatchOffer(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, offer)
}

// DeleteOffer handles DELETE /admin/offers/{id}
func (h *Handler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid offer id")
		return
	}

	if err := h.service.DeleteOffer(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetMeta handles GET /admin/meta
func (h *Handler) GetMeta(w http.ResponseWriter, r *http.Request) {
	meta, err := h.service.GetMeta(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, meta)
}
