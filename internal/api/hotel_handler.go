package api

import (
	"encoding/json"
	"net/http"

	"github.com/oriontour/admin-api/internal/model"
)

// ListHotels handles GET /admin/hotels
func (h *Handler) ListHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.service.ListHotels(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, hotels)
}

// HotelOptions handles GET /admin/hotels/options
func (h *Handler) HotelOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	options, err := h.service.HotelOptions(r.Context(), opts)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, options)
}

// UpsertHotel handles POST /admin/hotels
func (h *Handler) UpsertHotel(w http.ResponseWriter, r *http.Request) {
	var req model.HotelUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hotel, err := h.service.UpsertHotel(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, hotel)
}

// UpdateHotel handles PUT /admin/hotels/{id}
func (h *Handler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid hotel id")
		return
	}

	var req model.HotelUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hotel, err := h.service.UpdateHotel(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, hotel)
}

// DeleteHotel handles DELETE /admin/hotels/{id}
func (h *Handler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid hotel id")
		return
	}

	if err := h.service.DeleteHotel(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListHotelImages handles GET /admin/hotels/{id}/images
func (h *Handler) ListHotelImages(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid hotel id")
		return
	}

	images, err := h.service.ListHotelImages(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, images)
}

// AddHotelImage handles POST /admin/hotels/{id}/images
func (h *Handler) AddHotelImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid hotel id")
		return
	}

	var req model.HotelImageCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	image, err := h.service.AddHotelImage(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, image)
}

// DeleteHotelImage handles DELETE /admin/hotel-images/{imageId}
func (h *Handler) DeleteHotelImage(w http.ResponseWriter, r *http.Request) {
	imageID, err := pathID(r, "imageId")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid image id")
		return
	}

	if err := h.service.DeleteHotelImage(r.Context(), imageID); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
