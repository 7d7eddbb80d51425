package service

import (
	"context"
	"fmt"

	"github.com/oriontour/admin-api/internal/model"
)

// ListOffers returns all offers with related labels resolved
func (s *Service) ListOffers(ctx context.Context) ([]model.OfferListItem, error) {
	offers, err := s.repos.Offer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

// UpsertOffer creates an offer or overwrites the existing row matching
// the (hotel, departure city, start date) natural key. The referenced
// hotel is resolved first; its current star count is embedded into the
// row so listings stay consistent if the hotel changes later.
func (s *Service) UpsertOffer(ctx context.Context, req model.OfferUpsertRequest) (*model.Offer, error) {
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}

	hotel, err := s.repos.Hotel.GetByID(ctx, req.HotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %d does not exist", ErrValidation, req.HotelID)
	}

	startDate, err := model.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	offer := model.Offer{
		TourID:           req.TourID,
		HotelID:          req.HotelID,
		DepartureCityID:  req.DepartureCityID,
		StartDate:        startDate,
		Nights:           req.Nights,
		MealPlanID:       req.MealPlanID,
		Price:            req.Price,
		CurrencyCode:     req.CurrencyCode,
		IncludesFlight:   true,
		IsAvailable:      true,
		AvailableSeats:   req.AvailableSeats,
		HotelStarsCached: hotel.Stars,
	}
	if offer.CurrencyCode == "" {
		offer.CurrencyCode = "EUR"
	}
	if req.IncludesFlight != nil {
		offer.IncludesFlight = *req.IncludesFlight
	}
	if req.IsAvailable != nil {
		offer.IsAvailable = *req.IsAvailable
	}

	result, err := s.repos.Offer.Upsert(ctx, offer)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert offer: %w", err)
	}
	return result, nil
}

// PatchOffer updates only the fields present in the request body
func (s *Service) PatchOffer(ctx context.Context, id int, req model.OfferPatchRequest) (*model.Offer, error) {
	if req.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}

	offer, err := s.repos.Offer.Patch(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to patch offer: %w", err)
	}
	if offer == nil {
		return nil, fmt.Errorf("%w: offer %d", ErrNotFound, id)
	}
	return offer, nil
}

// DeleteOffer deletes an offer by id
func (s *Service) DeleteOffer(ctx context.Context, id int) error {
	deleted, err := s.repos.Offer.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: offer %d", ErrNotFound, id)
	}
	return nil
}
