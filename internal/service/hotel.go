package service

import (
	"context"
	"fmt"

	"github.com/oriontour/admin-api/internal/model"
)

// ListHotels returns all hotels with their listing aggregates
func (s *Service) ListHotels(ctx context.Context) ([]model.HotelListItem, error) {
	hotels, err := s.repos.Hotel.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

// HotelOptions returns lightweight hotel rows for selection pickers
func (s *Service) HotelOptions(ctx context.Context, opts model.OptionsRequest) ([]model.HotelOption, error) {
	options, err := s.repos.Hotel.Options(ctx, clampOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}
	return options, nil
}

// UpsertHotel creates a hotel or overwrites the existing row matching
// the (country, name) natural key
func (s *Service) UpsertHotel(ctx context.Context, req model.HotelUpsertRequest) (*model.Hotel, error) {
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}

	hotel, err := s.repos.Hotel.Upsert(ctx, hotelFromRequest(req))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert hotel: %w", err)
	}
	return hotel, nil
}

// UpdateHotel overwrites a hotel row by id
func (s *Service) UpdateHotel(ctx context.Context, id int, req model.HotelUpsertRequest) (*model.Hotel, error) {
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}

	hotel, err := s.repos.Hotel.Update(ctx, id, hotelFromRequest(req))
	if err != nil {
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %d", ErrNotFound, id)
	}
	return hotel, nil
}

// DeleteHotel deletes a hotel by id; its offers, images and reviews
// cascade at the store level
func (s *Service) DeleteHotel(ctx context.Context, id int) error {
	deleted, err := s.repos.Hotel.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete hotel: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: hotel %d", ErrNotFound, id)
	}
	return nil
}

// ListHotelImages returns a hotel's images ordered for the gallery
func (s *Service) ListHotelImages(ctx context.Context, hotelID int) ([]model.HotelImage, error) {
	hotel, err := s.repos.Hotel.GetByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %d", ErrNotFound, hotelID)
	}

	images, err := s.repos.Hotel.ListImages(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotel images: %w", err)
	}
	return images, nil
}

// AddHotelImage attaches an image to a hotel. Re-submitting an URL the
// hotel already has updates its sort order instead of duplicating it.
func (s *Service) AddHotelImage(ctx context.Context, hotelID int, req model.HotelImageCreateRequest) (*model.HotelImage, error) {
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}

	hotel, err := s.repos.Hotel.GetByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %d", ErrNotFound, hotelID)
	}

	image, err := s.repos.Hotel.UpsertImage(ctx, model.HotelImage{
		HotelID:   hotelID,
		URL:       req.URL,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add hotel image: %w", err)
	}
	return image, nil
}

// DeleteHotelImage deletes a single image by its own id
func (s *Service) DeleteHotelImage(ctx context.Context, imageID int) error {
	deleted, err := s.repos.Hotel.DeleteImage(ctx, imageID)
	if err != nil {
		return fmt.Errorf("failed to delete hotel image: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: hotel image %d", ErrNotFound, imageID)
	}
	return nil
}

func hotelFromRequest(req model.HotelUpsertRequest) model.Hotel {
	return model.Hotel{
		CountryID:   req.CountryID,
		ResortID:    req.ResortID,
		Name:        req.Name,
		Stars:       req.Stars,
		Address:     req.Address,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Description: req.Description,
	}
}
