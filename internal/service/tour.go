package service

import (
	"context"
	"fmt"

	"github.com/oriontour/admin-api/internal/model"
)

// ListTours returns all tours with availability-filtered aggregates
func (s *Service) ListTours(ctx context.Context) ([]model.TourListItem, error) {
	tours, err := s.repos.Tour.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}
	return tours, nil
}

// TourOptions returns lightweight tour rows for selection pickers
func (s *Service) TourOptions(ctx context.Context, opts model.OptionsRequest) ([]model.TourOption, error) {
	options, err := s.repos.Tour.Options(ctx, clampOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to search tours: %w", err)
	}
	return options, nil
}

// UpsertTour creates a tour or overwrites the existing row matching
// the (title, country) natural key
func (s *Service) UpsertTour(ctx context.Context, req model.TourUpsertRequest) (*model.Tour, error) {
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}

	tour, err := s.repos.Tour.Upsert(ctx, tourFromRequest(req))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert tour: %w", err)
	}
	return tour, nil
}

// UpdateTour overwrites a tour row by id
func (s *Service) UpdateTour(ctx context.Context, id int, req model.TourUpsertRequest) (*model.Tour, error) {
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}

	tour, err := s.repos.Tour.Update(ctx, id, tourFromRequest(req))
	if err != nil {
		return nil, fmt.Errorf("failed to update tour: %w", err)
	}
	if tour == nil {
		return nil, fmt.Errorf("%w: tour %d", ErrNotFound, id)
	}
	return tour, nil
}

// DeleteTour deletes a tour by id; its offers keep their rows with a
// nulled tour reference
func (s *Service) DeleteTour(ctx context.Context, id int) error {
	deleted, err := s.repos.Tour.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete tour: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: tour %d", ErrNotFound, id)
	}
	return nil
}

func tourFromRequest(req model.TourUpsertRequest) model.Tour {
	return model.Tour{
		Title:     req.Title,
		ShortDesc: req.ShortDesc,
		CountryID: req.CountryID,
		ImageURL:  req.ImageURL,
		IsHot:     req.IsHot,
	}
}
