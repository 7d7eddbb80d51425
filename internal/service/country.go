package service

import (
	"context"
	"fmt"

	"github.com/oriontour/admin-api/internal/model"
)

// ListCountries returns all countries with their pre-aggregated marker data
func (s *Service) ListCountries(ctx context.Context) ([]model.GlobeMarker, error) {
	markers, err := s.repos.Country.ListMarkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return markers, nil
}

// UpsertCountry creates a country or, if the ISO code already exists,
// overwrites the existing row's non-key fields
func (s *Service) UpsertCountry(ctx context.Context, req model.CountryUpsertRequest) (*model.Country, error) {
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}

	country, err := s.repos.Country.Upsert(ctx, countryFromRequest(req))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert country: %w", err)
	}
	return country, nil
}

// UpdateCountry overwrites a country row by id
func (s *Service) UpdateCountry(ctx context.Context, id int, req model.CountryUpsertRequest) (*model.Country, error) {
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}

	country, err := s.repos.Country.Update(ctx, id, countryFromRequest(req))
	if err != nil {
		return nil, fmt.Errorf("failed to update country: %w", err)
	}
	if country == nil {
		return nil, fmt.Errorf("%w: country %d", ErrNotFound, id)
	}
	return country, nil
}

// DeleteCountry deletes a country by id; tours, hotels and their offers
// cascade at the store level
func (s *Service) DeleteCountry(ctx context.Context, id int) error {
	deleted, err := s.repos.Country.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete country: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: country %d", ErrNotFound, id)
	}
	return nil
}

func countryFromRequest(req model.CountryUpsertRequest) model.Country {
	return model.Country{
		NameRu:          req.NameRu,
		NameEn:          req.NameEn,
		IsoCode:         req.IsoCode,
		Lat:             req.Lat,
		Lng:             req.Lng,
		FlagURL:         req.FlagURL,
		IsPopular:       req.IsPopular,
		PopularityScore: req.PopularityScore,
	}
}
