package service

import (
	"context"
	"fmt"

	"github.com/oriontour/admin-api/internal/model"
)

// GetMeta bundles the reference lists used by console pickers
func (s *Service) GetMeta(ctx context.Context) (*model.MetaResponse, error) {
	countries, err := s.repos.Country.ListRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}

	resorts, err := s.repos.Meta.ListResorts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resorts: %w", err)
	}

	cities, err := s.repos.Meta.ListActiveDepartureCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departure cities: %w", err)
	}

	plans, err := s.repos.Meta.ListMealPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}

	currencies, err := s.repos.Meta.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	return &model.MetaResponse{
		Countries:       countries,
		Resorts:         resorts,
		DepartureCities: cities,
		MealPlans:       plans,
		Currencies:      currencies,
	}, nil
}
