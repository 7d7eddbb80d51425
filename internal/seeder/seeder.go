package seeder

import (
	"context"
	"fmt"

	"github.com/oriontour/admin-api/internal/model"
	"github.com/oriontour/admin-api/internal/repository"
	"go.uber.org/zap"
)

var defaultCurrencies = []model.Currency{
	{Code: "EUR", NameRu: "Евро", Symbol: "€"},
	{Code: "USD", NameRu: "Доллар США", Symbol: "$"},
	{Code: "RUB", NameRu: "Российский рубль", Symbol: "₽"},
}

var defaultMealPlans = []model.MealPlan{
	{Code: "RO", NameRu: "Без питания"},
	{Code: "BB", NameRu: "Завтраки"},
	{Code: "HB", NameRu: "Полупансион"},
	{Code: "FB", NameRu: "Полный пансион"},
	{Code: "AI", NameRu: "Всё включено"},
}

var defaultDepartureCities = []model.DepartureCity{
	{NameRu: "Москва", IsActive: true},
	{NameRu: "Санкт-Петербург", IsActive: true},
	{NameRu: "Екатеринбург", IsActive: true},
	{NameRu: "Казань", IsActive: true},
	{NameRu: "Новосибирск", IsActive: false},
}

// Seed populates the reference tables with the default lookup rows.
// Every row is upserted, so re-running against a seeded database is safe.
func Seed(ctx context.Context, repos *repository.Container, logger *zap.Logger) error {
	for _, c := range defaultCurrencies {
		if err := repos.Meta.UpsertCurrency(ctx, c); err != nil {
			return fmt.Errorf("failed to seed currency %s: %w", c.Code, err)
		}
	}

	for _, m := range defaultMealPlans {
		if err := repos.Meta.UpsertMealPlan(ctx, m); err != nil {
			return fmt.Errorf("failed to seed meal plan %s: %w", m.Code, err)
		}
	}

	for _, d := range defaultDepartureCities {
		if err := repos.Meta.UpsertDepartureCity(ctx, d); err != nil {
			return fmt.Errorf("failed to seed departure city %s: %w", d.NameRu, err)
		}
	}

	logger.Info("Reference tables seeded",
		zap.Int("currencies", len(defaultCurrencies)),
		zap.Int("meal_plans", len(defaultMealPlans)),
		zap.Int("departure_cities", len(defaultDepartureCities)))

	return nil
}
