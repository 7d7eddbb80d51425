package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/oriontour/admin-api/internal/model"
)

type metaRepository struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

func (r *metaRepository) ListResorts(ctx context.Context) ([]model.Resort, error) {
	q := r.sb.Select("id", "country_id", "name_ru").
		From("resort").
		OrderBy("name_ru")

	var resorts []model.Resort
	if err := selectx(ctx, r.db, &resorts, q); err != nil {
		return nil, err
	}
	return resorts, nil
}

func (r *metaRepository) ListActiveDepartureCities(ctx context.Context) ([]model.DepartureCity, error) {
	q := r.sb.Select("id", "name_ru", "is_active").
		From("departure_city").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name_ru")

	var cities []model.DepartureCity
	if err := selectx(ctx, r.db, &cities, q); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *metaRepository) ListMealPlans(ctx context.Context) ([]model.MealPlan, error) {
	q := r.sb.Select("id", "code", "name_ru").
		From("meal_plan").
		OrderBy("code")

	var plans []model.MealPlan
	if err := selectx(ctx, r.db, &plans, q); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *metaRepository) ListCurrencies(ctx context.Context) ([]model.Currency, error) {
	q := r.sb.Select("code", "name_ru", "symbol").
		From("currency").
		OrderBy("code")

	var currencies []model.Currency
	if err := selectx(ctx, r.db, &currencies, q); err != nil {
		return nil, err
	}
	return currencies, nil
}

func (r *metaRepository) UpsertCurrency(ctx context.Context, c model.Currency) error {
	q := r.sb.Insert("currency").
		Columns("code", "name_ru", "symbol").
		Values(c.Code, c.NameRu, c.Symbol).
		Suffix(`ON CONFLICT (code) DO UPDATE SET
			name_ru = excluded.name_ru,
			symbol = excluded.symbol`)

	_, err := execx(ctx, r.db, q)
	return err
}

func (r *metaRepository) UpsertMealPlan(ctx context.Context, m model.MealPlan) error {
	q := r.sb.Insert("meal_plan").
		Columns("code", "name_ru").
		Values(m.Code, m.NameRu).
		Suffix(`ON CONFLICT (code) DO UPDATE SET
			name_ru = excluded.name_ru`)

	_, err := execx(ctx, r.db, q)
	return err
}

func (r *metaRepository) UpsertDepartureCity(ctx context.Context, d model.DepartureCity) error {
	q := r.sb.Insert("departure_city").
		Columns("name_ru", "is_active").
		Values(d.NameRu, d.IsActive).
		Suffix(`ON CONFLICT (name_ru) DO UPDATE SET
			is_active = excluded.is_active`)

	_, err := execx(ctx, r.db, q)
	return err
}
