package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/oriontour/admin-api/internal/model"
)

var offerColumns = []string{
	"id", "tour_id", "hotel_id", "departure_city_id", "start_date", "nights",
	"meal_plan_id", "price", "currency_code", "includes_flight",
	"is_available", "available_seats", "hotel_stars_cached",
}

type offerRepository struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

func (r *offerRepository) List(ctx context.Context) ([]model.OfferListItem, error) {
	cols := make([]string, 0, len(offerColumns)+4)
	for _, c := range offerColumns {
		cols = append(cols, "o."+c)
	}
	cols = append(cols,
		"t.title AS tour_title",
		"h.name AS hotel_name",
		"dc.name_ru AS departure_city_name",
		"mp.code AS meal_plan_code")

	q := r.sb.Select(cols...).
		From("tour_offer o").
		Join("hotel h ON h.id = o.hotel_id").
		Join("departure_city dc ON dc.id = o.departure_city_id").
		LeftJoin("meal_plan mp ON mp.id = o.meal_plan_id").
		LeftJoin("tour t ON t.id = o.tour_id").
		OrderBy("o.start_date DESC", "o.id DESC")

	var offers []model.OfferListItem
	if err := selectx(ctx, r.db, &offers, q); err != nil {
		return nil, err
	}
	return offers, nil
}

// Upsert resolves conflicts on uq_offer_key (hotel, departure city, start
// date) and overwrites every non-key field, including the cached hotel
// stars which the caller has already refreshed.
func (r *offerRepository) Upsert(ctx context.Context, o model.Offer) (*model.Offer, error) {
	q := r.sb.Insert("tour_offer").
		Columns("tour_id", "hotel_id", "departure_city_id", "start_date",
			"nights", "meal_plan_id", "price", "currency_code",
			"includes_flight", "is_available", "available_seats",
			"hotel_stars_cached").
		Values(o.TourID, o.HotelID, o.DepartureCityID, o.StartDate,
			o.Nights, o.MealPlanID, o.Price, o.CurrencyCode,
			o.IncludesFlight, o.IsAvailable, o.AvailableSeats,
			o.HotelStarsCached).
		Suffix(`ON CONFLICT (hotel_id, departure_city_id, start_date) DO UPDATE SET
			tour_id = excluded.tour_id,
			nights = excluded.nights,
			meal_plan_id = excluded.meal_plan_id,
			price = excluded.price,
			currency_code = excluded.currency_code,
			includes_flight = excluded.includes_flight,
			is_available = excluded.is_available,
			available_seats = excluded.available_seats,
			hotel_stars_cached = excluded.hotel_stars_cached
		RETURNING ` + strings.Join(offerColumns, ", "))

	var out model.Offer
	if err := getx(ctx, r.db, &out, q); err != nil {
		return nil, err
	}
	return &out, nil
}

// Patch updates only the fields present in the request. The caller is
// responsible for rejecting an empty patch.
func (r *offerRepository) Patch(ctx context.Context, id int, p model.OfferPatchRequest) (*model.Offer, error) {
	q := r.sb.Update("tour_offer").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(offerColumns, ", "))

	if p.Price != nil {
		q = q.Set("price", *p.Price)
	}
	if p.IsAvailable != nil {
		q = q.Set("is_available", *p.IsAvailable)
	}
	if p.AvailableSeats.Set {
		if p.AvailableSeats.Valid {
			q = q.Set("available_seats", p.AvailableSeats.Value)
		} else {
			q = q.Set("available_seats", nil)
		}
	}

	var out model.Offer
	if err := getx(ctx, r.db, &out, q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *offerRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := execx(ctx, r.db, r.sb.Delete("tour_offer").Where(sq.Eq{"id": id}))
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
