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

var tourColumns = []string{"id", "title", "short_desc", "country_id", "image_url", "is_hot"}

type tourRepository struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

// List returns every tour with availability-filtered aggregates. Filtering
// happens inside the aggregates, not in the join, so tours whose offers are
// all unavailable still show up with zeroed price and rating.
func (r *tourRepository) List(ctx context.Context) ([]model.TourListItem, error) {
	q := r.sb.Select(
		"t.id", "t.title", "t.short_desc", "t.country_id", "t.image_url", "t.is_hot",
		"c.name_ru AS country_name",
		"COALESCE(MIN(o.price) FILTER (WHERE o.is_available = TRUE), 0) AS price_from",
		"COALESCE(ROUND(CAST(AVG(hl.rating_avg) FILTER (WHERE o.is_available = TRUE) AS NUMERIC), 1), 0) AS rating_avg",
		"COUNT(o.id) FILTER (WHERE o.is_available = TRUE) AS offers_count").
		From("tour t").
		Join("country c ON c.id = t.country_id").
		LeftJoin("tour_offer o ON o.tour_id = t.id").
		LeftJoin("hotel_listing hl ON hl.hotel_id = o.hotel_id").
		GroupBy("t.id", "t.title", "t.short_desc", "t.country_id", "t.image_url", "t.is_hot", "c.name_ru").
		OrderBy("t.id DESC")

	var tours []model.TourListItem
	if err := selectx(ctx, r.db, &tours, q); err != nil {
		return nil, err
	}
	return tours, nil
}

func (r *tourRepository) Options(ctx context.Context, opts model.OptionsRequest) ([]model.TourOption, error) {
	q := r.sb.Select("id", "title", "country_id").
		From("tour").
		OrderBy("id DESC").
		Limit(uint64(opts.Limit))

	if opts.CountryID != nil {
		q = q.Where(sq.Eq{"country_id": *opts.CountryID})
	}
	if opts.Query != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(opts.Query)+"%")
	}

	var options []model.TourOption
	if err := selectx(ctx, r.db, &options, q); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *tourRepository) Upsert(ctx context.Context, t model.Tour) (*model.Tour, error) {
	q := r.sb.Insert("tour").
		Columns("title", "short_desc", "country_id", "image_url", "is_hot").
		Values(t.Title, t.ShortDesc, t.CountryID, t.ImageURL, t.IsHot).
		Suffix(`ON CONFLICT (title, country_id) DO UPDATE SET
			short_desc = excluded.short_desc,
			image_url = excluded.image_url,
			is_hot = excluded.is_hot
		RETURNING ` + strings.Join(tourColumns, ", "))

	var out model.Tour
	if err := getx(ctx, r.db, &out, q); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *tourRepository) Update(ctx context.Context, id int, t model.Tour) (*model.Tour, error) {
	q := r.sb.Update("tour").
		Set("title", t.Title).
		Set("short_desc", t.ShortDesc).
		Set("country_id", t.CountryID).
		Set("image_url", t.ImageURL).
		Set("is_hot", t.IsHot).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(tourColumns, ", "))

	var out model.Tour
	if err := getx(ctx, r.db, &out, q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *tourRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := execx(ctx, r.db, r.sb.Delete("tour").Where(sq.Eq{"id": id}))
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
