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

var countryColumns = []string{
	"id", "name_ru", "name_en", "iso_code", "lat", "lng",
	"flag_url", "is_popular", "popularity_score",
}

type countryRepository struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

func (r *countryRepository) ListMarkers(ctx context.Context) ([]model.GlobeMarker, error) {
	cols := append(append([]string{}, countryColumns...),
		"tours_count", "hotels_count", "price_from")

	q := r.sb.Select(cols...).
		From("globe_markers").
		OrderBy("popularity_score DESC", "name_ru ASC")

	var markers []model.GlobeMarker
	if err := selectx(ctx, r.db, &markers, q); err != nil {
		return nil, err
	}
	return markers, nil
}

func (r *countryRepository) Upsert(ctx context.Context, c model.Country) (*model.Country, error) {
	q := r.sb.Insert("country").
		Columns("name_ru", "name_en", "iso_code", "lat", "lng",
			"flag_url", "is_popular", "popularity_score").
		Values(c.NameRu, c.NameEn, c.IsoCode, c.Lat, c.Lng,
			c.FlagURL, c.IsPopular, c.PopularityScore).
		Suffix(`ON CONFLICT (iso_code) DO UPDATE SET
			name_ru = excluded.name_ru,
			name_en = excluded.name_en,
			lat = excluded.lat,
			lng = excluded.lng,
			flag_url = excluded.flag_url,
			is_popular = excluded.is_popular,
			popularity_score = excluded.popularity_score
		RETURNING ` + strings.Join(countryColumns, ", "))

	var out model.Country
	if err := getx(ctx, r.db, &out, q); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *countryRepository) Update(ctx context.Context, id int, c model.Country) (*model.Country, error) {
	q := r.sb.Update("country").
		Set("name_ru", c.NameRu).
		Set("name_en", c.NameEn).
		Set("iso_code", c.IsoCode).
		Set("lat", c.Lat).
		Set("lng", c.Lng).
		Set("flag_url", c.FlagURL).
		Set("is_popular", c.IsPopular).
		Set("popularity_score", c.PopularityScore).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(countryColumns, ", "))

	var out model.Country
	if err := getx(ctx, r.db, &out, q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *countryRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := execx(ctx, r.db, r.sb.Delete("country").Where(sq.Eq{"id": id}))
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *countryRepository) ListRefs(ctx context.Context) ([]model.CountryRef, error) {
	q := r.sb.Select("id", "name_ru", "iso_code").
		From("country").
		OrderBy("name_ru")

	var refs []model.CountryRef
	if err := selectx(ctx, r.db, &refs, q); err != nil {
		return nil, err
	}
	return refs, nil
}
