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

var (
	hotelColumns = []string{
		"id", "country_id", "resort_id", "name", "stars",
		"address", "lat", "lng", "description",
	}
	hotelImageColumns = []string{"id", "hotel_id", "url", "sort_order", "created_at"}
)

type hotelRepository struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

func (r *hotelRepository) List(ctx context.Context) ([]model.HotelListItem, error) {
	q := r.sb.Select(
		"h.id", "h.country_id", "h.resort_id", "h.name", "h.stars",
		"h.address", "h.lat", "h.lng", "h.description",
		"c.name_ru AS country_name",
		"rs.name_ru AS resort_name",
		"COALESCE(hl.price_from, 0) AS price_from",
		"hl.preview_image_url",
		"COALESCE(hl.rating_avg, 0) AS rating_avg",
		"COALESCE(hl.reviews_count, 0) AS reviews_count",
		"COALESCE(hl.offers_count, 0) AS offers_count").
		From("hotel h").
		Join("country c ON c.id = h.country_id").
		LeftJoin("resort rs ON rs.id = h.resort_id").
		LeftJoin("hotel_listing hl ON hl.hotel_id = h.id").
		OrderBy("h.id DESC")

	var hotels []model.HotelListItem
	if err := selectx(ctx, r.db, &hotels, q); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) Options(ctx context.Context, opts model.OptionsRequest) ([]model.HotelOption, error) {
	q := r.sb.Select("id", "name", "country_id", "resort_id", "stars").
		From("hotel").
		OrderBy("id DESC").
		Limit(uint64(opts.Limit))

	if opts.CountryID != nil {
		q = q.Where(sq.Eq{"country_id": *opts.CountryID})
	}
	if opts.Query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(opts.Query)+"%")
	}

	var options []model.HotelOption
	if err := selectx(ctx, r.db, &options, q); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *hotelRepository) GetByID(ctx context.Context, id int) (*model.Hotel, error) {
	q := r.sb.Select(hotelColumns...).
		From("hotel").
		Where(sq.Eq{"id": id})

	var hotel model.Hotel
	if err := getx(ctx, r.db, &hotel, q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) Upsert(ctx context.Context, h model.Hotel) (*model.Hotel, error) {
	q := r.sb.Insert("hotel").
		Columns("country_id", "resort_id", "name", "stars",
			"address", "lat", "lng", "description").
		Values(h.CountryID, h.ResortID, h.Name, h.Stars,
			h.Address, h.Lat, h.Lng, h.Description).
		Suffix(`ON CONFLICT (country_id, name) DO UPDATE SET
			resort_id = excluded.resort_id,
			stars = excluded.stars,
			address = excluded.address,
			lat = excluded.lat,
			lng = excluded.lng,
			description = excluded.description
		RETURNING ` + strings.Join(hotelColumns, ", "))

	var out model.Hotel
	if err := getx(ctx, r.db, &out, q); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *hotelRepository) Update(ctx context.Context, id int, h model.Hotel) (*model.Hotel, error) {
	q := r.sb.Update("hotel").
		Set("country_id", h.CountryID).
		Set("resort_id", h.ResortID).
		Set("name", h.Name).
		Set("stars", h.Stars).
		Set("address", h.Address).
		Set("lat", h.Lat).
		Set("lng", h.Lng).
		Set("description", h.Description).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(hotelColumns, ", "))

	var out model.Hotel
	if err := getx(ctx, r.db, &out, q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *hotelRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := execx(ctx, r.db, r.sb.Delete("hotel").Where(sq.Eq{"id": id}))
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *hotelRepository) ListImages(ctx context.Context, hotelID int) ([]model.HotelImage, error) {
	q := r.sb.Select(hotelImageColumns...).
		From("hotel_image").
		Where(sq.Eq{"hotel_id": hotelID}).
		OrderBy("sort_order", "id")

	var images []model.HotelImage
	if err := selectx(ctx, r.db, &images, q); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *hotelRepository) UpsertImage(ctx context.Context, img model.HotelImage) (*model.HotelImage, error) {
	q := r.sb.Insert("hotel_image").
		Columns("hotel_id", "url", "sort_order").
		Values(img.HotelID, img.URL, img.SortOrder).
		Suffix(`ON CONFLICT (hotel_id, url) DO UPDATE SET
			sort_order = excluded.sort_order
		RETURNING ` + strings.Join(hotelImageColumns, ", "))

	var out model.HotelImage
	if err := getx(ctx, r.db, &out, q); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *hotelRepository) DeleteImage(ctx context.Context, imageID int) (bool, error) {
	res, err := execx(ctx, r.db, r.sb.Delete("hotel_image").Where(sq.Eq{"id": imageID}))
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
