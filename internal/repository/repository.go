package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/oriontour/admin-api/internal/config"
	"github.com/oriontour/admin-api/internal/model"
)

// CountryRepository defines operations for countries
type CountryRepository interface {
	ListMarkers(ctx context.Context) ([]model.GlobeMarker, error)
	Upsert(ctx context.Context, c model.Country) (*model.Country, error)
	Update(ctx context.Context, id int, c model.Country) (*model.Country, error)
	Delete(ctx context.Context, id int) (bool, error)
	ListRefs(ctx context.Context) ([]model.CountryRef, error)
}

// TourRepository defines operations for tours
type TourRepository interface {
	List(ctx context.Context) ([]model.TourListItem, error)
	Options(ctx context.Context, opts model.OptionsRequest) ([]model.TourOption, error)
	Upsert(ctx context.Context, t model.Tour) (*model.Tour, error)
	Update(ctx context.Context, id int, t model.Tour) (*model.Tour, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// HotelRepository defines operations for hotels and their images
type HotelRepository interface {
	List(ctx context.Context) ([]model.HotelListItem, error)
	Options(ctx context.Context, opts model.OptionsRequest) ([]model.HotelOption, error)
	GetByID(ctx context.Context, id int) (*model.Hotel, error)
	Upsert(ctx context.Context, h model.Hotel) (*model.Hotel, error)
	Update(ctx context.Context, id int, h model.Hotel) (*model.Hotel, error)
	Delete(ctx context.Context, id int) (bool, error)
	ListImages(ctx context.Context, hotelID int) ([]model.HotelImage, error)
	UpsertImage(ctx context.Context, img model.HotelImage) (*model.HotelImage, error)
	DeleteImage(ctx context.Context, imageID int) (bool, error)
}

// OfferRepository defines operations for tour offers
type OfferRepository interface {
	List(ctx context.Context) ([]model.OfferListItem, error)
	Upsert(ctx context.Context, o model.Offer) (*model.Offer, error)
	Patch(ctx context.Context, id int, p model.OfferPatchRequest) (*model.Offer, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// MetaRepository defines operations for reference/lookup entities
type MetaRepository interface {
	ListResorts(ctx context.Context) ([]model.Resort, error)
	ListActiveDepartureCities(ctx context.Context) ([]model.DepartureCity, error)
	ListMealPlans(ctx context.Context) ([]model.MealPlan, error)
	ListCurrencies(ctx context.Context) ([]model.Currency, error)
	UpsertCurrency(ctx context.Context, c model.Currency) error
	UpsertMealPlan(ctx context.Context, m model.MealPlan) error
	UpsertDepartureCity(ctx context.Context, d model.DepartureCity) error
}

// Container holds all repositories
type Container struct {
	Country CountryRepository
	Tour    TourRepository
	Hotel   HotelRepository
	Offer   OfferRepository
	Meta    MetaRepository
}

// NewRepositories creates repository implementations over the given database.
// The same SQL runs on both engines; only the placeholder format differs.
func NewRepositories(db *sqlx.DB, dbType config.DBType) *Container {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	if dbType == config.DBTypePostgreSQL {
		sb = sb.PlaceholderFormat(squirrel.Dollar)
	}

	return &Container{
		Country: &countryRepository{db: db, sb: sb},
		Tour:    &tourRepository{db: db, sb: sb},
		Hotel:   &hotelRepository{db: db, sb: sb},
		Offer:   &offerRepository{db: db, sb: sb},
		Meta:    &metaRepository{db: db, sb: sb},
	}
}

// IsCatalogEmpty reports whether the reference tables have been seeded yet
func IsCatalogEmpty(ctx context.Context, db *sqlx.DB) (bool, error) {
	var count int
	err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM currency")
	if err != nil {
		// Simplify error handling for non-existent tables
		return true, nil
	}
	return count == 0, nil
}

func getx(ctx context.Context, db *sqlx.DB, dest interface{}, q squirrel.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return db.GetContext(ctx, dest, query, args...)
}

func selectx(ctx context.Context, db *sqlx.DB, dest interface{}, q squirrel.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return db.SelectContext(ctx, dest, query, args...)
}

func execx(ctx context.Context, db *sqlx.DB, q squirrel.Sqlizer) (sql.Result, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return db.ExecContext(ctx, query, args...)
}
