package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/oriontour/admin-api/internal/config"
	"github.com/oriontour/admin-api/internal/database"
	"github.com/oriontour/admin-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRepos spins up a fresh in-memory database with the full schema
func setupRepos(t *testing.T) *Container {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	dbName := fmt.Sprintf("testdb_%d", rng.Int())

	cfg := config.DBConfig{
		Type: config.DBTypeMemory,
		Name: dbName,
	}

	db, err := database.Connect(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	require.NoError(t, err)

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations/sqlite",
		"sqlite3",
		driver,
	)
	require.NoError(t, err)
	err = m.Up()
	require.NoError(t, err)

	return NewRepositories(db, config.DBTypeMemory)
}

func seedBase(t *testing.T, repos *Container) (model.Country, model.Hotel, model.DepartureCity) {
	ctx := context.Background()

	country, err := repos.Country.Upsert(ctx, model.Country{
		NameRu: "Турция", NameEn: "Turkey", IsoCode: "TR", Lat: 39.0, Lng: 35.0,
	})
	require.NoError(t, err)

	stars := 5
	hotel, err := repos.Hotel.Upsert(ctx, model.Hotel{
		CountryID: country.ID, Name: "Lagoon Resort", Stars: &stars,
	})
	require.NoError(t, err)

	err = repos.Meta.UpsertDepartureCity(ctx, model.DepartureCity{NameRu: "Москва", IsActive: true})
	require.NoError(t, err)
	cities, err := repos.Meta.ListActiveDepartureCities(ctx)
	require.NoError(t, err)
	require.Len(t, cities, 1)

	return *country, *hotel, cities[0]
}

func mustDate(t *testing.T, s string) model.Date {
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestCountryRepository_UpsertByIsoCode(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	first, err := repos.Country.Upsert(ctx, model.Country{
		NameRu: "Греция", NameEn: "Greece", IsoCode: "GR", Lat: 39.0, Lng: 22.0,
	})
	require.NoError(t, err)

	second, err := repos.Country.Upsert(ctx, model.Country{
		NameRu: "Эллада", NameEn: "Hellas", IsoCode: "GR", Lat: 39.1, Lng: 22.1,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Hellas", second.NameEn)

	markers, err := repos.Country.ListMarkers(ctx)
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, 0, markers[0].ToursCount)
	assert.Equal(t, 0.0, markers[0].PriceFrom)
}

func TestCountryRepository_UpdateMissing(t *testing.T) {
	repos := setupRepos(t)

	country, err := repos.Country.Update(context.Background(), 12345, model.Country{
		NameRu: "Нигде", NameEn: "Nowhere", IsoCode: "XX",
	})
	require.NoError(t, err)
	assert.Nil(t, country)
}

func TestTourRepository_ListAggregates(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	country, hotel, city := seedBase(t, repos)

	tour, err := repos.Tour.Upsert(ctx, model.Tour{Title: "Лазурный берег", CountryID: country.ID})
	require.NoError(t, err)

	_, err = repos.Offer.Upsert(ctx, model.Offer{
		TourID: &tour.ID, HotelID: hotel.ID, DepartureCityID: city.ID,
		StartDate: mustDate(t, "2026-07-01"), Nights: 7, Price: 100,
		CurrencyCode: "EUR", IncludesFlight: true, IsAvailable: true,
	})
	require.NoError(t, err)

	_, err = repos.Offer.Upsert(ctx, model.Offer{
		TourID: &tour.ID, HotelID: hotel.ID, DepartureCityID: city.ID,
		StartDate: mustDate(t, "2026-07-08"), Nights: 7, Price: 10,
		CurrencyCode: "EUR", IncludesFlight: true, IsAvailable: false,
	})
	require.NoError(t, err)

	tours, err := repos.Tour.List(ctx)
	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, 100.0, tours[0].PriceFrom)
	assert.Equal(t, 1, tours[0].OffersCount)
	assert.Equal(t, "Турция", tours[0].CountryName)
}

func TestTourRepository_ListWithoutOffers(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	country, _, _ := seedBase(t, repos)

	_, err := repos.Tour.Upsert(ctx, model.Tour{Title: "Пустой тур", CountryID: country.ID})
	require.NoError(t, err)

	tours, err := repos.Tour.List(ctx)
	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, 0.0, tours[0].PriceFrom)
	assert.Equal(t, 0.0, tours[0].RatingAvg)
	assert.Equal(t, 0, tours[0].OffersCount)
}

func TestTourRepository_Options(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	country, _, _ := seedBase(t, repos)

	titles := []string{"Villa Sunrise", "Villa Marina", "City Lights"}
	for _, title := range titles {
		_, err := repos.Tour.Upsert(ctx, model.Tour{Title: title, CountryID: country.ID})
		require.NoError(t, err)
	}

	options, err := repos.Tour.Options(ctx, model.OptionsRequest{Query: "villa", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, options, 2)

	options, err = repos.Tour.Options(ctx, model.OptionsRequest{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, options, 1)

	other := country.ID + 100
	options, err = repos.Tour.Options(ctx, model.OptionsRequest{CountryID: &other, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestOfferRepository_UpsertConflict(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	_, hotel, city := seedBase(t, repos)

	seats := 20
	first, err := repos.Offer.Upsert(ctx, model.Offer{
		HotelID: hotel.ID, DepartureCityID: city.ID,
		StartDate: mustDate(t, "2026-09-10"), Nights: 10, Price: 750,
		CurrencyCode: "EUR", IncludesFlight: true, IsAvailable: true,
		AvailableSeats: &seats, HotelStarsCached: hotel.Stars,
	})
	require.NoError(t, err)

	second, err := repos.Offer.Upsert(ctx, model.Offer{
		HotelID: hotel.ID, DepartureCityID: city.ID,
		StartDate: mustDate(t, "2026-09-10"), Nights: 14, Price: 690,
		CurrencyCode: "USD", IncludesFlight: false, IsAvailable: true,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 690.0, second.Price)
	assert.Equal(t, 14, second.Nights)
	assert.Equal(t, "USD", second.CurrencyCode)
	assert.False(t, second.IncludesFlight)
	assert.Nil(t, second.AvailableSeats)
}

func TestOfferRepository_Patch(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	_, hotel, city := seedBase(t, repos)

	seats := 12
	offer, err := repos.Offer.Upsert(ctx, model.Offer{
		HotelID: hotel.ID, DepartureCityID: city.ID,
		StartDate: mustDate(t, "2026-09-10"), Nights: 10, Price: 750,
		CurrencyCode: "EUR", IncludesFlight: true, IsAvailable: true,
		AvailableSeats: &seats,
	})
	require.NoError(t, err)

	// Price only; seats stay untouched
	price := 640.0
	patched, err := repos.Offer.Patch(ctx, offer.ID, model.OfferPatchRequest{Price: &price})
	require.NoError(t, err)
	require.NotNil(t, patched)
	assert.Equal(t, 640.0, patched.Price)
	require.NotNil(t, patched.AvailableSeats)
	assert.Equal(t, 12, *patched.AvailableSeats)

	// Explicit null clears the seat count
	patched, err = repos.Offer.Patch(ctx, offer.ID, model.OfferPatchRequest{
		AvailableSeats: model.OptionalInt{Set: true},
	})
	require.NoError(t, err)
	require.NotNil(t, patched)
	assert.Nil(t, patched.AvailableSeats)
	assert.Equal(t, 640.0, patched.Price)

	// Unknown id reports no row
	patched, err = repos.Offer.Patch(ctx, 99999, model.OfferPatchRequest{Price: &price})
	require.NoError(t, err)
	assert.Nil(t, patched)
}

func TestHotelRepository_DeleteCascadesOffers(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	_, hotel, city := seedBase(t, repos)

	_, err := repos.Offer.Upsert(ctx, model.Offer{
		HotelID: hotel.ID, DepartureCityID: city.ID,
		StartDate: mustDate(t, "2026-08-01"), Nights: 7, Price: 300,
		CurrencyCode: "EUR", IncludesFlight: true, IsAvailable: true,
	})
	require.NoError(t, err)

	deleted, err := repos.Hotel.Delete(ctx, hotel.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	offers, err := repos.Offer.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestHotelRepository_ImageUpsert(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	_, hotel, _ := seedBase(t, repos)

	first, err := repos.Hotel.UpsertImage(ctx, model.HotelImage{
		HotelID: hotel.ID, URL: "https://img.example/1.jpg", SortOrder: 2,
	})
	require.NoError(t, err)

	second, err := repos.Hotel.UpsertImage(ctx, model.HotelImage{
		HotelID: hotel.ID, URL: "https://img.example/1.jpg", SortOrder: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 0, second.SortOrder)

	images, err := repos.Hotel.ListImages(ctx, hotel.ID)
	require.NoError(t, err)
	require.Len(t, images, 1)
}

func TestMetaRepository_Lookups(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Meta.UpsertCurrency(ctx, model.Currency{Code: "EUR", NameRu: "Евро", Symbol: "€"}))
	require.NoError(t, repos.Meta.UpsertCurrency(ctx, model.Currency{Code: "EUR", NameRu: "Евро (обновлено)", Symbol: "€"}))

	currencies, err := repos.Meta.ListCurrencies(ctx)
	require.NoError(t, err)
	require.Len(t, currencies, 1)
	assert.Equal(t, "Евро (обновлено)", currencies[0].NameRu)

	require.NoError(t, repos.Meta.UpsertDepartureCity(ctx, model.DepartureCity{NameRu: "Пермь", IsActive: false}))
	cities, err := repos.Meta.ListActiveDepartureCities(ctx)
	require.NoError(t, err)
	assert.Empty(t, cities)

	empty, err := IsCatalogEmpty(ctx, repos.Meta.(*metaRepository).db)
	require.NoError(t, err)
	assert.False(t, empty)
}
