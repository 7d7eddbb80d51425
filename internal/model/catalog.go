package model

import "time"

// Country represents a destination country in the catalog
type Country struct {
	ID              int     `db:"id" json:"id"`
	NameRu          string  `db:"name_ru" json:"name_ru"`
	NameEn          string  `db:"name_en" json:"name_en"`
	IsoCode         string  `db:"iso_code" json:"iso_code"`
	Lat             float64 `db:"lat" json:"lat"`
	Lng             float64 `db:"lng" json:"lng"`
	FlagURL         *string `db:"flag_url" json:"flag_url"`
	IsPopular       bool    `db:"is_popular" json:"is_popular"`
	PopularityScore int     `db:"popularity_score" json:"popularity_score"`
}

// GlobeMarker is a country row from the globe_markers view,
// pre-aggregated with inventory counts and the price floor
type GlobeMarker struct {
	Country
	ToursCount  int     `db:"tours_count" json:"tours_count"`
	HotelsCount int     `db:"hotels_count" json:"hotels_count"`
	PriceFrom   float64 `db:"price_from" json:"price_from"`
}

// Tour represents a tour in the catalog
type Tour struct {
	ID        int     `db:"id" json:"id"`
	Title     string  `db:"title" json:"title"`
	ShortDesc *string `db:"short_desc" json:"short_desc"`
	CountryID int     `db:"country_id" json:"country_id"`
	ImageURL  *string `db:"image_url" json:"image_url"`
	IsHot     bool    `db:"is_hot" json:"is_hot"`
}

// TourListItem is a tour with read-time aggregates over its available offers
type TourListItem struct {
	Tour
	CountryName string  `db:"country_name" json:"country_name"`
	PriceFrom   float64 `db:"price_from" json:"price_from"`
	RatingAvg   float64 `db:"rating_avg" json:"rating_avg"`
	OffersCount int     `db:"offers_count" json:"offers_count"`
}

// TourOption is a lightweight tour row for selection pickers
type TourOption struct {
	ID        int    `db:"id" json:"id"`
	Title     string `db:"title" json:"title"`
	CountryID int    `db:"country_id" json:"country_id"`
}

// Hotel represents a hotel in the catalog
type Hotel struct {
	ID          int      `db:"id" json:"id"`
	CountryID   int      `db:"country_id" json:"country_id"`
	ResortID    *int     `db:"resort_id" json:"resort_id"`
	Name        string   `db:"name" json:"name"`
	Stars       *int     `db:"stars" json:"stars"`
	Address     *string  `db:"address" json:"address"`
	Lat         *float64 `db:"lat" json:"lat"`
	Lng         *float64 `db:"lng" json:"lng"`
	Description *string  `db:"description" json:"description"`
}

// HotelListItem is a hotel joined with its hotel_listing view row
type HotelListItem struct {
	Hotel
	CountryName     string  `db:"country_name" json:"country_name"`
	ResortName      *string `db:"resort_name" json:"resort_name"`
	PriceFrom       float64 `db:"price_from" json:"price_from"`
	PreviewImageURL *string `db:"preview_image_url" json:"preview_image_url"`
	RatingAvg       float64 `db:"rating_avg" json:"rating_avg"`
	ReviewsCount    int     `db:"reviews_count" json:"reviews_count"`
	OffersCount     int     `db:"offers_count" json:"offers_count"`
}

// HotelOption is a lightweight hotel row for selection pickers
type HotelOption struct {
	ID        int    `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CountryID int    `db:"country_id" json:"country_id"`
	ResortID  *int   `db:"resort_id" json:"resort_id"`
	Stars     *int   `db:"stars" json:"stars"`
}

// HotelImage represents an image attached to a hotel
type HotelImage struct {
	ID        int       `db:"id" json:"id"`
	HotelID   int       `db:"hotel_id" json:"hotel_id"`
	URL       string    `db:"url" json:"url"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Offer represents a priced, dated bookable combination of hotel,
// departure city and optionally tour and meal plan.
// HotelStarsCached is a denormalized copy of the hotel's star rating,
// refreshed on every offer upsert.
type Offer struct {
	ID               int     `db:"id" json:"id"`
	TourID           *int    `db:"tour_id" json:"tour_id"`
	HotelID          int     `db:"hotel_id" json:"hotel_id"`
	DepartureCityID  int     `db:"departure_city_id" json:"departure_city_id"`
	StartDate        Date    `db:"start_date" json:"start_date"`
	Nights           int     `db:"nights" json:"nights"`
	MealPlanID       *int    `db:"meal_plan_id" json:"meal_plan_id"`
	Price            float64 `db:"price" json:"price"`
	CurrencyCode     string  `db:"currency_code" json:"currency_code"`
	IncludesFlight   bool    `db:"includes_flight" json:"includes_flight"`
	IsAvailable      bool    `db:"is_available" json:"is_available"`
	AvailableSeats   *int    `db:"available_seats" json:"available_seats"`
	HotelStarsCached *int    `db:"hotel_stars_cached" json:"hotel_stars_cached"`
}

// OfferListItem is an offer with its related labels resolved for the console
type OfferListItem struct {
	Offer
	TourTitle         *string `db:"tour_title" json:"tour_title"`
	HotelName         string  `db:"hotel_name" json:"hotel_name"`
	DepartureCityName string  `db:"departure_city_name" json:"departure_city_name"`
	MealPlanCode      *string `db:"meal_plan_code" json:"meal_plan_code"`
}

// Resort is a lookup entity grouping hotels within a country
type Resort struct {
	ID        int    `db:"id" json:"id"`
	CountryID int    `db:"country_id" json:"country_id"`
	NameRu    string `db:"name_ru" json:"name_ru"`
}

// DepartureCity is a lookup entity; inactive cities are hidden from pickers
type DepartureCity struct {
	ID       int    `db:"id" json:"id"`
	NameRu   string `db:"name_ru" json:"name_ru"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

// MealPlan is a lookup entity (BB, HB, AI and so on)
type MealPlan struct {
	ID     int    `db:"id" json:"id"`
	Code   string `db:"code" json:"code"`
	NameRu string `db:"name_ru" json:"name_ru"`
}

// Currency is a lookup entity keyed by ISO 4217 code
type Currency struct {
	Code   string `db:"code" json:"code"`
	NameRu string `db:"name_ru" json:"name_ru"`
	Symbol string `db:"symbol" json:"symbol"`
}

// CountryRef is a short country row for the meta bundle
type CountryRef struct {
	ID      int    `db:"id" json:"id"`
	NameRu  string `db:"name_ru" json:"name_ru"`
	IsoCode string `db:"iso_code" json:"iso_code"`
}
