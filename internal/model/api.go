package model

// ErrorResponse is the JSON body returned for any failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// LoginRequest is the admin login payload
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued session token
type LoginResponse struct {
	Token string `json:"token"`
}

// CountryUpsertRequest creates or refreshes a country keyed by ISO code
type CountryUpsertRequest struct {
	NameRu          string  `json:"name_ru" validate:"required"`
	NameEn          string  `json:"name_en" validate:"required"`
	IsoCode         string  `json:"iso_code" validate:"required,len=2,alpha"`
	Lat             float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng             float64 `json:"lng" validate:"gte=-180,lte=180"`
	FlagURL         *string `json:"flag_url"`
	IsPopular       bool    `json:"is_popular"`
	PopularityScore int     `json:"popularity_score" validate:"gte=0"`
}

// TourUpsertRequest creates or refreshes a tour keyed by (title, country)
type TourUpsertRequest struct {
	Title     string  `json:"title" validate:"required"`
	ShortDesc *string `json:"short_desc"`
	CountryID int     `json:"country_id" validate:"required,gt=0"`
	ImageURL  *string `json:"image_url"`
	IsHot     bool    `json:"is_hot"`
}

// HotelUpsertRequest creates or refreshes a hotel keyed by (country, name)
type HotelUpsertRequest struct {
	CountryID   int      `json:"country_id" validate:"required,gt=0"`
	ResortID    *int     `json:"resort_id" validate:"omitempty,gt=0"`
	Name        string   `json:"name" validate:"required"`
	Stars       *int     `json:"stars" validate:"omitempty,gte=1,lte=5"`
	Address     *string  `json:"address"`
	Lat         *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng         *float64 `json:"lng" validate:"omitempty,gte=-180,lte=180"`
	Description *string  `json:"description"`
}

// HotelImageCreateRequest attaches an image to a hotel; re-submitting the
// same URL updates its sort order instead of duplicating the row
type HotelImageCreateRequest struct {
	URL       string `json:"url" validate:"required"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

// OfferUpsertRequest creates or refreshes an offer keyed by
// (hotel, departure city, start date). Flight inclusion and availability
// default to true when omitted.
type OfferUpsertRequest struct {
	TourID          *int    `json:"tour_id" validate:"omitempty,gt=0"`
	HotelID         int     `json:"hotel_id" validate:"required,gt=0"`
	DepartureCityID int     `json:"departure_city_id" validate:"required,gt=0"`
	StartDate       string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	Nights          int     `json:"nights" validate:"required,gt=0"`
	MealPlanID      *int    `json:"meal_plan_id" validate:"omitempty,gt=0"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	CurrencyCode    string  `json:"currency_code" validate:"omitempty,len=3"`
	IncludesFlight  *bool   `json:"includes_flight"`
	IsAvailable     *bool   `json:"is_available"`
	AvailableSeats  *int    `json:"available_seats" validate:"omitempty,gte=0"`
}

// OfferPatchRequest updates a subset of an offer's mutable fields.
// Only fields present in the body are touched; AvailableSeats distinguishes
// an omitted field from an explicit null.
type OfferPatchRequest struct {
	Price          *float64    `json:"price" validate:"omitempty,gt=0"`
	IsAvailable    *bool       `json:"is_available"`
	AvailableSeats OptionalInt `json:"available_seats"`
}

// Empty reports whether the patch carries no fields at all
func (r OfferPatchRequest) Empty() bool {
	return r.Price == nil && r.IsAvailable == nil && !r.AvailableSeats.Set
}

// OptionsRequest holds typeahead query parameters for tours and hotels
type OptionsRequest struct {
	CountryID *int
	Query     string
	Limit     int
}

// MetaResponse bundles the reference lists used by console pickers
type MetaResponse struct {
	Countries       []CountryRef    `json:"countries"`
	Resorts         []Resort        `json:"resorts"`
	DepartureCities []DepartureCity `json:"departureCities"`
	MealPlans       []MealPlan      `json:"mealPlans"`
	Currencies      []Currency      `json:"currencies"`
}
