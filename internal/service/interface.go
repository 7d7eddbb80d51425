package service

import (
	"context"

	"github.com/oriontour/admin-api/internal/model"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	ListCountries(ctx context.Context) ([]model.GlobeMarker, error)
	UpsertCountry(ctx context.Context, req model.CountryUpsertRequest) (*model.Country, error)
	UpdateCountry(ctx context.Context, id int, req model.CountryUpsertRequest) (*model.Country, error)
	DeleteCountry(ctx context.Context, id int) error

	ListTours(ctx context.Context) ([]model.TourListItem, error)
	TourOptions(ctx context.Context, opts model.OptionsRequest) ([]model.TourOption, error)
	UpsertTour(ctx context.Context, req model.TourUpsertRequest) (*model.Tour, error)
	UpdateTour(ctx context.Context, id int, req model.TourUpsertRequest) (*model.Tour, error)
	DeleteTour(ctx context.Context, id int) error

	ListHotels(ctx context.Context) ([]model.HotelListItem, error)
	HotelOptions(ctx context.Context, opts model.OptionsRequest) ([]model.HotelOption, error)
	UpsertHotel(ctx context.Context, req model.HotelUpsertRequest) (*model.Hotel, error)
	UpdateHotel(ctx context.Context, id int, req model.HotelUpsertRequest) (*model.Hotel, error)
	DeleteHotel(ctx context.Context, id int) error
	ListHotelImages(ctx context.Context, hotelID int) ([]model.HotelImage, error)
	AddHotelImage(ctx context.Context, hotelID int, req model.HotelImageCreateRequest) (*model.HotelImage, error)
	DeleteHotelImage(ctx context.Context, imageID int) error

	ListOffers(ctx context.Context) ([]model.OfferListItem, error)
	UpsertOffer(ctx context.Context, req model.OfferUpsertRequest) (*model.Offer, error)
	PatchOffer(ctx context.Context, id int, req model.OfferPatchRequest) (*model.Offer, error)
	DeleteOffer(ctx context.Context, id int) error

	GetMeta(ctx context.Context) (*model.MetaResponse, error)
}
