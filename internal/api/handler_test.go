package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/oriontour/admin-api/internal/auth"
	"github.com/oriontour/admin-api/internal/config"
	"github.com/oriontour/admin-api/internal/model"
	"github.com/oriontour/admin-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockService is a mock implementation of service.ServiceInterface
type MockService struct {
	mock.Mock
}

func (m *MockService) ListCountries(ctx context.Context) ([]model.GlobeMarker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GlobeMarker), args.Error(1)
}

func (m *MockService) UpsertCountry(ctx context.Context, req model.CountryUpsertRequest) (*model.Country, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Country), args.Error(1)
}

func (m *MockService) UpdateCountry(ctx context.Context, id int, req model.CountryUpsertRequest) (*model.Country, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Country), args.Error(1)
}

func (m *MockService) DeleteCountry(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) ListTours(ctx context.Context) ([]model.TourListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TourListItem), args.Error(1)
}

func (m *MockService) TourOptions(ctx context.Context, opts model.OptionsRequest) ([]model.TourOption, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TourOption), args.Error(1)
}

func (m *MockService) UpsertTour(ctx context.Context, req model.TourUpsertRequest) (*model.Tour, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tour), args.Error(1)
}

func (m *MockService) UpdateTour(ctx context.Context, id int, req model.TourUpsertRequest) (*model.Tour, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tour), args.Error(1)
}

func (m *MockService) DeleteTour(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) ListHotels(ctx context.Context) ([]model.HotelListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HotelListItem), args.Error(1)
}

func (m *MockService) HotelOptions(ctx context.Context, opts model.OptionsRequest) ([]model.HotelOption, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HotelOption), args.Error(1)
}

func (m *MockService) UpsertHotel(ctx context.Context, req model.HotelUpsertRequest) (*model.Hotel, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hotel), args.Error(1)
}

func (m *MockService) UpdateHotel(ctx context.Context, id int, req model.HotelUpsertRequest) (*model.Hotel, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hotel), args.Error(1)
}

func (m *MockService) DeleteHotel(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) ListHotelImages(ctx context.Context, hotelID int) ([]model.HotelImage, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HotelImage), args.Error(1)
}

func (m *MockService) AddHotelImage(ctx context.Context, hotelID int, req model.HotelImageCreateRequest) (*model.HotelImage, error) {
	args := m.Called(ctx, hotelID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HotelImage), args.Error(1)
}

func (m *MockService) DeleteHotelImage(ctx context.Context, imageID int) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

func (m *MockService) ListOffers(ctx context.Context) ([]model.OfferListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OfferListItem), args.Error(1)
}

func (m *MockService) UpsertOffer(ctx context.Context, req model.OfferUpsertRequest) (*model.Offer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Offer), args.Error(1)
}

func (m *MockService) PatchOffer(ctx context.Context, id int, req model.OfferPatchRequest) (*model.Offer, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Offer), args.Error(1)
}

func (m *MockService) DeleteOffer(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) GetMeta(ctx context.Context) (*model.MetaResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MetaResponse), args.Error(1)
}

func newTestHandler(mockService *MockService) *Handler {
	authManager := auth.NewManager(config.AdminConfig{
		Login:     "admin",
		Password:  "secret",
		JWTSecret: "test_signing_key",
		TokenTTL:  time.Hour,
	})
	return NewHandler(mockService, authManager, zap.NewNop())
}

func TestHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "successful login",
			body:           `{"login":"admin","password":"secret"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			body:           `{"login":"admin","password":"nope"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed body",
			body:           `{"login":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(new(MockService))

			req := httptest.NewRequest("POST", "/admin/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.Login(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, rr.Body.String(), "token")
			}
		})
	}
}

func TestHandler_UpsertCountry(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*MockService)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"name_ru":"Греция","name_en":"Greece","iso_code":"GR","lat":39.0,"lng":22.0}`,
			mockSetup: func(ms *MockService) {
				ms.On("UpsertCountry", mock.Anything, mock.MatchedBy(func(req model.CountryUpsertRequest) bool {
					return req.IsoCode == "GR"
				})).Return(&model.Country{ID: 1, IsoCode: "GR", NameEn: "Greece"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "validation error from service",
			body: `{"name_ru":"Греция","name_en":"Greece","iso_code":"GRC"}`,
			mockSetup: func(ms *MockService) {
				ms.On("UpsertCountry", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: iso_code", service.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{"name_ru":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			if tt.mockSetup != nil {
				tt.mockSetup(mockService)
			}
			handler := newTestHandler(mockService)

			req := httptest.NewRequest("POST", "/admin/countries", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.UpsertCountry(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestHandler_UpdateCountry_NotFound(t *testing.T) {
	mockService := new(MockService)
	mockService.On("UpdateCountry", mock.Anything, 77, mock.Anything).
		Return(nil, fmt.Errorf("%w: country 77", service.ErrNotFound))
	handler := newTestHandler(mockService)

	body := `{"name_ru":"Греция","name_en":"Greece","iso_code":"GR"}`
	req := httptest.NewRequest("PUT", "/admin/countries/77", bytes.NewBufferString(body))
	req = mux.SetURLVars(req, map[string]string{"id": "77"})
	rr := httptest.NewRecorder()
	handler.UpdateCountry(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_DeleteOffer(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockSetup      func(*MockService)
		expectedStatus int
	}{
		{
			name: "deleted",
			id:   "5",
			mockSetup: func(ms *MockService) {
				ms.On("DeleteOffer", mock.Anything, 5).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "missing offer",
			id:   "99",
			mockSetup: func(ms *MockService) {
				ms.On("DeleteOffer", mock.Anything, 99).
					Return(fmt.Errorf("%w: offer 99", service.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			id:             "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			if tt.mockSetup != nil {
				tt.mockSetup(mockService)
			}
			handler := newTestHandler(mockService)

			req := httptest.NewRequest("DELETE", "/admin/offers/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			rr := httptest.NewRecorder()
			handler.DeleteOffer(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestHandler_TourOptions(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockSetup      func(*MockService)
		expectedStatus int
	}{
		{
			name:  "with country filter",
			query: "country_id=3&q=вил&limit=5",
			mockSetup: func(ms *MockService) {
				ms.On("TourOptions", mock.Anything, mock.MatchedBy(func(opts model.OptionsRequest) bool {
					return opts.CountryID != nil && *opts.CountryID == 3 && opts.Query == "вил" && opts.Limit == 5
				})).Return([]model.TourOption{{ID: 1, Title: "Вилла у моря", CountryID: 3}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad country_id",
			query:          "country_id=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad limit",
			query:          "limit=-1",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			if tt.mockSetup != nil {
				tt.mockSetup(mockService)
			}
			handler := newTestHandler(mockService)

			req := httptest.NewRequest("GET", "/admin/tours/options?"+tt.query, nil)
			rr := httptest.NewRecorder()
			handler.TourOptions(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestHandler_PatchOffer(t *testing.T) {
	mockService := new(MockService)
	mockService.On("PatchOffer", mock.Anything, 4, mock.MatchedBy(func(req model.OfferPatchRequest) bool {
		return req.AvailableSeats.Set && !req.AvailableSeats.Valid
	})).Return(&model.Offer{ID: 4, HotelID: 1}, nil)
	handler := newTestHandler(mockService)

	req := httptest.NewRequest("PATCH", "/admin/offers/4", bytes.NewBufferString(`{"available_seats":null}`))
	req = mux.SetURLVars(req, map[string]string{"id": "4"})
	rr := httptest.NewRecorder()
	handler.PatchOffer(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockService.AssertExpectations(t)
}

func TestAuthMiddleware(t *testing.T) {
	handler := newTestHandler(new(MockService))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guarded := handler.AuthMiddleware(next)

	token, err := handler.auth.Login("admin", "secret")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin/offers", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			guarded.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
