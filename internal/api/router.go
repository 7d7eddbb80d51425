package api

import (
	"github.com/gorilla/mux"
	"github.com/oriontour/admin-api/internal/auth"
	"github.com/oriontour/admin-api/internal/service"
	"github.com/oriontour/admin-api/internal/stats"
	"go.uber.org/zap"
)

// NewRouter creates a new HTTP router. Everything under /admin except
// the login endpoint requires a valid session token.
func NewRouter(service service.ServiceInterface, authManager *auth.Manager, statsCollector *stats.Collector, logger *zap.Logger) *mux.Router {
	handler := NewHandler(service, authManager, logger)
	statsHandler := NewStatsHandler(statsCollector, logger)

	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// Login stays outside the guarded subrouter
	router.HandleFunc("/admin/login", handler.Login).Methods("POST")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(handler.AuthMiddleware)

	admin.HandleFunc("/countries", handler.ListCountries).Methods("GET")
	admin.HandleFunc("/countries", handler.UpsertCountry).Methods("POST")
	admin.HandleFunc("/countries/{id}", handler.UpdateCountry).Methods("PUT")
	admin.HandleFunc("/countries/{id}", handler.DeleteCountry).Methods("DELETE")

	admin.HandleFunc("/tours", handler.ListTours).Methods("GET")
	admin.HandleFunc("/tours", handler.UpsertTour).Methods("POST")
	admin.HandleFunc("/tours/options", handler.TourOptions).Methods("GET")
	admin.HandleFunc("/tours/{id}", handler.UpdateTour).Methods("PUT")
	admin.HandleFunc("/tours/{id}", handler.DeleteTour).Methods("DELETE")

	admin.HandleFunc("/hotels", handler.ListHotels).Methods("GET")
	admin.HandleFunc("/hotels", handler.UpsertHotel).Methods("POST")
	admin.HandleFunc("/hotels/options", handler.HotelOptions).Methods("GET")
	admin.HandleFunc("/hotels/{id}", handler.UpdateHotel).Methods("PUT")
	admin.HandleFunc("/hotels/{id}", handler.DeleteHotel).Methods("DELETE")
	admin.HandleFunc("/hotels/{id}/images", handler.ListHotelImages).Methods("GET")
	admin.HandleFunc("/hotels/{id}/images", handler.AddHotelImage).Methods("POST")
	admin.HandleFunc("/hotel-images/{imageId}", handler.DeleteHotelImage).Methods("DELETE")

	admin.HandleFunc("/offers", handler.ListOffers).Methods("GET")
	admin.HandleFunc("/offers", handler.UpsertOffer).Methods("POST")
	admin.HandleFunc("/offers/{id}", handler.PatchOffer).Methods("PATCH")
	admin.HandleFunc("/offers/{id}", handler.DeleteOffer).Methods("DELETE")

	admin.HandleFunc("/meta", handler.GetMeta).Methods("GET")
	admin.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	return router
}
