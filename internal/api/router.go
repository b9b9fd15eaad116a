package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vladia/corretora-go/internal/api/handler"
	"github.com/vladia/corretora-go/internal/api/middleware"
	"github.com/vladia/corretora-go/internal/model"
	"github.com/vladia/corretora-go/internal/services/account"
	"github.com/vladia/corretora-go/internal/services/geocode"
	"github.com/vladia/corretora-go/internal/services/listing"
	"github.com/vladia/corretora-go/internal/services/token"
	"github.com/vladia/corretora-go/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AccountService *account.Service
	ListingService *listing.Service
	GeocodeService *geocode.Service
	TokenService   *token.Service
	Storage        storage.Storage
	CORSOrigin     string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AccountService)
	listingHandler := handler.NewListingHandler(cfg.ListingService)
	geocodeHandler := handler.NewGeocodeHandler(cfg.GeocodeService)

	// Create middleware
	authMiddleware := middleware.Authenticate(cfg.TokenService, cfg.Storage, cfg.Logger)
	brokerOnly := middleware.RequireRole(model.RoleAdmin, model.RoleBroker)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required for register/login)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Protected auth routes
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/profile", authHandler.GetProfile).Methods(http.MethodGet)
	authProtected.HandleFunc("/profile", authHandler.UpdateProfile).Methods(http.MethodPut)
	authProtected.HandleFunc("/verify", authHandler.Verify).Methods(http.MethodGet)

	// Listing routes (reads are public)
	api.HandleFunc("/listings", listingHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/listings/{id}", listingHandler.Get).Methods(http.MethodGet)

	// Listing mutations require an admin or broker account
	listingsProtected := api.PathPrefix("/listings").Subrouter()
	listingsProtected.Use(authMiddleware)
	listingsProtected.Use(brokerOnly)
	listingsProtected.HandleFunc("", listingHandler.Create).Methods(http.MethodPost)
	listingsProtected.HandleFunc("/{id}", listingHandler.Update).Methods(http.MethodPut)
	listingsProtected.HandleFunc("/{id}", listingHandler.Delete).Methods(http.MethodDelete)

	// Geocoding proxy routes
	api.HandleFunc("/geocode", geocodeHandler.Geocode).Methods(http.MethodPost)
	api.HandleFunc("/geocode/reverse", geocodeHandler.ReverseGeocode).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// CORS wraps the whole router so preflight OPTIONS requests are
	// answered before route matching
	if cfg.CORSOrigin != "" {
		return middleware.CORS(cfg.CORSOrigin)(r)
	}

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
