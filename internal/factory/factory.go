package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/vladia/corretora-go/internal/dependencies/clock"
	"github.com/vladia/corretora-go/internal/services/account"
	"github.com/vladia/corretora-go/internal/services/geocode"
	"github.com/vladia/corretora-go/internal/services/listing"
	"github.com/vladia/corretora-go/internal/services/password"
	"github.com/vladia/corretora-go/internal/services/token"
	"github.com/vladia/corretora-go/internal/storage"
	"github.com/vladia/corretora-go/internal/storage/memory"
	redisstorage "github.com/vladia/corretora-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	TokenService   *token.Service
	AccountService *account.Service
	ListingService *listing.Service
	GeocodeService *geocode.Service
}

// Config holds configuration for the application factory
type Config struct {
	// TokenSecret signs bearer tokens (required)
	TokenSecret []byte
	// TokenTTL is the bearer token lifetime (optional, defaults to token.DefaultTTL)
	TokenTTL time.Duration
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// GeocodeConfig holds Nominatim settings (optional)
	// If nil, defaults to geocode.DefaultConfig()
	GeocodeConfig *geocode.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	if len(cfg.TokenSecret) == 0 {
		return nil, errors.New("TokenSecret is required")
	}

	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	geocodeCfg := geocode.DefaultConfig()
	if cfg.GeocodeConfig != nil {
		geocodeCfg = *cfg.GeocodeConfig
	}

	clk := clock.New()

	return newWithDependencies(store, clk, cfg.TokenSecret, cfg.TokenTTL, geocodeCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, secret []byte, ttl time.Duration, geocodeCfg geocode.Config, logger *slog.Logger) *App {
	hasher := password.New()
	tokenService := token.New(secret, ttl, clk)
	accountService := account.New(store, hasher, tokenService, clk, logger)
	listingService := listing.New(store, clk, logger)
	geocodeService := geocode.New(geocodeCfg, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		TokenService:   tokenService,
		AccountService: accountService,
		ListingService: listingService,
		GeocodeService: geocodeService,
	}
}
