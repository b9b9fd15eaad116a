package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vladia/corretora-go/internal/model"
)

// Config holds settings for the Nominatim geocoding proxy
type Config struct {
	// BaseURL is the Nominatim endpoint
	BaseURL string
	// UserAgent identifies this application (required by Nominatim's usage policy)
	UserAgent string
	// CountryCodes biases search results (comma-separated ISO codes)
	CountryCodes string
	// Timeout bounds each upstream call
	Timeout time.Duration
}

// DefaultConfig returns the public OpenStreetMap Nominatim settings
func DefaultConfig() Config {
	return Config{
		BaseURL:      "https://nominatim.openstreetmap.org",
		UserAgent:    "vladia-corretora/1.0",
		CountryCodes: "br",
		Timeout:      10 * time.Second,
	}
}

// Service proxies address lookups to Nominatim.
// It is a pass-through: no caching, no retries, upstream details never
// reach the client.
type Service struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// New creates a new geocoding service
func New(cfg Config, logger *slog.Logger) *Service {
	return &Service{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Result is a resolved address
type Result struct {
	FormattedAddress string
	Latitude         float64
	Longitude        float64
	Components       map[string]string
	Place            string
	Importance       float64
}

type nominatimResult struct {
	DisplayName string            `json:"display_name"`
	Lat         string            `json:"lat"`
	Lon         string            `json:"lon"`
	Address     map[string]string `json:"address"`
	Type        string            `json:"type"`
	Importance  float64           `json:"importance"`
}

// Geocode resolves a free-text address to coordinates
func (s *Service) Geocode(ctx context.Context, address string) (*Result, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", "1")
	if s.cfg.CountryCodes != "" {
		params.Set("countrycodes", s.cfg.CountryCodes)
	}

	var results []nominatimResult
	if err := s.get(ctx, "/search", params, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, model.ErrAddressNotFound
	}

	r := results[0]
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing latitude %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing longitude %q: %w", r.Lon, err)
	}

	return &Result{
		FormattedAddress: r.DisplayName,
		Latitude:         lat,
		Longitude:        lon,
		Components:       r.Address,
		Place:            r.Type,
		Importance:       r.Importance,
	}, nil
}

// ReverseGeocode resolves coordinates to an address
func (s *Service) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*Result, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("format", "json")
	params.Set("addressdetails", "1")

	var result nominatimResult
	if err := s.get(ctx, "/reverse", params, &result); err != nil {
		return nil, err
	}

	if result.DisplayName == "" {
		return nil, model.ErrAddressNotFound
	}

	return &Result{
		FormattedAddress: result.DisplayName,
		Components:       result.Address,
	}, nil
}

func (s *Service) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling nominatim: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding nominatim response: %w", err)
	}

	return nil
}
