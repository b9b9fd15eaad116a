package listing

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vladia/corretora-go/internal/dependencies/clock"
	"github.com/vladia/corretora-go/internal/model"
	"github.com/vladia/corretora-go/internal/storage"
)

// Service handles property listing CRUD.
// Listings are plain records; all the interesting validation is the
// closed kind/status sets.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new listing service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// Draft holds the caller-supplied fields of a listing
type Draft struct {
	Title            string
	Kind             string
	Address          string
	FormattedAddress string
	Latitude         *float64
	Longitude        *float64
	Price            float64
	Area             float64
	Rooms            int
	Bathrooms        int
	Description      string
	Amenities        []string
	Images           []string
	Rent             float64
	CondoFee         float64
	PropertyTax      float64
	BelowMarket      bool
	Status           string
}

func (s *Service) fromDraft(draft Draft) (*model.Listing, error) {
	kind, err := model.ParseListingKind(draft.Kind)
	if err != nil {
		return nil, err
	}
	status, err := model.ParseListingStatus(draft.Status)
	if err != nil {
		return nil, err
	}

	return &model.Listing{
		Title:            draft.Title,
		Kind:             kind,
		Address:          draft.Address,
		FormattedAddress: draft.FormattedAddress,
		Latitude:         draft.Latitude,
		Longitude:        draft.Longitude,
		Price:            draft.Price,
		Area:             draft.Area,
		Rooms:            draft.Rooms,
		Bathrooms:        draft.Bathrooms,
		Description:      draft.Description,
		Amenities:        draft.Amenities,
		Images:           draft.Images,
		Rent:             draft.Rent,
		CondoFee:         draft.CondoFee,
		PropertyTax:      draft.PropertyTax,
		BelowMarket:      draft.BelowMarket,
		Status:           status,
	}, nil
}

// Create stores a new listing
func (s *Service) Create(ctx context.Context, draft Draft) (*model.Listing, error) {
	listing, err := s.fromDraft(draft)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	listing.ID = model.ListingID(uuid.NewString())
	listing.CreatedAt = now
	listing.UpdatedAt = now

	if err := s.storage.SaveListing(ctx, listing); err != nil {
		return nil, err
	}

	s.logger.Info("listing created", slog.String("listing_id", string(listing.ID)))
	return listing, nil
}

// Get returns a single listing
func (s *Service) Get(ctx context.Context, id model.ListingID) (*model.Listing, error) {
	return s.storage.GetListing(ctx, id)
}

// List returns all listings, newest first
func (s *Service) List(ctx context.Context) ([]*model.Listing, error) {
	return s.storage.ListListings(ctx)
}

// Update overwrites a listing's caller-supplied fields
func (s *Service) Update(ctx context.Context, id model.ListingID, draft Draft) (*model.Listing, error) {
	existing, err := s.storage.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	listing, err := s.fromDraft(draft)
	if err != nil {
		return nil, err
	}

	listing.ID = existing.ID
	listing.CreatedAt = existing.CreatedAt
	listing.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveListing(ctx, listing); err != nil {
		return nil, err
	}

	s.logger.Info("listing updated", slog.String("listing_id", string(listing.ID)))
	return listing, nil
}

// Delete removes a listing
func (s *Service) Delete(ctx context.Context, id model.ListingID) error {
	// Surface a 404 for unknown ids rather than a silent no-op
	if _, err := s.storage.GetListing(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeleteListing(ctx, id); err != nil {
		return err
	}

	s.logger.Info("listing deleted", slog.String("listing_id", string(id)))
	return nil
}
