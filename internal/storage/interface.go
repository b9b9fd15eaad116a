package storage

import (
	"context"

	"github.com/vladia/corretora-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Account operations.
	// CreateAccount must enforce at-most-one account per (case-insensitive)
	// email as a single atomic operation and return model.ErrEmailTaken on
	// conflict. UpdateAccount re-checks uniqueness when the email changed.
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
	UpdateAccount(ctx context.Context, account *model.Account) error

	// Listing operations
	SaveListing(ctx context.Context, listing *model.Listing) error
	GetListing(ctx context.Context, id model.ListingID) (*model.Listing, error)
	ListListings(ctx context.Context) ([]*model.Listing, error)
	DeleteListing(ctx context.Context, id model.ListingID) error
}
