package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vladia/corretora-go/internal/model"
	"github.com/vladia/corretora-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	accounts   map[model.AccountID]*model.Account
	emailIndex map[string]model.AccountID
	listings   map[model.ListingID]*model.Listing
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts:   make(map[model.AccountID]*model.Account),
		emailIndex: make(map[string]model.AccountID),
		listings:   make(map[model.ListingID]*model.Listing),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) CreateAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Uniqueness check and insert happen under the same lock acquisition,
	// so concurrent registrations of the same email cannot both succeed.
	email := model.NormalizeEmail(account.Email)
	if _, taken := s.emailIndex[email]; taken {
		return model.ErrEmailTaken
	}

	a := *account
	s.accounts[a.ID] = &a
	s.emailIndex[email] = a.ID
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	a := *account
	return &a, nil
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[model.NormalizeEmail(email)]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	a := *account
	return &a, nil
}

func (s *Storage) UpdateAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.accounts[account.ID]
	if !ok {
		return model.ErrAccountNotFound
	}

	oldEmail := model.NormalizeEmail(existing.Email)
	newEmail := model.NormalizeEmail(account.Email)
	if newEmail != oldEmail {
		if owner, taken := s.emailIndex[newEmail]; taken && owner != account.ID {
			return model.ErrEmailTaken
		}
		delete(s.emailIndex, oldEmail)
		s.emailIndex[newEmail] = account.ID
	}

	a := *account
	s.accounts[a.ID] = &a
	return nil
}

// Listing operations

func (s *Storage) SaveListing(ctx context.Context, listing *model.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := *listing
	s.listings[l.ID] = &l
	return nil
}

func (s *Storage) GetListing(ctx context.Context, id model.ListingID) (*model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	listing, ok := s.listings[id]
	if !ok {
		return nil, model.ErrListingNotFound
	}
	l := *listing
	return &l, nil
}

func (s *Storage) ListListings(ctx context.Context) ([]*model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listings := make([]*model.Listing, 0, len(s.listings))
	for _, listing := range s.listings {
		l := *listing
		listings = append(listings, &l)
	}

	// Newest first
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})

	return listings, nil
}

func (s *Storage) DeleteListing(ctx context.Context, id model.ListingID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listings, id)
	return nil
}
