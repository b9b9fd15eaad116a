package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/vladia/corretora-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) account(id, email string) *model.Account {
	return &model.Account{
		ID:           model.AccountID(id),
		Name:         "Alice",
		Email:        email,
		PasswordHash: "hash123",
		Role:         model.RoleClient,
		CreatedAt:    time.Now().UTC(),
	}
}

// Account tests

func (s *StorageSuite) TestCreateAndGetAccount() {
	acct := s.account("account-1", "alice@example.com")

	err := s.storage.CreateAccount(s.ctx, acct)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccount(s.ctx, "account-1")
	s.Require().NoError(err)
	s.Equal(acct.Email, retrieved.Email)
	s.Equal(acct.PasswordHash, retrieved.PasswordHash)
	s.Equal(acct.Role, retrieved.Role)
}

func (s *StorageSuite) TestGetAccountNotFound() {
	_, err := s.storage.GetAccount(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestCreateAccountRejectsDuplicateEmail() {
	_ = s.storage.CreateAccount(s.ctx, s.account("account-1", "alice@example.com"))

	err := s.storage.CreateAccount(s.ctx, s.account("account-2", "alice@example.com"))
	s.ErrorIs(err, model.ErrEmailTaken)
}

func (s *StorageSuite) TestCreateAccountRejectsDuplicateEmailCaseInsensitive() {
	_ = s.storage.CreateAccount(s.ctx, s.account("account-1", "alice@example.com"))

	err := s.storage.CreateAccount(s.ctx, s.account("account-2", "ALICE@Example.com"))
	s.ErrorIs(err, model.ErrEmailTaken)
}

func (s *StorageSuite) TestGetAccountByEmail() {
	_ = s.storage.CreateAccount(s.ctx, s.account("account-1", "alice@example.com"))

	retrieved, err := s.storage.GetAccountByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(model.AccountID("account-1"), retrieved.ID)
}

func (s *StorageSuite) TestGetAccountByEmailCaseInsensitive() {
	_ = s.storage.CreateAccount(s.ctx, s.account("account-1", "alice@example.com"))

	retrieved, err := s.storage.GetAccountByEmail(s.ctx, "Alice@EXAMPLE.com")
	s.Require().NoError(err)
	s.Equal(model.AccountID("account-1"), retrieved.ID)
}

func (s *StorageSuite) TestGetAccountByEmailNotFound() {
	_, err := s.storage.GetAccountByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestUpdateAccount() {
	acct := s.account("account-1", "alice@example.com")
	_ = s.storage.CreateAccount(s.ctx, acct)

	acct.Name = "Alice Smith"
	err := s.storage.UpdateAccount(s.ctx, acct)
	s.Require().NoError(err)

	retrieved, _ := s.storage.GetAccount(s.ctx, "account-1")
	s.Equal("Alice Smith", retrieved.Name)
}

func (s *StorageSuite) TestUpdateAccountNotFound() {
	err := s.storage.UpdateAccount(s.ctx, s.account("nonexistent", "ghost@example.com"))
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestUpdateAccountReindexesEmail() {
	acct := s.account("account-1", "alice@example.com")
	_ = s.storage.CreateAccount(s.ctx, acct)

	acct.Email = "alice.smith@example.com"
	err := s.storage.UpdateAccount(s.ctx, acct)
	s.Require().NoError(err)

	_, err = s.storage.GetAccountByEmail(s.ctx, "alice.smith@example.com")
	s.NoError(err)

	// The old index entry is gone
	_, err = s.storage.GetAccountByEmail(s.ctx, "alice@example.com")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestUpdateAccountRejectsTakenEmail() {
	_ = s.storage.CreateAccount(s.ctx, s.account("account-1", "alice@example.com"))
	bob := s.account("account-2", "bob@example.com")
	_ = s.storage.CreateAccount(s.ctx, bob)

	bob.Email = "alice@example.com"
	err := s.storage.UpdateAccount(s.ctx, bob)
	s.ErrorIs(err, model.ErrEmailTaken)
}

func (s *StorageSuite) TestUpdateAccountAllowsCaseOnlyEmailChange() {
	acct := s.account("account-1", "alice@example.com")
	_ = s.storage.CreateAccount(s.ctx, acct)

	acct.Email = "Alice@Example.com"
	err := s.storage.UpdateAccount(s.ctx, acct)
	s.NoError(err)
}

// Listing tests

func (s *StorageSuite) listing(id string, createdAt time.Time) *model.Listing {
	return &model.Listing{
		ID:        model.ListingID(id),
		Title:     "Cozy house",
		Kind:      model.KindHouse,
		Address:   "Rua das Flores 123",
		Price:     350000,
		Status:    model.StatusAvailable,
		CreatedAt: createdAt,
	}
}

func (s *StorageSuite) TestSaveAndGetListing() {
	listing := s.listing("listing-1", time.Now().UTC())

	err := s.storage.SaveListing(s.ctx, listing)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetListing(s.ctx, "listing-1")
	s.Require().NoError(err)
	s.Equal(listing.Title, retrieved.Title)
	s.Equal(listing.Kind, retrieved.Kind)
}

func (s *StorageSuite) TestGetListingNotFound() {
	_, err := s.storage.GetListing(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrListingNotFound)
}

func (s *StorageSuite) TestListListingsNewestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveListing(s.ctx, s.listing("old", base))
	_ = s.storage.SaveListing(s.ctx, s.listing("new", base.Add(time.Hour)))

	listings, err := s.storage.ListListings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(listings, 2)
	s.Equal(model.ListingID("new"), listings[0].ID)
	s.Equal(model.ListingID("old"), listings[1].ID)
}

func (s *StorageSuite) TestListListingsEmpty() {
	listings, err := s.storage.ListListings(s.ctx)
	s.Require().NoError(err)
	s.Empty(listings)
}

func (s *StorageSuite) TestListListingsSkipsStaleIndexEntries() {
	_ = s.storage.SaveListing(s.ctx, s.listing("listing-1", time.Now().UTC()))
	_ = s.storage.SaveListing(s.ctx, s.listing("listing-2", time.Now().UTC()))

	// Remove the value behind one index entry directly
	s.mini.Del(listingKey("listing-1"))

	listings, err := s.storage.ListListings(s.ctx)
	s.Require().NoError(err)
	s.Len(listings, 1)
}

func (s *StorageSuite) TestDeleteListing() {
	_ = s.storage.SaveListing(s.ctx, s.listing("listing-1", time.Now().UTC()))

	err := s.storage.DeleteListing(s.ctx, "listing-1")
	s.Require().NoError(err)

	_, err = s.storage.GetListing(s.ctx, "listing-1")
	s.ErrorIs(err, model.ErrListingNotFound)

	listings, err := s.storage.ListListings(s.ctx)
	s.Require().NoError(err)
	s.Empty(listings)
}
