package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/vladia/corretora-go/internal/dependencies/mocks"
	"github.com/vladia/corretora-go/internal/model"
	"github.com/vladia/corretora-go/internal/services/password"
	"github.com/vladia/corretora-go/internal/services/token"
	"github.com/vladia/corretora-go/internal/storage/memory"
	"github.com/vladia/corretora-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	tokens  *token.Service
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.tokens = token.New([]byte("test-secret"), time.Hour, s.clock)
	s.service = New(s.storage, password.New(), s.tokens, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) register(email string) *Auth {
	auth, err := s.service.Register(s.ctx, RegisterParams{
		Name:     "Alice",
		Email:    email,
		Password: "secret123",
	})
	s.Require().NoError(err)
	return auth
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	auth := s.register("alice@example.com")

	s.NotEmpty(auth.Token)
	s.NotEmpty(auth.Account.ID)
	s.Equal("Alice", auth.Account.Name)
	s.Equal("alice@example.com", auth.Account.Email)
	s.Equal(model.RoleClient, auth.Account.Role)
}

func (s *ServiceSuite) TestRegisterHashesPassword() {
	auth := s.register("alice@example.com")

	stored, err := s.storage.GetAccount(s.ctx, auth.Account.ID)
	s.Require().NoError(err)
	s.NotEmpty(stored.PasswordHash)
	s.NotEqual("secret123", stored.PasswordHash)
}

func (s *ServiceSuite) TestRegisterNormalizesEmail() {
	auth, err := s.service.Register(s.ctx, RegisterParams{
		Name:     "Alice",
		Email:    "  Alice@Example.COM ",
		Password: "secret123",
	})
	s.Require().NoError(err)
	s.Equal("alice@example.com", auth.Account.Email)
}

func (s *ServiceSuite) TestRegisterFailsIfEmailTaken() {
	s.register("alice@example.com")

	_, err := s.service.Register(s.ctx, RegisterParams{
		Name:     "Mallory",
		Email:    "alice@example.com",
		Password: "different",
	})
	s.ErrorIs(err, model.ErrEmailTaken)
}

func (s *ServiceSuite) TestRegisterFailsIfEmailTakenCaseInsensitive() {
	s.register("alice@example.com")

	_, err := s.service.Register(s.ctx, RegisterParams{
		Name:     "Mallory",
		Email:    "ALICE@EXAMPLE.COM",
		Password: "different",
	})
	s.ErrorIs(err, model.ErrEmailTaken)
}

func (s *ServiceSuite) TestRegisterWithExplicitRole() {
	auth, err := s.service.Register(s.ctx, RegisterParams{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret123",
		Role:     "broker",
	})
	s.Require().NoError(err)
	s.Equal(model.RoleBroker, auth.Account.Role)
}

func (s *ServiceSuite) TestRegisterFailsForUnknownRole() {
	_, err := s.service.Register(s.ctx, RegisterParams{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret123",
		Role:     "superuser",
	})
	s.ErrorIs(err, model.ErrUnknownRole)
}

func (s *ServiceSuite) TestRegisterTokenResolvesToAccount() {
	auth := s.register("alice@example.com")

	id, err := s.tokens.Verify(auth.Token)
	s.Require().NoError(err)
	s.Equal(auth.Account.ID, id)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	created := s.register("alice@example.com")

	auth, err := s.service.Login(s.ctx, "alice@example.com", "secret123")
	s.Require().NoError(err)
	s.NotEmpty(auth.Token)
	s.Equal(created.Account.ID, auth.Account.ID)
}

func (s *ServiceSuite) TestLoginIsCaseInsensitiveOnEmail() {
	s.register("alice@example.com")

	_, err := s.service.Login(s.ctx, "ALICE@example.com", "secret123")
	s.NoError(err)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	s.register("alice@example.com")

	_, err := s.service.Login(s.ctx, "alice@example.com", "wrongpassword")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownEmail() {
	_, err := s.service.Login(s.ctx, "nobody@example.com", "secret123")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailuresAreIndistinguishable() {
	s.register("alice@example.com")

	_, unknownErr := s.service.Login(s.ctx, "nobody@example.com", "secret123")
	_, wrongPassErr := s.service.Login(s.ctx, "alice@example.com", "wrongpassword")

	// An attacker probing for registered emails sees identical failures
	s.Equal(unknownErr, wrongPassErr)
}

// UpdateProfile tests

func (s *ServiceSuite) TestUpdateProfileChangesFields() {
	created := s.register("alice@example.com")

	auth, err := s.service.UpdateProfile(s.ctx, created.Account.ID, UpdateProfileParams{
		Name:  "Alice Smith",
		Email: "alice.smith@example.com",
		Phone: "+55 11 99999-0000",
	})
	s.Require().NoError(err)

	s.Equal("Alice Smith", auth.Account.Name)
	s.Equal("alice.smith@example.com", auth.Account.Email)
	s.Equal("+55 11 99999-0000", auth.Account.Phone)
	s.NotEmpty(auth.Token)
}

func (s *ServiceSuite) TestUpdateProfileFailsForUnknownAccount() {
	_, err := s.service.UpdateProfile(s.ctx, "nonexistent", UpdateProfileParams{
		Name:  "Ghost",
		Email: "ghost@example.com",
	})
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *ServiceSuite) TestUpdateProfileFailsIfNewEmailTaken() {
	s.register("alice@example.com")
	bob, err := s.service.Register(s.ctx, RegisterParams{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret123",
	})
	s.Require().NoError(err)

	_, err = s.service.UpdateProfile(s.ctx, bob.Account.ID, UpdateProfileParams{
		Name:  "Bob",
		Email: "alice@example.com",
	})
	s.ErrorIs(err, model.ErrEmailTaken)
}

func (s *ServiceSuite) TestUpdateProfileKeepingOwnEmailSucceeds() {
	created := s.register("alice@example.com")

	_, err := s.service.UpdateProfile(s.ctx, created.Account.ID, UpdateProfileParams{
		Name:  "Alice Smith",
		Email: "alice@example.com",
	})
	s.NoError(err)
}

func (s *ServiceSuite) TestUpdateProfileChangesPassword() {
	created := s.register("alice@example.com")

	_, err := s.service.UpdateProfile(s.ctx, created.Account.ID, UpdateProfileParams{
		Name:            "Alice",
		Email:           "alice@example.com",
		CurrentPassword: "secret123",
		NewPassword:     "newsecret456",
	})
	s.Require().NoError(err)

	// Old password no longer works, new one does
	_, err = s.service.Login(s.ctx, "alice@example.com", "secret123")
	s.ErrorIs(err, model.ErrInvalidCredentials)

	_, err = s.service.Login(s.ctx, "alice@example.com", "newsecret456")
	s.NoError(err)
}

func (s *ServiceSuite) TestUpdateProfilePasswordChangeRequiresCurrent() {
	created := s.register("alice@example.com")

	_, err := s.service.UpdateProfile(s.ctx, created.Account.ID, UpdateProfileParams{
		Name:        "Alice",
		Email:       "alice@example.com",
		NewPassword: "newsecret456",
	})
	s.ErrorIs(err, model.ErrCurrentPasswordRequired)
}

func (s *ServiceSuite) TestUpdateProfilePasswordChangeRejectsWrongCurrent() {
	created := s.register("alice@example.com")

	_, err := s.service.UpdateProfile(s.ctx, created.Account.ID, UpdateProfileParams{
		Name:            "Alice",
		Email:           "alice@example.com",
		CurrentPassword: "wrongpassword",
		NewPassword:     "newsecret456",
	})
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestUpdateProfileIssuesFreshToken() {
	created := s.register("alice@example.com")

	s.clock.Advance(time.Minute)

	auth, err := s.service.UpdateProfile(s.ctx, created.Account.ID, UpdateProfileParams{
		Name:  "Alice",
		Email: "alice@example.com",
	})
	s.Require().NoError(err)
	s.NotEqual(created.Token, auth.Token)

	id, err := s.tokens.Verify(auth.Token)
	s.Require().NoError(err)
	s.Equal(created.Account.ID, id)
}

func (s *ServiceSuite) TestUpdateProfileBumpsUpdatedAt() {
	created := s.register("alice@example.com")

	s.clock.Advance(time.Hour)

	auth, err := s.service.UpdateProfile(s.ctx, created.Account.ID, UpdateProfileParams{
		Name:  "Alice",
		Email: "alice@example.com",
	})
	s.Require().NoError(err)
	s.True(auth.Account.UpdatedAt.After(created.Account.UpdatedAt))
}
