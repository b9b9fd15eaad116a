package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vladia/corretora-go/internal/dependencies/clock"
	"github.com/vladia/corretora-go/internal/model"
	"github.com/vladia/corretora-go/internal/services/password"
	"github.com/vladia/corretora-go/internal/services/token"
	"github.com/vladia/corretora-go/internal/storage"
)

// Auth bundles an account with a freshly issued bearer token
type Auth struct {
	Account *model.Account
	Token   string
}

// Service orchestrates registration, login and profile updates
type Service struct {
	storage storage.Storage
	hasher  *password.Hasher
	tokens  *token.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new account service
func New(store storage.Storage, hasher *password.Hasher, tokens *token.Service, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		hasher:  hasher,
		tokens:  tokens,
		clock:   clk,
		logger:  logger,
	}
}

// RegisterParams are the inputs for creating an account.
// Phone and Role are optional; Role defaults to client.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
}

// Register creates an account and issues its first token
func (s *Service) Register(ctx context.Context, params RegisterParams) (*Auth, error) {
	role, err := model.ParseRole(params.Role)
	if err != nil {
		return nil, err
	}

	// Friendly pre-check; the store's create is the atomic one
	if _, err := s.storage.GetAccountByEmail(ctx, params.Email); err == nil {
		return nil, model.ErrEmailTaken
	} else if !errors.Is(err, model.ErrAccountNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := s.clock.Now()
	account := &model.Account{
		ID:           model.AccountID(uuid.NewString()),
		Name:         params.Name,
		Email:        model.NormalizeEmail(params.Email),
		PasswordHash: hash,
		Phone:        params.Phone,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	tok, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("account registered",
		slog.String("account_id", string(account.ID)),
		slog.String("role", string(account.Role)),
	)

	return &Auth{Account: account, Token: tok}, nil
}

// Login verifies credentials and issues a token.
// Unknown email and wrong password both return model.ErrInvalidCredentials
// so responses carry no account-enumeration signal.
func (s *Service) Login(ctx context.Context, email, plaintext string) (*Auth, error) {
	account, err := s.storage.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(plaintext, account.PasswordHash) {
		return nil, model.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("account authenticated", slog.String("account_id", string(account.ID)))

	return &Auth{Account: account, Token: tok}, nil
}

// UpdateProfileParams are the inputs for a profile update.
// NewPassword, when set, requires CurrentPassword to match the stored hash.
type UpdateProfileParams struct {
	Name            string
	Email           string
	Phone           string
	CurrentPassword string
	NewPassword     string
}

// UpdateProfile merges changes into an account and issues a fresh token.
// A new token is issued even when the password did not change, matching
// the established client contract; without revocation the old token stays
// valid until expiry either way.
func (s *Service) UpdateProfile(ctx context.Context, id model.AccountID, params UpdateProfileParams) (*Auth, error) {
	account, err := s.storage.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	newEmail := model.NormalizeEmail(params.Email)
	if newEmail != model.NormalizeEmail(account.Email) {
		other, err := s.storage.GetAccountByEmail(ctx, newEmail)
		if err == nil && other.ID != id {
			return nil, model.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, model.ErrAccountNotFound) {
			return nil, fmt.Errorf("checking email: %w", err)
		}
	}

	account.Name = params.Name
	account.Email = newEmail
	account.Phone = params.Phone

	if params.NewPassword != "" {
		if params.CurrentPassword == "" {
			return nil, model.ErrCurrentPasswordRequired
		}
		if !s.hasher.Verify(params.CurrentPassword, account.PasswordHash) {
			return nil, model.ErrInvalidCredentials
		}
		hash, err := s.hasher.Hash(params.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		account.PasswordHash = hash
	}

	account.UpdatedAt = s.clock.Now()

	if err := s.storage.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}

	tok, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("profile updated", slog.String("account_id", string(account.ID)))

	return &Auth{Account: account, Token: tok}, nil
}
