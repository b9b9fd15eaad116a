package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vladia/corretora-go/internal/dependencies/clock"
	"github.com/vladia/corretora-go/internal/model"
)

// DefaultTTL is how long an issued token stays valid
const DefaultTTL = 7 * 24 * time.Hour

// Service issues and verifies signed bearer tokens.
// Tokens are self-contained HS256 JWTs: subject, issued-at and expiry are
// all the server needs, so verification requires no session table and
// there is no revocation.
type Service struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// New creates a token service signing with the given secret
func New(secret []byte, ttl time.Duration, clk clock.Clock) *Service {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: secret,
		ttl:    ttl,
		clock:  clk,
	}
}

// TTL returns the configured token lifetime
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed token with subject = accountID and
// expiry = now + TTL
func (s *Service) Issue(accountID model.AccountID) (string, error) {
	now := s.clock.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   string(accountID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// Verify validates a token's signature and expiry and returns its subject.
// Failure kinds are distinguishable: model.ErrTokenExpired,
// model.ErrTokenMalformed and model.ErrTokenInvalid.
func (s *Service) Verify(tokenString string) (model.AccountID, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", model.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", model.ErrTokenMalformed
		default:
			return "", model.ErrTokenInvalid
		}
	}

	if !token.Valid || claims.Subject == "" {
		return "", model.ErrTokenInvalid
	}

	return model.AccountID(claims.Subject), nil
}
