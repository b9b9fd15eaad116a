package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vladia/corretora-go/internal/api/apierr"
	"github.com/vladia/corretora-go/internal/model"
	"github.com/vladia/corretora-go/internal/services/token"
	"github.com/vladia/corretora-go/internal/storage"
)

type contextKey string

const accountContextKey contextKey = "account"

// Authenticate creates the authentication middleware.
// Every rejection is a 401 with a distinct message so clients can tell a
// missing header from a malformed one from an expired or forged token;
// only resolution failures other than not-found surface as 500.
func Authenticate(tokens *token.Service, store storage.Storage, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				apierr.WriteError(w, apierr.NewUnauthenticatedError("token not provided"))
				return
			}

			// Exactly two space-separated parts, scheme must be Bearer
			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				apierr.WriteError(w, apierr.NewUnauthenticatedError("malformed token"))
				return
			}

			accountID, err := tokens.Verify(parts[1])
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			acct, err := store.GetAccount(r.Context(), accountID)
			if err != nil {
				if errors.Is(err, model.ErrAccountNotFound) {
					// A valid token for a vanished account is still a 401
					apierr.WriteError(w, apierr.NewUnauthenticatedError("account not found"))
					return
				}
				logger.Error("resolving account",
					slog.String("account_id", string(accountID)),
					slog.String("error", err.Error()),
				)
				apierr.WriteError(w, apierr.NewInternalError())
				return
			}

			// Attach the public projection; the hash stays behind
			identity := *acct
			identity.PasswordHash = ""

			ctx := context.WithValue(r.Context(), accountContextKey, &identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole creates authorization middleware allowing only the given
// roles. It must run after Authenticate: a missing identity is a 401,
// a wrong role a 403.
func RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			acct := GetAccount(r.Context())
			if acct == nil {
				apierr.WriteError(w, apierr.NewUnauthenticatedError("not authenticated"))
				return
			}

			for _, role := range roles {
				if acct.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			apierr.WriteError(w, apierr.New(http.StatusForbidden, "insufficient permissions"))
		})
	}
}

// GetAccount returns the authenticated account from the request context
func GetAccount(ctx context.Context) *model.Account {
	acct, _ := ctx.Value(accountContextKey).(*model.Account)
	return acct
}

// MustGetAccount returns the authenticated account or panics
func MustGetAccount(ctx context.Context) *model.Account {
	acct := GetAccount(ctx)
	if acct == nil {
		panic("no account in context - auth middleware not applied?")
	}
	return acct
}
