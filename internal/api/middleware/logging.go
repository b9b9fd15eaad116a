package middleware

import (
	"log/slog"
	"net/http"

	"github.com/vladia/corretora-go/internal/middleware"
)

// Logging re-exports the shared request logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}
