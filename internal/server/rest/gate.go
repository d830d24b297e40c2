package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/expedientes/internal/common"
	"github.com/dmitrijs2005/expedientes/internal/logging"
	"github.com/dmitrijs2005/expedientes/internal/server/auth"
)

const bearerPrefix = "Bearer "

const (
	msgTokenMissing = "Token no proporcionado"
	msgTokenInvalid = "Token inválido"
	msgTokenExpired = "Token expirado"
	msgTokenFailure = "Error al verificar el token"
)

// TokenVerifier resolves a bearer token to the username it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthGate rejects requests without a valid bearer token and stores the
// verified username in the request context for the wrapped handler.
func AuthGate(tokens TokenVerifier, logger logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Nop{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				writeError(w, http.StatusUnauthorized, msgTokenMissing)
				return
			}

			username, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
			switch {
			case err == nil:
			case errors.Is(err, common.ErrTokenExpired):
				writeError(w, http.StatusUnauthorized, msgTokenExpired)
				return
			case errors.Is(err, common.ErrInvalidToken):
				writeError(w, http.StatusUnauthorized, msgTokenInvalid)
				return
			default:
				logger.Error(r.Context(), "token verification failed", "error", err)
				writeError(w, http.StatusInternalServerError, msgTokenFailure)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUsername(r.Context(), username)))
		})
	}
}
