package services

import (
	"context"

	"github.com/dmitrijs2005/expedientes/internal/common"
	"github.com/dmitrijs2005/expedientes/internal/server/auth"
)

const msgCredencialesRequeridas = "Username y password son requeridos"

// TokenIssuer mints a bearer token for an authenticated username.
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// AuthService checks credentials and mints tokens.
type AuthService struct {
	credentials auth.CredentialVerifier
	tokens      TokenIssuer
}

func NewAuthService(credentials auth.CredentialVerifier, tokens TokenIssuer) *AuthService {
	return &AuthService{credentials: credentials, tokens: tokens}
}

// Login returns a token for a valid pair. Missing fields are a validation
// error, a wrong pair is common.ErrorUnauthorized.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", common.NewValidationError("username", msgCredencialesRequeridas)
	}
	if !s.credentials.Verify(username, password) {
		return "", common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(username)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
