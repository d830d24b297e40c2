// Package auth issues and verifies the bearer tokens of the expedientes API
// and checks login credentials.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/expedientes/internal/common"
	"github.com/dmitrijs2005/expedientes/internal/timex"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenValidity is the lifetime of a login token.
const DefaultTokenValidity = 24 * time.Hour

// Claims carries the principal's username next to the registered iat/exp claims.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TokenService mints and verifies HS256 tokens with a single process-wide
// secret. Rotating the secret invalidates every token issued before.
type TokenService struct {
	secretKey        []byte
	validityDuration time.Duration
	now              timex.Clock
}

func NewTokenService(secretKey []byte, validityDuration time.Duration) *TokenService {
	if validityDuration <= 0 {
		validityDuration = DefaultTokenValidity
	}
	return &TokenService{secretKey: secretKey, validityDuration: validityDuration, now: time.Now}
}

// WithClock returns a copy of s that reads time from clock.
func (s *TokenService) WithClock(clock timex.Clock) *TokenService {
	c := *s
	c.now = clock
	return &c
}

// Issue returns a signed token for username.
func (s *TokenService) Issue(username string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validityDuration)),
		},
		Username: username,
	})

	return token.SignedString(s.secretKey)
}

// Verify checks signature and expiry and returns the username. It fails with
// common.ErrTokenExpired when the signature is good but the token is past its
// expiry, and with common.ErrInvalidToken for anything else wrong with it.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Username == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Username, nil
}
