package auth

import "crypto/subtle"

// CredentialVerifier decides whether a username/password pair is valid.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticCredentials is a fixed username → password table. Comparison is
// exact and constant-time per candidate.
type StaticCredentials map[string]string

// DefaultCredentials are the demo accounts.
func DefaultCredentials() StaticCredentials {
	return StaticCredentials{
		"admin": "admin123",
		"user":  "user123",
	}
}

func (c StaticCredentials) Verify(username, password string) bool {
	expected, ok := c[username]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(password)) == 1
}
