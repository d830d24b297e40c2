package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticCredentials_Verify(t *testing.T) {
	c := DefaultCredentials()

	assert.True(t, c.Verify("admin", "admin123"))
	assert.True(t, c.Verify("user", "user123"))
	assert.False(t, c.Verify("admin", "wrong"))
	assert.False(t, c.Verify("admin", "user123"))
	assert.False(t, c.Verify("ghost", "admin123"))
	assert.False(t, c.Verify("admin", "admin123 "))
	assert.False(t, c.Verify("", ""))
}

func TestUsernameContext(t *testing.T) {
	_, ok := UsernameFromContext(context.Background())
	assert.False(t, ok)

	u, ok := UsernameFromContext(WithUsername(context.Background(), "admin"))
	assert.True(t, ok)
	assert.Equal(t, "admin", u)
}
