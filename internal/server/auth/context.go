package auth

import "context"

type ctxKey string

const usernameKey ctxKey = "username"

// WithUsername attaches the verified principal to ctx.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// UsernameFromContext returns the principal attached by WithUsername.
func UsernameFromContext(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(usernameKey).(string)
	return u, ok && u != ""
}
