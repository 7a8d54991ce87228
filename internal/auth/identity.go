package auth

import "context"

// Identity is the authenticated caller attached to a request context
type Identity struct {
	UserID  int64
	Email   string
	IsAdmin bool
}

type contextKey string

const identityKey contextKey = "identity"

// ContextWithIdentity returns a context carrying the caller's identity
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext extracts the caller's identity from the context
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
