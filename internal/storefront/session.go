package storefront

import "context"

type sessionKey struct{}

// ContextWithSession returns a copy of ctx carrying the shopper session ID.
func ContextWithSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionFromContext returns the shopper session ID stored in ctx, or "".
func SessionFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
