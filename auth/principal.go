package auth

import "context"

// Principal is the authenticated identity attached to a request. It is
// created at login and carried in the session cookie for 24 hours.
type Principal struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Tipo     string `json:"tipo"`
	Nombre   string `json:"nombre"`
}

type principalContextKey struct{}

// SetPrincipal stores the resolved principal on the request context for
// downstream handlers.
func SetPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// GetPrincipal retrieves the principal from the context. The second
// return is false for anonymous requests.
func GetPrincipal(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(Principal)
	return p, ok
}
