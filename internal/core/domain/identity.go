package domain

import "context"

// Principal kinds a request can act as.
const (
	IdentityKindGuest    = "guest"
	IdentityKindCustomer = "customer"
)

// Identity marks the principal the current request is authenticated as.
// It is an explicit value passed through the call chain; nothing shared is
// mutated when a request becomes authenticated.
type Identity struct {
	CustomerID int64
	Kind       string
}

type identityKey struct{}

// WithIdentity returns a child context carrying ident. Collaborators invoked
// after account creation run under the new customer's identity.
func WithIdentity(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, ident)
}

// IdentityFrom reports the identity bound to ctx, if any.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(identityKey{}).(Identity)
	return ident, ok
}
