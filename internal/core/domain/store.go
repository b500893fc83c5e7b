package domain

import (
	"context"
	"errors"
)

var ErrStoreNotFound = errors.New("store not found")

// Store is the website/store scope a request operates in. Every new customer is
// stamped with the scope resolved for its request; the fields are never
// caller-controlled.
type Store struct {
	ID        int64  `json:"id"`
	WebsiteID int64  `json:"website_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
}

type storeCodeKey struct{}

// WithStoreCode returns a child context carrying the requested store code.
func WithStoreCode(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, storeCodeKey{}, code)
}

// StoreCodeFrom reports the store code carried by ctx; empty when none was set,
// which resolvers treat as the default store.
func StoreCodeFrom(ctx context.Context) string {
	code, _ := ctx.Value(storeCodeKey{}).(string)
	return code
}
