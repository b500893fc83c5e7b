package ports

import (
	"context"

	"github.com/commercekit/customer-system/internal/core/domain"
)

// StoreResolver resolves the store scope for a request. An empty code resolves
// to the default store.
type StoreResolver interface {
	Resolve(ctx context.Context, code string) (*domain.Store, error)
}

// StoreRepository defines persistence lookups for store scopes.
type StoreRepository interface {
	FindByCode(ctx context.Context, code string) (*domain.Store, error)
}

// StoreCache is the fast path in front of the store repository. Get returns
// (nil, nil) on a miss.
type StoreCache interface {
	Get(ctx context.Context, code string) (*domain.Store, error)
	Set(ctx context.Context, store *domain.Store) error
}
