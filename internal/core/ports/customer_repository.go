package ports

import (
	"context"

	"github.com/commercekit/customer-system/internal/core/domain"
)

// CustomerRepository defines persistence operations for customer accounts.
type CustomerRepository interface {
	// Insert persists a new customer and returns the entity with its assigned
	// identifier. passwordHash may be empty when the account has no password yet.
	// A duplicate email within the same website fails with domain.ErrEmailExists.
	Insert(ctx context.Context, customer *domain.Customer, passwordHash string) (*domain.Customer, error)
	// FindByEmail returns the customer and its stored password hash.
	FindByEmail(ctx context.Context, email string) (*domain.Customer, string, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// CustomerReader assembles the externally visible account representation from
// persisted state.
type CustomerReader interface {
	GetByID(ctx context.Context, id int64) (*CustomerView, error)
}
