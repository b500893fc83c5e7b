package ports

import (
	"context"

	"github.com/commercekit/customer-system/internal/core/domain"
)

// AccountManager owns field validation, secret handling, and persistence for
// customer accounts. CreateAccount fails with a domain.ErrValidation-wrapped
// error on business-rule violations, domain.ErrEmailExists on duplicates, and
// anything else on infrastructure trouble.
type AccountManager interface {
	CreateAccount(ctx context.Context, customer *domain.Customer, password *string) (*domain.Customer, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Customer, error)
}

// TokenIssuer mints access tokens for authenticated customers.
type TokenIssuer interface {
	Issue(customer *domain.Customer) (string, error)
}
