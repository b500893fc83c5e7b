package ports

import (
	"context"
	"time"

	"github.com/commercekit/customer-system/internal/core/domain"
)

// AccountInput carries the caller-supplied account fields, already parsed into
// a typed structure by the transport layer. Optional fields use pointers so
// "absent" stays distinguishable from a zero value. The core only checks the
// payload for presence; field-level rules belong to the account manager.
type AccountInput struct {
	Email        string
	Firstname    string
	Lastname     string
	Middlename   string
	Prefix       string
	Suffix       string
	DateOfBirth  string
	Gender       *int
	Taxvat       string
	Password     *string
	IsSubscribed *bool
}

// IsEmpty reports whether no field at all was supplied.
func (in AccountInput) IsEmpty() bool {
	return in == AccountInput{}
}

// CustomerView is the externally returned account representation, assembled by
// a fresh read against persisted state — never synthesized from AccountInput.
type CustomerView struct {
	ID           int64
	Email        string
	Firstname    string
	Lastname     string
	Middlename   string
	Prefix       string
	Suffix       string
	DateOfBirth  string
	Gender       int
	Taxvat       string
	WebsiteID    int64
	StoreID      int64
	CreatedAt    time.Time
	IsSubscribed bool
}

// RegistrationResult is returned after a successful account creation.
type RegistrationResult struct {
	Customer CustomerView
	// Identity is the principal the request now acts as. Calling code decides
	// how to surface it (response payload, token, request-scoped state).
	Identity domain.Identity
}

// RegistrationService creates customer accounts.
type RegistrationService interface {
	Register(ctx context.Context, input AccountInput) (*RegistrationResult, error)
}
