package domain

import (
	"errors"
	"time"
)

// Gender codes stored on a customer profile.
const (
	GenderUnspecified  = 0
	GenderMale         = 1
	GenderFemale       = 2
	GenderNotSpecified = 3
)

var ErrCustomerNotFound = errors.New("customer not found")
var ErrEmailExists = errors.New("a customer with the same email address already exists in an associated website")
var ErrInvalidCredentials = errors.New("invalid login or password")

// ErrValidation is the base kind for field-level business-rule failures reported
// by the account manager. Wrap it with the concrete message so errors.Is matches.
var ErrValidation = errors.New("validation failed")

// InputError is the single externally visible error kind for bad caller input:
// empty payloads, field-rule violations, and duplicate-account conflicts all
// surface as an InputError carrying the original message.
type InputError struct {
	Message string
}

// NewInputError builds an InputError with the given user-facing message.
func NewInputError(message string) *InputError {
	return &InputError{Message: message}
}

func (e *InputError) Error() string {
	return e.Message
}

// Customer is the account entity. The password secret is never carried here; it
// travels separately into the account manager and only its hash is persisted.
type Customer struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Firstname   string    `json:"firstname"`
	Lastname    string    `json:"lastname"`
	Middlename  string    `json:"middlename,omitempty"`
	Prefix      string    `json:"prefix,omitempty"`
	Suffix      string    `json:"suffix,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Gender      int       `json:"gender,omitempty"`
	Taxvat      string    `json:"taxvat,omitempty"`
	WebsiteID   int64     `json:"website_id"`
	StoreID     int64     `json:"store_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Notification is a pending storefront email recorded in the outbox collection.
type Notification struct {
	CustomerID int64
	Email      string
	Firstname  string
	Type       string
	StoreID    int64
	CreatedAt  time.Time
}

// NotificationCustomerWelcome is the outbox type for the registration email.
const NotificationCustomerWelcome = "customer_welcome"
