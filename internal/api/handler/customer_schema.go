package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// accountInputRequest carries the caller-supplied account fields. Only payload
// shape is checked at this layer; field-level rules are enforced by the
// account service so their failures share the input-error contract.
type accountInputRequest struct {
	Email        string  `json:"email"`
	Firstname    string  `json:"firstname"`
	Lastname     string  `json:"lastname"`
	Middlename   string  `json:"middlename"`
	Prefix       string  `json:"prefix"`
	Suffix       string  `json:"suffix"`
	DateOfBirth  string  `json:"date_of_birth"`
	Gender       *int    `json:"gender"`
	Taxvat       string  `json:"taxvat"`
	Password     *string `json:"password"`
	IsSubscribed *bool   `json:"is_subscribed"`
}

type createCustomerRequest struct {
	Input *accountInputRequest `json:"input"`
}

type tokenRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type customerResponse struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	Middlename   string    `json:"middlename,omitempty"`
	Prefix       string    `json:"prefix,omitempty"`
	Suffix       string    `json:"suffix,omitempty"`
	DateOfBirth  string    `json:"date_of_birth,omitempty"`
	Gender       int       `json:"gender,omitempty"`
	Taxvat       string    `json:"taxvat,omitempty"`
	WebsiteID    int64     `json:"website_id"`
	StoreID      int64     `json:"store_id"`
	CreatedAt    time.Time `json:"created_at"`
	IsSubscribed bool      `json:"is_subscribed"`
}

// customerEnvelope wraps the customer view: {"customer": {...}}.
type customerEnvelope struct {
	Customer customerResponse `json:"customer"`
}

type tokenResponse struct {
	Token    string           `json:"token"`
	Customer customerResponse `json:"customer"`
}
