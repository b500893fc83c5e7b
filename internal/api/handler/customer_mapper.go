package handler

import (
	"github.com/commercekit/customer-system/internal/core/ports"
)

// toAccountInput maps the transport payload onto the typed service input.
// A nil payload maps to the zero input; the service gate rejects it.
func toAccountInput(in *accountInputRequest) ports.AccountInput {
	if in == nil {
		return ports.AccountInput{}
	}
	return ports.AccountInput{
		Email:        in.Email,
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Middlename:   in.Middlename,
		Prefix:       in.Prefix,
		Suffix:       in.Suffix,
		DateOfBirth:  in.DateOfBirth,
		Gender:       in.Gender,
		Taxvat:       in.Taxvat,
		Password:     in.Password,
		IsSubscribed: in.IsSubscribed,
	}
}

func toCustomerResponse(v ports.CustomerView) customerResponse {
	return customerResponse{
		ID:           v.ID,
		Email:        v.Email,
		Firstname:    v.Firstname,
		Lastname:     v.Lastname,
		Middlename:   v.Middlename,
		Prefix:       v.Prefix,
		Suffix:       v.Suffix,
		DateOfBirth:  v.DateOfBirth,
		Gender:       v.Gender,
		Taxvat:       v.Taxvat,
		WebsiteID:    v.WebsiteID,
		StoreID:      v.StoreID,
		CreatedAt:    v.CreatedAt.UTC(),
		IsSubscribed: v.IsSubscribed,
	}
}
