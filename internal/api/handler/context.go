package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commercekit/customer-system/internal/core/domain"
)

// bindIdentity records the identity on the echo context for downstream
// middleware and logging. Used by the create handler once the request becomes
// authenticated as the new customer, and by the Auth middleware on token auth.
func bindIdentity(c echo.Context, ident domain.Identity) {
	c.Set("customer_id", ident.CustomerID)
	c.Set("kind", ident.Kind)
}

// ctxIdentity extracts the customer identity injected by the Auth middleware
// and performs a fast-fail check before any service call: a request without a
// bound customer identity is rejected with 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, _ := c.Get("customer_id").(int64)
	kind, _ := c.Get("kind").(string)
	if id <= 0 || kind != domain.IdentityKindCustomer {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Identity{CustomerID: id, Kind: kind}, nil
}
