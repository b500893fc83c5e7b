package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/commercekit/customer-system/internal/core/domain"
)

// HeaderStore carries the store code selecting the scope for the request.
const HeaderStore = "Store"

// StoreScope reads the Store header and binds the store code to the request
// context. An absent or blank header falls back to the default store code.
func StoreScope(defaultCode string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			code := c.Request().Header.Get(HeaderStore)
			if code == "" {
				code = defaultCode
			}
			c.SetRequest(c.Request().WithContext(domain.WithStoreCode(c.Request().Context(), code)))
			return next(c)
		}
	}
}
