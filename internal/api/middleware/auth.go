package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/commercekit/customer-system/internal/core/domain"
)

// Auth validates the Bearer token and binds the customer identity to both the
// echo context and the request context.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			customerID, ok := claims["customer_id"].(float64)
			if !ok || customerID <= 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing customer claim")
			}
			kind, _ := claims["kind"].(string)
			if kind == "" {
				kind = domain.IdentityKindCustomer
			}

			ident := domain.Identity{CustomerID: int64(customerID), Kind: kind}
			c.Set("customer_id", ident.CustomerID)
			c.Set("kind", ident.Kind)
			c.SetRequest(c.Request().WithContext(domain.WithIdentity(c.Request().Context(), ident)))

			return next(c)
		}
	}
}
