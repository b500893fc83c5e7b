package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/commercekit/customer-system/internal/core/domain"
)

func runStoreScope(t *testing.T, header string) string {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/customers", nil)
	if header != "" {
		req.Header.Set(HeaderStore, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	next := func(c echo.Context) error {
		seen = domain.StoreCodeFrom(c.Request().Context())
		return nil
	}
	if err := StoreScope("default")(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return seen
}

func TestStoreScope_HeaderSet(t *testing.T) {
	if got := runStoreScope(t, "emea"); got != "emea" {
		t.Fatalf("expected emea, got %q", got)
	}
}

func TestStoreScope_HeaderAbsent(t *testing.T) {
	if got := runStoreScope(t, ""); got != "default" {
		t.Fatalf("expected default store code, got %q", got)
	}
}
