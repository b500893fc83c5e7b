package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/commercekit/customer-system/internal/api/metrics"
	"github.com/commercekit/customer-system/internal/core/domain"
	"github.com/commercekit/customer-system/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer account operations.
type CustomerHandler struct {
	registration ports.RegistrationService
	accounts     ports.AccountManager
	tokens       ports.TokenIssuer
	reader       ports.CustomerReader
}

func NewCustomerHandler(
	registration ports.RegistrationService,
	accounts ports.AccountManager,
	tokens ports.TokenIssuer,
	reader ports.CustomerReader,
) *CustomerHandler {
	return &CustomerHandler{
		registration: registration,
		accounts:     accounts,
		tokens:       tokens,
		reader:       reader,
	}
}

// Create handles POST /v1/customers.
//
// @Summary      Create a customer account
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        Store  header    string                 false  "Store code selecting the scope (default store when absent)"
// @Param        body   body      createCustomerRequest  true   "Account fields under the input key"
// @Success      201    {object}  customerEnvelope
// @Failure      400    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /v1/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	start := time.Now()
	result, err := h.registration.Register(c.Request().Context(), toAccountInput(req.Input))
	if err != nil {
		metrics.RegistrationErrorsTotal.WithLabelValues(registrationErrorReason(err)).Inc()
		metrics.RegistrationDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return err
	}
	metrics.CustomersRegisteredTotal.WithLabelValues(strconv.FormatInt(result.Customer.StoreID, 10)).Inc()
	metrics.RegistrationDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())

	// The caller acts as the new customer for the remainder of this request.
	bindIdentity(c, result.Identity)

	return c.JSON(http.StatusCreated, customerEnvelope{Customer: toCustomerResponse(result.Customer)})
}

// Token handles POST /v1/customers/token. It authenticates a customer and
// returns a JWT.
//
// @Summary      Issue a customer access token
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Customer credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/customers/token [post]
func (h *CustomerHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	customer, err := h.accounts.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	token, err := h.tokens.Issue(customer)
	if err != nil {
		return err
	}

	view, err := h.reader.GetByID(c.Request().Context(), customer.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token, Customer: toCustomerResponse(*view)})
}

// Me handles GET /v1/customers/me. It returns the authenticated customer.
//
// @Summary      Get the authenticated customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  customerEnvelope
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/customers/me [get]
func (h *CustomerHandler) Me(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	view, err := h.reader.GetByID(c.Request().Context(), ident.CustomerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customerEnvelope{Customer: toCustomerResponse(*view)})
}

// registrationErrorReason buckets a registration failure for metrics.
func registrationErrorReason(err error) string {
	var ie *domain.InputError
	switch {
	case errors.As(err, &ie):
		return "input"
	case errors.Is(err, domain.ErrStoreNotFound):
		return "store"
	default:
		return "internal"
	}
}
