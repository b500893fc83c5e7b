package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/commercekit/customer-system/internal/core/domain"
	"github.com/commercekit/customer-system/internal/core/ports"
)

// AccountService implements account creation and authentication. It owns the
// field-level business rules and secret hashing; uniqueness is enforced by the
// repository's unique email index.
type AccountService struct {
	repo     ports.CustomerRepository
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAccountService(repo ports.CustomerRepository, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, validate: validator.New(), log: log}
}

// accountChecks mirrors the business rules enforced at account creation.
type accountChecks struct {
	Email       string `validate:"required,email"`
	Firstname   string `validate:"required"`
	Lastname    string `validate:"required"`
	Password    string `validate:"omitempty,min=8"`
	DateOfBirth string `validate:"omitempty,datetime=2006-01-02"`
	Gender      int    `validate:"gte=0,lte=3"`
}

// CreateAccount validates the entity fields, hashes the optional password, and
// persists the customer. The plaintext secret never leaves this call.
func (s *AccountService) CreateAccount(ctx context.Context, customer *domain.Customer, password *string) (*domain.Customer, error) {
	checks := accountChecks{
		Email:       customer.Email,
		Firstname:   customer.Firstname,
		Lastname:    customer.Lastname,
		DateOfBirth: customer.DateOfBirth,
		Gender:      customer.Gender,
	}
	if password != nil {
		checks.Password = *password
	}
	if err := s.validate.Struct(checks); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidation, checkMessages(ve))
		}
		return nil, err
	}

	var hash string
	if password != nil {
		h, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hash = string(h)
	}

	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	created, err := s.repo.Insert(ctx, customer, hash)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("customer_id", created.ID).
		Int64("website_id", created.WebsiteID).
		Msg("account created")

	return created, nil
}

// Authenticate verifies email/password credentials. Unknown emails and wrong
// passwords fail identically so callers cannot probe for accounts.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.Customer, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	customer, hash, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if hash == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return customer, nil
}

// checkMessages renders validation failures as one user-facing message.
func checkMessages(ve validator.ValidationErrors) string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "datetime":
			msgs = append(msgs, field+" must be a date in YYYY-MM-DD format")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation (%s)", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
