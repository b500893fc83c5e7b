package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/commercekit/customer-system/internal/core/domain"
	"github.com/commercekit/customer-system/internal/core/ports"
)

// WelcomeEnqueuer abstracts the async welcome-notification queue. Enqueueing is
// best-effort and never fails the registration.
type WelcomeEnqueuer interface {
	Enqueue(in ports.WelcomeNotificationInput)
}

// RegistrationService coordinates customer account creation: payload gate,
// entity building, creation, identity binding, optional newsletter enrollment,
// and the read-back of the persisted representation. A created account is never
// rolled back when a later step fails.
type RegistrationService struct {
	stores     ports.StoreResolver
	accounts   ports.AccountManager
	newsletter ports.NewsletterManager
	reader     ports.CustomerReader
	welcome    WelcomeEnqueuer // optional
	log        zerolog.Logger
}

func NewRegistrationService(
	stores ports.StoreResolver,
	accounts ports.AccountManager,
	newsletter ports.NewsletterManager,
	reader ports.CustomerReader,
	welcome WelcomeEnqueuer,
	log zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		stores:     stores,
		accounts:   accounts,
		newsletter: newsletter,
		reader:     reader,
		welcome:    welcome,
		log:        log,
	}
}

// Register creates a customer account from input and returns the persisted
// representation together with the identity the request now acts as.
func (s *RegistrationService) Register(ctx context.Context, input ports.AccountInput) (*ports.RegistrationResult, error) {
	// Payload gate: nothing downstream runs for an empty input.
	if input.IsEmpty() {
		return nil, domain.NewInputError(`"input" value should be specified`)
	}

	store, err := s.stores.Resolve(ctx, domain.StoreCodeFrom(ctx))
	if err != nil {
		return nil, err
	}

	customer := buildCustomer(input, store)

	created, err := s.accounts.CreateAccount(ctx, customer, input.Password)
	if err != nil {
		s.log.Error().Err(err).Str("store", store.Code).Msg("account creation failed")
		return nil, translateAccountError(err)
	}

	// The request is now authenticated as the new customer; newsletter
	// enrollment and the read-back run under that identity.
	ident := domain.Identity{CustomerID: created.ID, Kind: domain.IdentityKindCustomer}
	ctx = domain.WithIdentity(ctx, ident)

	if input.IsSubscribed != nil && *input.IsSubscribed {
		if err := s.newsletter.SetSubscribed(ctx, created.ID, true); err != nil {
			s.log.Error().Err(err).Int64("customer_id", created.ID).Msg("newsletter enrollment failed")
			return nil, translateAccountError(err)
		}
	}

	if s.welcome != nil {
		s.welcome.Enqueue(ports.WelcomeNotificationInput{
			CustomerID: created.ID,
			Email:      created.Email,
			Firstname:  created.Firstname,
			StoreID:    created.StoreID,
		})
	}

	view, err := s.reader.GetByID(ctx, created.ID)
	if err != nil {
		// The account exists at this point; the caller sees an opaque failure.
		s.log.Error().Err(err).Int64("customer_id", created.ID).Msg("read-back after creation failed")
		return nil, err
	}

	s.log.Info().
		Int64("customer_id", created.ID).
		Str("store", store.Code).
		Msg("customer registered")

	return &ports.RegistrationResult{Customer: *view, Identity: ident}, nil
}

// buildCustomer copies the recognized input fields onto a fresh entity and
// stamps the resolved store scope. Website and store ids are never
// caller-controlled; the password is deliberately not part of the entity.
func buildCustomer(in ports.AccountInput, store *domain.Store) *domain.Customer {
	c := &domain.Customer{
		Email:       in.Email,
		Firstname:   in.Firstname,
		Lastname:    in.Lastname,
		Middlename:  in.Middlename,
		Prefix:      in.Prefix,
		Suffix:      in.Suffix,
		DateOfBirth: in.DateOfBirth,
		Taxvat:      in.Taxvat,
	}
	if in.Gender != nil {
		c.Gender = *in.Gender
	}
	c.WebsiteID = store.WebsiteID
	c.StoreID = store.ID
	return c
}

// translateAccountError rewrites field-validation and duplicate-account
// failures into the external input-error kind, preserving the original
// message. Every other failure propagates unmodified so internal detail stays
// opaque to callers.
func translateAccountError(err error) error {
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrEmailExists) {
		return domain.NewInputError(err.Error())
	}
	return err
}
