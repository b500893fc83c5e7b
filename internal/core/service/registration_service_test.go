package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/commercekit/customer-system/internal/core/domain"
	"github.com/commercekit/customer-system/internal/core/ports"
)

type stubStoreResolver struct {
	store    *domain.Store
	err      error
	calls    int
	lastCode string
}

func (s *stubStoreResolver) Resolve(ctx context.Context, code string) (*domain.Store, error) {
	s.calls++
	s.lastCode = code
	if s.err != nil {
		return nil, s.err
	}
	return s.store, nil
}

type stubAccountManager struct {
	created      *domain.Customer
	err          error
	calls        int
	lastPassword *string
}

func (s *stubAccountManager) CreateAccount(ctx context.Context, customer *domain.Customer, password *string) (*domain.Customer, error) {
	s.calls++
	s.lastPassword = password
	if s.err != nil {
		return nil, s.err
	}
	if s.created != nil {
		return s.created, nil
	}
	out := *customer
	out.ID = 42
	return &out, nil
}

func (s *stubAccountManager) Authenticate(ctx context.Context, email, password string) (*domain.Customer, error) {
	return nil, domain.ErrInvalidCredentials
}

type stubNewsletter struct {
	err        error
	calls      int
	lastID     int64
	lastValue  bool
	seenIdent  domain.Identity
	hadIdent   bool
	subscribed map[int64]bool
}

func (s *stubNewsletter) SetSubscribed(ctx context.Context, customerID int64, subscribed bool) error {
	s.calls++
	s.lastID = customerID
	s.lastValue = subscribed
	s.seenIdent, s.hadIdent = domain.IdentityFrom(ctx)
	if s.err != nil {
		return s.err
	}
	if s.subscribed == nil {
		s.subscribed = make(map[int64]bool)
	}
	s.subscribed[customerID] = subscribed
	return nil
}

func (s *stubNewsletter) IsSubscribed(ctx context.Context, customerID int64) (bool, error) {
	return s.subscribed[customerID], nil
}

type stubReader struct {
	view      *ports.CustomerView
	err       error
	calls     int
	lastID    int64
	seenIdent domain.Identity
	hadIdent  bool
}

func (s *stubReader) GetByID(ctx context.Context, id int64) (*ports.CustomerView, error) {
	s.calls++
	s.lastID = id
	s.seenIdent, s.hadIdent = domain.IdentityFrom(ctx)
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

type stubEnqueuer struct {
	inputs []ports.WelcomeNotificationInput
}

func (s *stubEnqueuer) Enqueue(in ports.WelcomeNotificationInput) {
	s.inputs = append(s.inputs, in)
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func defaultStore() *domain.Store {
	return &domain.Store{ID: 3, WebsiteID: 7, Code: "emea", Name: "EMEA"}
}

func defaultView() *ports.CustomerView {
	return &ports.CustomerView{
		ID:        42,
		Email:     "jane@example.com",
		Firstname: "Jane",
		Lastname:  "Doe",
		WebsiteID: 7,
		StoreID:   3,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func newTestRegistration(stores *stubStoreResolver, accounts *stubAccountManager, news *stubNewsletter, reader *stubReader, welcome WelcomeEnqueuer) *RegistrationService {
	return NewRegistrationService(stores, accounts, news, reader, welcome, zerolog.Nop())
}

func TestRegister_EmptyInput(t *testing.T) {
	stores := &stubStoreResolver{store: defaultStore()}
	accounts := &stubAccountManager{}
	news := &stubNewsletter{}
	reader := &stubReader{view: defaultView()}
	svc := newTestRegistration(stores, accounts, news, reader, nil)

	_, err := svc.Register(context.Background(), ports.AccountInput{})

	var ie *domain.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InputError, got %v", err)
	}
	if ie.Message != `"input" value should be specified` {
		t.Fatalf("unexpected message: %q", ie.Message)
	}
	if stores.calls != 0 || accounts.calls != 0 || news.calls != 0 || reader.calls != 0 {
		t.Fatalf("no collaborator should run on empty input")
	}
}

func TestRegister_Success(t *testing.T) {
	stores := &stubStoreResolver{store: defaultStore()}
	accounts := &stubAccountManager{}
	news := &stubNewsletter{}
	reader := &stubReader{view: defaultView()}
	welcome := &stubEnqueuer{}
	svc := newTestRegistration(stores, accounts, news, reader, welcome)

	ctx := domain.WithStoreCode(context.Background(), "emea")
	result, err := svc.Register(ctx, ports.AccountInput{
		Email:     "jane@example.com",
		Firstname: "Jane",
		Lastname:  "Doe",
		Password:  strPtr("hunter2hunter2"),
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if stores.lastCode != "emea" {
		t.Fatalf("expected store code from context, got %q", stores.lastCode)
	}
	if accounts.lastPassword == nil || *accounts.lastPassword != "hunter2hunter2" {
		t.Fatalf("password not forwarded to account creation")
	}
	if result.Identity.CustomerID != 42 || result.Identity.Kind != domain.IdentityKindCustomer {
		t.Fatalf("unexpected identity: %+v", result.Identity)
	}
	if result.Customer != *reader.view {
		t.Fatalf("result must be the read-back view, got %+v", result.Customer)
	}
	if reader.lastID != 42 {
		t.Fatalf("read-back used wrong id: %d", reader.lastID)
	}
	if !reader.hadIdent || reader.seenIdent.CustomerID != 42 {
		t.Fatalf("read-back should run under the new customer identity")
	}
	if len(welcome.inputs) != 1 || welcome.inputs[0].CustomerID != 42 {
		t.Fatalf("expected one welcome notification, got %+v", welcome.inputs)
	}
	// Not asked to subscribe.
	if news.calls != 0 {
		t.Fatalf("newsletter should not be touched without is_subscribed")
	}
}

func TestRegister_StoreScopeStamped(t *testing.T) {
	stores := &stubStoreResolver{store: defaultStore()}
	accounts := &stubAccountManager{}
	reader := &stubReader{view: defaultView()}

	var captured *domain.Customer
	captureAccounts := &captureAccountManager{inner: accounts, captured: &captured}
	svc := NewRegistrationService(stores, captureAccounts, &stubNewsletter{}, reader, nil, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.AccountInput{
		Email:     "jane@example.com",
		Firstname: "Jane",
		Lastname:  "Doe",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if captured == nil {
		t.Fatalf("entity never reached account creation")
	}
	if captured.WebsiteID != 7 || captured.StoreID != 3 {
		t.Fatalf("store scope not stamped: website=%d store=%d", captured.WebsiteID, captured.StoreID)
	}
}

type captureAccountManager struct {
	inner    *stubAccountManager
	captured **domain.Customer
}

func (c *captureAccountManager) CreateAccount(ctx context.Context, customer *domain.Customer, password *string) (*domain.Customer, error) {
	clone := *customer
	*c.captured = &clone
	return c.inner.CreateAccount(ctx, customer, password)
}

func (c *captureAccountManager) Authenticate(ctx context.Context, email, password string) (*domain.Customer, error) {
	return c.inner.Authenticate(ctx, email, password)
}

func TestRegister_SubscribeOnce(t *testing.T) {
	stores := &stubStoreResolver{store: defaultStore()}
	news := &stubNewsletter{}
	reader := &stubReader{view: defaultView()}
	svc := newTestRegistration(stores, &stubAccountManager{}, news, reader, nil)

	_, err := svc.Register(context.Background(), ports.AccountInput{
		Email:        "jane@example.com",
		Firstname:    "Jane",
		Lastname:     "Doe",
		IsSubscribed: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if news.calls != 1 {
		t.Fatalf("expected exactly one enrollment call, got %d", news.calls)
	}
	if news.lastID != 42 || !news.lastValue {
		t.Fatalf("unexpected enrollment args: id=%d value=%v", news.lastID, news.lastValue)
	}
	if !news.hadIdent || news.seenIdent.CustomerID != 42 {
		t.Fatalf("enrollment should run under the new customer identity")
	}
}

func TestRegister_SubscribeFalseSkipsEnrollment(t *testing.T) {
	news := &stubNewsletter{}
	svc := newTestRegistration(&stubStoreResolver{store: defaultStore()}, &stubAccountManager{}, news, &stubReader{view: defaultView()}, nil)

	_, err := svc.Register(context.Background(), ports.AccountInput{
		Email:        "jane@example.com",
		Firstname:    "Jane",
		Lastname:     "Doe",
		IsSubscribed: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if news.calls != 0 {
		t.Fatalf("enrollment must be skipped for is_subscribed=false")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	accounts := &stubAccountManager{err: domain.ErrEmailExists}
	news := &stubNewsletter{}
	reader := &stubReader{view: defaultView()}
	welcome := &stubEnqueuer{}
	svc := newTestRegistration(&stubStoreResolver{store: defaultStore()}, accounts, news, reader, welcome)

	result, err := svc.Register(context.Background(), ports.AccountInput{
		Email:     "jane@example.com",
		Firstname: "Jane",
		Lastname:  "Doe",
	})
	if result != nil {
		t.Fatalf("expected nil result on failure")
	}

	var ie *domain.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InputError, got %v", err)
	}
	if ie.Message != domain.ErrEmailExists.Error() {
		t.Fatalf("message should carry the duplicate text, got %q", ie.Message)
	}
	if news.calls != 0 || reader.calls != 0 || len(welcome.inputs) != 0 {
		t.Fatalf("nothing downstream should run after a failed creation")
	}
}

func TestRegister_ValidationError(t *testing.T) {
	accounts := &stubAccountManager{err: fmt.Errorf("%w: email must be a valid email", domain.ErrValidation)}
	svc := newTestRegistration(&stubStoreResolver{store: defaultStore()}, accounts, &stubNewsletter{}, &stubReader{view: defaultView()}, nil)

	_, err := svc.Register(context.Background(), ports.AccountInput{Email: "not-an-email"})

	var ie *domain.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InputError, got %v", err)
	}
}

func TestRegister_InfrastructureErrorUntranslated(t *testing.T) {
	cause := errors.New("connection reset")
	accounts := &stubAccountManager{err: cause}
	svc := newTestRegistration(&stubStoreResolver{store: defaultStore()}, accounts, &stubNewsletter{}, &stubReader{view: defaultView()}, nil)

	_, err := svc.Register(context.Background(), ports.AccountInput{
		Email:     "jane@example.com",
		Firstname: "Jane",
		Lastname:  "Doe",
	})

	var ie *domain.InputError
	if errors.As(err, &ie) {
		t.Fatalf("infrastructure failure must not become an input error")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected the original error, got %v", err)
	}
}

func TestRegister_StoreResolutionFailure(t *testing.T) {
	stores := &stubStoreResolver{err: domain.ErrStoreNotFound}
	accounts := &stubAccountManager{}
	svc := newTestRegistration(stores, accounts, &stubNewsletter{}, &stubReader{view: defaultView()}, nil)

	_, err := svc.Register(context.Background(), ports.AccountInput{
		Email:     "jane@example.com",
		Firstname: "Jane",
		Lastname:  "Doe",
	})
	if !errors.Is(err, domain.ErrStoreNotFound) {
		t.Fatalf("expected store error, got %v", err)
	}
	if accounts.calls != 0 {
		t.Fatalf("account creation must not run without a resolved store")
	}
}

func TestRegister_SubscriptionFailureIsFatal(t *testing.T) {
	news := &stubNewsletter{err: errors.New("write timeout")}
	reader := &stubReader{view: defaultView()}
	svc := newTestRegistration(&stubStoreResolver{store: defaultStore()}, &stubAccountManager{}, news, reader, nil)

	_, err := svc.Register(context.Background(), ports.AccountInput{
		Email:        "jane@example.com",
		Firstname:    "Jane",
		Lastname:     "Doe",
		IsSubscribed: boolPtr(true),
	})
	if err == nil {
		t.Fatalf("expected enrollment failure to surface")
	}
	var ie *domain.InputError
	if errors.As(err, &ie) {
		t.Fatalf("enrollment failure must stay untranslated, got %v", err)
	}
	if reader.calls != 0 {
		t.Fatalf("read-back must not run after a failed enrollment")
	}
}

func TestRegister_ReadBackFailurePropagates(t *testing.T) {
	cause := errors.New("cursor timeout")
	reader := &stubReader{err: cause}
	svc := newTestRegistration(&stubStoreResolver{store: defaultStore()}, &stubAccountManager{}, &stubNewsletter{}, reader, nil)

	_, err := svc.Register(context.Background(), ports.AccountInput{
		Email:     "jane@example.com",
		Firstname: "Jane",
		Lastname:  "Doe",
	})
	if !errors.Is(err, cause) {
		t.Fatalf("read-back failure should propagate untouched, got %v", err)
	}
}

func TestRegister_NoWelcomeOnFailure(t *testing.T) {
	welcome := &stubEnqueuer{}
	accounts := &stubAccountManager{err: domain.ErrEmailExists}
	svc := newTestRegistration(&stubStoreResolver{store: defaultStore()}, accounts, &stubNewsletter{}, &stubReader{view: defaultView()}, welcome)

	_, _ = svc.Register(context.Background(), ports.AccountInput{
		Email:     "jane@example.com",
		Firstname: "Jane",
		Lastname:  "Doe",
	})
	if len(welcome.inputs) != 0 {
		t.Fatalf("welcome notification must not fire on failure")
	}
}
