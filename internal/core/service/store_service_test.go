package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/commercekit/customer-system/internal/core/domain"
)

type stubStoreRepo struct {
	stores map[string]*domain.Store
	calls  int
}

func (r *stubStoreRepo) FindByCode(_ context.Context, code string) (*domain.Store, error) {
	r.calls++
	s, ok := r.stores[code]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	return s, nil
}

type stubStoreCache struct {
	stores  map[string]*domain.Store
	getErr  error
	setErr  error
	sets    int
	lastSet *domain.Store
}

func (c *stubStoreCache) Get(_ context.Context, code string) (*domain.Store, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.stores[code], nil
}

func (c *stubStoreCache) Set(_ context.Context, store *domain.Store) error {
	c.sets++
	c.lastSet = store
	return c.setErr
}

func TestStoreResolve_CacheHit(t *testing.T) {
	store := &domain.Store{ID: 3, WebsiteID: 7, Code: "emea"}
	repo := &stubStoreRepo{stores: map[string]*domain.Store{}}
	cache := &stubStoreCache{stores: map[string]*domain.Store{"emea": store}}
	svc := NewStoreService(repo, cache, "default", zerolog.Nop())

	got, err := svc.Resolve(context.Background(), "emea")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != store {
		t.Fatalf("expected cached store, got %+v", got)
	}
	if repo.calls != 0 {
		t.Fatalf("repository must not be hit on a cache hit")
	}
}

func TestStoreResolve_CacheMissFillsCache(t *testing.T) {
	store := &domain.Store{ID: 3, WebsiteID: 7, Code: "emea"}
	repo := &stubStoreRepo{stores: map[string]*domain.Store{"emea": store}}
	cache := &stubStoreCache{stores: map[string]*domain.Store{}}
	svc := NewStoreService(repo, cache, "default", zerolog.Nop())

	got, err := svc.Resolve(context.Background(), "emea")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != store {
		t.Fatalf("expected repository store, got %+v", got)
	}
	if cache.sets != 1 || cache.lastSet != store {
		t.Fatalf("resolved store should be cached")
	}
}

func TestStoreResolve_CacheErrorFallsBack(t *testing.T) {
	store := &domain.Store{ID: 3, WebsiteID: 7, Code: "emea"}
	repo := &stubStoreRepo{stores: map[string]*domain.Store{"emea": store}}
	cache := &stubStoreCache{getErr: errors.New("redis down")}
	svc := NewStoreService(repo, cache, "default", zerolog.Nop())

	got, err := svc.Resolve(context.Background(), "emea")
	if err != nil {
		t.Fatalf("cache failure must not fail resolution: %v", err)
	}
	if got != store {
		t.Fatalf("expected repository store, got %+v", got)
	}
}

func TestStoreResolve_EmptyCodeUsesDefault(t *testing.T) {
	store := &domain.Store{ID: 1, WebsiteID: 1, Code: "default"}
	repo := &stubStoreRepo{stores: map[string]*domain.Store{"default": store}}
	svc := NewStoreService(repo, nil, "default", zerolog.Nop())

	got, err := svc.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Code != "default" {
		t.Fatalf("expected default store, got %+v", got)
	}
}

func TestStoreResolve_Unknown(t *testing.T) {
	repo := &stubStoreRepo{stores: map[string]*domain.Store{}}
	svc := NewStoreService(repo, nil, "default", zerolog.Nop())

	if _, err := svc.Resolve(context.Background(), "nope"); !errors.Is(err, domain.ErrStoreNotFound) {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}
