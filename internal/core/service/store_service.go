package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/commercekit/customer-system/internal/core/domain"
	"github.com/commercekit/customer-system/internal/core/ports"
)

// StoreService resolves store scopes with a cache in front of the repository.
type StoreService struct {
	repo        ports.StoreRepository
	cache       ports.StoreCache // optional
	defaultCode string
	log         zerolog.Logger
}

func NewStoreService(repo ports.StoreRepository, cache ports.StoreCache, defaultCode string, log zerolog.Logger) *StoreService {
	return &StoreService{repo: repo, cache: cache, defaultCode: defaultCode, log: log}
}

// Resolve returns the store scope for code, falling back to the default store
// when code is empty. Cache failures degrade to a repository lookup.
func (s *StoreService) Resolve(ctx context.Context, code string) (*domain.Store, error) {
	if code == "" {
		code = s.defaultCode
	}

	if s.cache != nil {
		store, err := s.cache.Get(ctx, code)
		if err != nil {
			s.log.Warn().Err(err).Str("store", code).Msg("store cache lookup failed, falling back to repository")
		} else if store != nil {
			return store, nil
		}
	}

	store, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, store); err != nil {
			s.log.Warn().Err(err).Str("store", code).Msg("failed to cache store")
		}
	}

	return store, nil
}
