package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/commercekit/customer-system/internal/core/domain"
)

// TokenService mints HS256 customer access tokens.
type TokenService struct {
	secret   string
	tokenTTL time.Duration
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenService{secret: secret, tokenTTL: tokenTTL}
}

func (s *TokenService) Issue(customer *domain.Customer) (string, error) {
	claims := jwt.MapClaims{
		"customer_id": customer.ID,
		"email":       customer.Email,
		"kind":        domain.IdentityKindCustomer,
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}
