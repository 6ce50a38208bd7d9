package service

import (
	"context"

	"github.com/chainpay/gateway/internal/models"
)

// KeyRepo defines the read-only interface over the API key store. Key
// issuance lives in the merchant dashboard; the gateway only looks keys up.
type KeyRepo interface {
	GetBy(ctx context.Context, query string, args ...interface{}) (*[]models.APIKey, error)
}

// AuthService resolves API keys to merchant identities.
type AuthService struct {
	Repo KeyRepo
}

func NewAuthService(repo KeyRepo) *AuthService {
	return &AuthService{
		Repo: repo,
	}
}

// Lookup returns the active key record for an opaque credential, or
// ErrNotFound when the key is unknown or disabled.
func (s *AuthService) Lookup(ctx context.Context, apiKey string) (*models.APIKey, error) {
	keys, err := s.Repo.GetBy(ctx, "key = ? AND active = ?", apiKey, true)
	if err != nil {
		return nil, err
	}
	if keys == nil || len(*keys) == 0 {
		return nil, models.ErrNotFound
	}

	record := (*keys)[0]
	return &record, nil
}
