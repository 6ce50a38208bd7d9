package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/chainpay/gateway/internal/models"
	"github.com/chainpay/gateway/internal/models/dto"
)

// WebhookRepo defines the interface for webhook registration persistence.
// Dispatch-time reads live behind the dispatcher's own interface.
type WebhookRepo interface {
	Create(ctx context.Context, webhook *models.WebhookRegistration) error
}

// WebhookService manages merchant webhook registrations. Each registration
// carries a signing secret generated here and returned exactly once.
type WebhookService struct {
	Repo WebhookRepo
}

func NewWebhookService(repo WebhookRepo) *WebhookService {
	return &WebhookService{
		Repo: repo,
	}
}

// Register validates and persists a new active registration for the merchant.
// The URL is stored opaque; only the event names are checked against the
// recognized set.
func (s *WebhookService) Register(ctx context.Context, merchantID string, webhookDTO *dto.RegisterWebhook) (*models.WebhookRegistration, error) {
	webhookDTO.Sanitize()

	secret, err := generateSecret()
	if err != nil {
		return nil, fmt.Errorf("generating webhook secret: %w", err)
	}

	webhook := &models.WebhookRegistration{
		MerchantID: merchantID,
		URL:        webhookDTO.URL,
		Events:     models.EventList(webhookDTO.Events),
		Secret:     secret,
		Active:     true,
	}

	if err := webhook.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, webhook); err != nil {
		return nil, err
	}

	return webhook, nil
}

// generateSecret draws 32 bytes (256 bits) from the system CSPRNG, hex
// encoded. It is never derivable from the registration id.
func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
