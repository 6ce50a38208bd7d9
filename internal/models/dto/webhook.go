package dto

import (
	"strings"

	"github.com/chainpay/gateway/internal/models"
)

// RegisterWebhook is the body of POST /v1/webhook.
type RegisterWebhook struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
}

func (r *RegisterWebhook) Sanitize() {
	r.URL = strings.TrimSpace(r.URL)
	for i, ev := range r.Events {
		r.Events[i] = strings.ToLower(strings.TrimSpace(ev))
	}
}

// WebhookCreated echoes the registration along with the signing secret.
// The secret is shown exactly once; subsequent reads never include it.
type WebhookCreated struct {
	ID     string   `json:"id"`
	URL    string   `json:"url"`
	Events []string `json:"events"`
	Secret string   `json:"secret"`
}

func NewWebhookCreated(w *models.WebhookRegistration) WebhookCreated {
	return WebhookCreated{
		ID:     w.ID,
		URL:    w.URL,
		Events: w.Events,
		Secret: w.Secret,
	}
}
