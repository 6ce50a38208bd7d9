package dto

import (
	"strings"
	"time"

	"github.com/chainpay/gateway/internal/models"
)

// CreatePayment is the body of POST /v1/payment. URLs are opaque strings the
// gateway round-trips without validating; metadata passes through verbatim.
type CreatePayment struct {
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	CallbackURL string         `json:"callback_url"`
	SuccessURL  string         `json:"success_url"`
	CancelURL   string         `json:"cancel_url"`
	Metadata    models.JSONMap `json:"metadata"`
}

func (p *CreatePayment) Sanitize() {
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	if p.Currency == "" {
		p.Currency = string(models.CurrencyETH)
	}
}

func (p *CreatePayment) ToEntity() *models.PaymentRequest {
	return &models.PaymentRequest{
		Amount:      p.Amount,
		Currency:    models.Currency(p.Currency),
		CallbackURL: p.CallbackURL,
		SuccessURL:  p.SuccessURL,
		CancelURL:   p.CancelURL,
		Metadata:    p.Metadata,
		Status:      models.StatusPending,
	}
}

// PaymentCreated is the creation response, including the shareable payment URL.
type PaymentCreated struct {
	ID         string    `json:"id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	PaymentURL string    `json:"payment_url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// PaymentView is the read model for GET /v1/payment/:id. Expired is derived
// from the wall clock at render time; the stored status stays pending.
type PaymentView struct {
	ID              string         `json:"id"`
	MerchantAddress string         `json:"merchant_address"`
	Amount          float64        `json:"amount"`
	Currency        string         `json:"currency"`
	Status          string         `json:"status"`
	TxHash          string         `json:"tx_hash,omitempty"`
	SuccessURL      string         `json:"success_url,omitempty"`
	CancelURL       string         `json:"cancel_url,omitempty"`
	Metadata        models.JSONMap `json:"metadata,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	ExpiresAt       time.Time      `json:"expires_at"`
	Expired         bool           `json:"expired"`
}

func NewPaymentView(p *models.PaymentRequest, now time.Time) PaymentView {
	return PaymentView{
		ID:              p.ID,
		MerchantAddress: p.MerchantAddress,
		Amount:          p.Amount,
		Currency:        string(p.Currency),
		Status:          string(p.Status),
		TxHash:          p.TxHash,
		SuccessURL:      p.SuccessURL,
		CancelURL:       p.CancelURL,
		Metadata:        p.Metadata,
		CreatedAt:       p.CreatedAt,
		ExpiresAt:       p.ExpiresAt,
		Expired:         p.Expired(now),
	}
}

// SettlePayment is the body of POST /v1/payment/:id/settle, reported by the
// payer's wallet client after the on-chain transfer resolves.
type SettlePayment struct {
	Outcome     string `json:"outcome"`
	TxHash      string `json:"tx_hash"`
	FromAddress string `json:"from_address"`
}

func (s *SettlePayment) Sanitize() {
	s.Outcome = strings.ToLower(strings.TrimSpace(s.Outcome))
	s.TxHash = strings.TrimSpace(s.TxHash)
	s.FromAddress = strings.TrimSpace(s.FromAddress)
}
