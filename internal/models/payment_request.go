package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string
type Currency string

const (
	StatusPending PaymentStatus = "pending"
	StatusSuccess PaymentStatus = "success"
	StatusFailed  PaymentStatus = "failed"

	CurrencyETH Currency = "ETH"

	// ExpiryWindow bounds how long a payment request stays payable.
	ExpiryWindow = 30 * time.Minute
)

// JSONMap round-trips arbitrary merchant metadata through a text column.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported metadata column type %T", value)
	}
	return json.Unmarshal(data, m)
}

// PaymentRequest is a merchant-created intent to receive a specific amount,
// payable until ExpiresAt. Rows are never deleted; terminal status plus the
// transactions table form the audit trail.
type PaymentRequest struct {
	ID               string        `json:"id" gorm:"primaryKey"`
	MerchantID       string        `json:"merchant_id" gorm:"index"`
	MerchantAddress  string        `json:"merchant_address"`
	Amount           float64       `json:"amount"`
	Currency         Currency      `json:"currency"`
	CallbackURL      string        `json:"callback_url,omitempty"`
	SuccessURL       string        `json:"success_url,omitempty"`
	CancelURL        string        `json:"cancel_url,omitempty"`
	Metadata         JSONMap       `json:"metadata" gorm:"type:text"`
	Status           PaymentStatus `json:"status"`
	TxHash           string        `json:"tx_hash,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	ExpiresAt        time.Time     `json:"expires_at"`
	SettledAt        *time.Time    `json:"settled_at,omitempty"`
	ExpiryNotifiedAt *time.Time    `json:"-"`
}

func (p *PaymentRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return
}

func (p *PaymentRequest) Validate() error {
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	if !p.Currency.IsValid() {
		return fmt.Errorf("%w: invalid currency: %s", ErrValidation, p.Currency)
	}
	if p.MerchantID == "" {
		return fmt.Errorf("%w: merchant ID is required", ErrValidation)
	}

	return nil
}

// Expired reports whether the request has outlived its payment window.
// Expiry is derived from the wall clock, never written back to the row.
func (p *PaymentRequest) Expired(now time.Time) bool {
	return p.Status == StatusPending && now.After(p.ExpiresAt)
}

// Terminal reports whether status can no longer change.
func (p *PaymentRequest) Terminal() bool {
	return p.Status == StatusSuccess || p.Status == StatusFailed
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyETH:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusSuccess, StatusFailed:
		return true
	default:
		return false
	}
}
