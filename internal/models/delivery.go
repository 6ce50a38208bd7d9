package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryDead      DeliveryStatus = "dead"
)

// WebhookDelivery is the per-registration outcome of one dispatch attempt
// sequence. Dead-lettered envelopes are recorded here and on the DLQ topic,
// never discarded.
type WebhookDelivery struct {
	ID               string         `json:"id" gorm:"primaryKey"`
	RegistrationID   string         `json:"registration_id" gorm:"index"`
	PaymentRequestID string         `json:"payment_request_id" gorm:"index"`
	EventType        string         `json:"event_type"`
	Attempts         int            `json:"attempts"`
	Status           DeliveryStatus `json:"status"`
	LastError        string         `json:"last_error,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (d *WebhookDelivery) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}

	return
}
