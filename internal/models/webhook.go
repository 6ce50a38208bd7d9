package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventList stores the subscribed event types as a comma-separated column.
type EventList []string

func (e EventList) Value() (driver.Value, error) {
	return strings.Join(e, ","), nil
}

func (e *EventList) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	case nil:
		*e = nil
		return nil
	default:
		return fmt.Errorf("unsupported events column type %T", value)
	}
	if s == "" {
		*e = nil
		return nil
	}
	*e = strings.Split(s, ",")
	return nil
}

// Contains reports whether the registration subscribed to the event type.
func (e EventList) Contains(eventType string) bool {
	for _, ev := range e {
		if ev == eventType {
			return true
		}
	}
	return false
}

// WebhookRegistration is a merchant's delivery endpoint for payment events.
// The secret signs every outgoing payload and is only ever returned in the
// creation response.
type WebhookRegistration struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	MerchantID string    `json:"merchant_id" gorm:"index"`
	URL        string    `json:"url"`
	Events     EventList `json:"events" gorm:"type:text"`
	Secret     string    `json:"-"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

func (w *WebhookRegistration) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}

	return
}

func (w *WebhookRegistration) Validate() error {
	if w.URL == "" {
		return fmt.Errorf("%w: url is required", ErrValidation)
	}
	if len(w.Events) == 0 {
		return fmt.Errorf("%w: at least one event type is required", ErrValidation)
	}
	for _, ev := range w.Events {
		if !IsKnownEvent(ev) {
			return fmt.Errorf("%w: unknown event type: %s", ErrValidation, ev)
		}
	}

	return nil
}
