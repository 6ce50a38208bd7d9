package models

import "time"

const (
	// Kafka topics carrying status transitions from the ledger to the dispatcher.
	PaymentSettledEventTopic = "payments.settled"
	PaymentExpiredEventTopic = "payments.expired"
	WebhooksDLQTopic         = "webhooks.dlq"

	// Webhook event types merchants can subscribe to.
	EventPaymentSuccess = "payment.success"
	EventPaymentFailed  = "payment.failed"
	EventPaymentPending = "payment.pending"
)

// KnownEvents is the full set of subscribable webhook event types.
var KnownEvents = []string{EventPaymentSuccess, EventPaymentFailed, EventPaymentPending}

func IsKnownEvent(eventType string) bool {
	for _, ev := range KnownEvents {
		if ev == eventType {
			return true
		}
	}
	return false
}

// PaymentEvent is the payload delivered to webhook endpoints and carried on the
// internal topics. EventType selects which registrations receive it.
type PaymentEvent struct {
	EventType  string    `json:"event"`
	PaymentID  string    `json:"payment_id"`
	MerchantID string    `json:"merchant_id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	TxHash     string    `json:"tx_hash,omitempty"`
	Metadata   JSONMap   `json:"metadata,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DLQMessage wraps an undeliverable webhook envelope for the dead-letter topic.
type DLQMessage struct {
	RegistrationID string    `json:"registration_id"`
	URL            string    `json:"url"`
	Payload        string    `json:"payload"`
	Timestamp      time.Time `json:"timestamp"`
	Attempts       int       `json:"attempts"`
	LastError      string    `json:"last_error"`
}
