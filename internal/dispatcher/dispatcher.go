package dispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/chainpay/gateway/config"
	"github.com/chainpay/gateway/internal/models"
	"github.com/sirupsen/logrus"
)

// WebhookRepo loads the registrations a dispatch fans out to.
type WebhookRepo interface {
	GetBy(ctx context.Context, query string, args ...interface{}) (*[]models.WebhookRegistration, error)
}

// DeliveryRepo records per-registration delivery outcomes.
type DeliveryRepo interface {
	Create(ctx context.Context, delivery *models.WebhookDelivery) error
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Dispatcher fans a payment event out to every active registration of the
// owning merchant that subscribed to the event type. Each delivery is an HTTP
// POST of the JSON payload, signed with the registration secret, retried with
// exponential backoff and dead-lettered after the attempt budget runs out.
//
// Dispatch failures stay inside the dispatcher: nothing here can affect the
// payment row whose transition produced the event.
type Dispatcher struct {
	Webhooks    WebhookRepo
	Deliveries  DeliveryRepo
	DLQ         Publisher
	Client      *http.Client
	RetryConfig config.RetryConfig
}

func New(webhooks WebhookRepo, deliveries DeliveryRepo, dlq Publisher, timeout time.Duration, retryConfig config.RetryConfig) *Dispatcher {
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 5
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = time.Second
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 30 * time.Second
	}

	return &Dispatcher{
		Webhooks:   webhooks,
		Deliveries: deliveries,
		DLQ:        dlq,
		Client: &http.Client{
			Timeout: timeout,
		},
		RetryConfig: retryConfig,
	}
}

// Dispatch delivers the event to every matching registration. The returned
// error only covers loading the registrations; individual delivery failures
// are retried and dead-lettered, never propagated.
func (d *Dispatcher) Dispatch(ctx context.Context, event models.PaymentEvent) error {
	registrations, err := d.Webhooks.GetBy(ctx, "merchant_id = ? AND active = ?", event.MerchantID, true)
	if err != nil {
		return fmt.Errorf("loading webhook registrations: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event payload: %w", err)
	}

	for _, registration := range *registrations {
		if !registration.Events.Contains(event.EventType) {
			continue
		}
		d.deliver(ctx, registration, event, body)
	}

	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, registration models.WebhookRegistration, event models.PaymentEvent, body []byte) {
	var lastErr error

	for attempt := 0; attempt < d.RetryConfig.MaxAttempts; attempt++ {
		err := d.post(ctx, registration, event.EventType, body)
		if err == nil {
			if attempt > 0 {
				logrus.Infof("webhook %s delivered after %d attempts", registration.ID, attempt+1)
			}
			d.record(ctx, registration, event, attempt+1, models.DeliveryDelivered, nil)
			return
		}

		lastErr = err

		if attempt == d.RetryConfig.MaxAttempts-1 {
			break
		}

		delay := d.calculateBackoff(attempt)
		logrus.Warnf("webhook %s attempt %d/%d failed, retrying in %v: %v",
			registration.ID, attempt+1, d.RetryConfig.MaxAttempts, delay, err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			d.record(ctx, registration, event, attempt+1, models.DeliveryDead, ctx.Err())
			return
		}
	}

	logrus.Errorf("webhook %s dead-lettered after %d attempts: %v",
		registration.ID, d.RetryConfig.MaxAttempts, lastErr)
	d.record(ctx, registration, event, d.RetryConfig.MaxAttempts, models.DeliveryDead, lastErr)

	if d.DLQ != nil {
		dlqMessage := models.DLQMessage{
			RegistrationID: registration.ID,
			URL:            registration.URL,
			Payload:        string(body),
			Timestamp:      time.Now().UTC(),
			Attempts:       d.RetryConfig.MaxAttempts,
			LastError:      lastErr.Error(),
		}
		if err := d.DLQ.Publish(ctx, models.WebhooksDLQTopic, dlqMessage); err != nil {
			logrus.Errorf("failed to publish webhook %s to DLQ: %v", registration.ID, err)
		}
	}
}

func (d *Dispatcher) post(ctx context.Context, registration models.WebhookRegistration, eventType string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, registration.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ChainPay-Webhook/1.0")
	req.Header.Set(SignatureHeader, Sign(registration.Secret, body))
	req.Header.Set(EventHeader, eventType)

	resp, err := d.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}

	return nil
}

func (d *Dispatcher) record(ctx context.Context, registration models.WebhookRegistration, event models.PaymentEvent, attempts int, status models.DeliveryStatus, deliveryErr error) {
	delivery := &models.WebhookDelivery{
		RegistrationID:   registration.ID,
		PaymentRequestID: event.PaymentID,
		EventType:        event.EventType,
		Attempts:         attempts,
		Status:           status,
	}
	if deliveryErr != nil {
		delivery.LastError = deliveryErr.Error()
	}
	if err := d.Deliveries.Create(ctx, delivery); err != nil {
		logrus.Errorf("failed to record delivery for webhook %s: %v", registration.ID, err)
	}
}

func (d *Dispatcher) calculateBackoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * d.RetryConfig.BaseDelay

	if delay > d.RetryConfig.MaxDelay {
		delay = d.RetryConfig.MaxDelay
	}

	if d.RetryConfig.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}
