package sweeper

import (
	"context"
	"time"

	"github.com/chainpay/gateway/internal/models"
	"github.com/sirupsen/logrus"
)

// PaymentRepo is the slice of the ledger store the sweeper needs.
type PaymentRepo interface {
	GetBy(ctx context.Context, query string, args ...interface{}) (*[]models.PaymentRequest, error)
	UpdateFields(ctx context.Context, values map[string]interface{}, query string, args ...interface{}) (int64, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Sweeper periodically notifies subscribers about payment requests that ran
// out their window while still pending. It never changes a request's status:
// expiry stays derived at read and settle time, the sweeper only emits the
// timeout event, at most once per request.
type Sweeper struct {
	Repo      PaymentRepo
	Publisher Publisher
	Interval  time.Duration
}

func NewSweeper(repo PaymentRepo, publisher Publisher, interval time.Duration) *Sweeper {
	if interval == 0 {
		interval = time.Minute
	}
	return &Sweeper{
		Repo:      repo,
		Publisher: publisher,
		Interval:  interval,
	}
}

// Start runs the sweep loop until the context is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				notified, err := s.Sweep(ctx)
				if err != nil {
					logrus.Errorf("expiry sweep failed: %v", err)
				} else if notified > 0 {
					logrus.Infof("expiry sweep notified %d timed out payment requests", notified)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Sweep finds pending requests past their window that have not been notified
// yet and publishes a timeout event for each. The notified stamp is written
// with a conditional update so concurrent sweepers emit each event once.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	expired, err := s.Repo.GetBy(ctx,
		"status = ? AND expires_at < ? AND expiry_notified_at IS NULL",
		models.StatusPending, now)
	if err != nil {
		return 0, err
	}

	notified := 0
	for _, payment := range *expired {
		rows, err := s.Repo.UpdateFields(ctx, map[string]interface{}{
			"expiry_notified_at": now,
		}, "id = ? AND expiry_notified_at IS NULL", payment.ID)
		if err != nil {
			logrus.Errorf("failed to stamp expiry notification for payment %s: %v", payment.ID, err)
			continue
		}
		if rows == 0 {
			continue
		}

		event := models.PaymentEvent{
			EventType:  models.EventPaymentPending,
			PaymentID:  payment.ID,
			MerchantID: payment.MerchantID,
			Amount:     payment.Amount,
			Currency:   string(payment.Currency),
			Status:     string(models.StatusPending),
			Metadata:   payment.Metadata,
			OccurredAt: now,
		}
		if err := s.Publisher.Publish(ctx, models.PaymentExpiredEventTopic, event); err != nil {
			logrus.Errorf("failed to publish timeout event for payment %s: %v", payment.ID, err)
			continue
		}
		notified++
	}

	return notified, nil
}
