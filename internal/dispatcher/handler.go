package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chainpay/gateway/internal/models"
)

// Handle is the consumer entry point: it decodes a message from one of the
// payment event topics and fans it out. Both topics carry PaymentEvent.
func (d *Dispatcher) Handle(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.PaymentSettledEventTopic, models.PaymentExpiredEventTopic:
		var event models.PaymentEvent
		if err := json.Unmarshal(value, &event); err != nil {
			return fmt.Errorf("error parsing payment event: %w", err)
		}
		return d.Dispatch(ctx, event)
	default:
		return fmt.Errorf("topic not allowed %s", topic)
	}
}
