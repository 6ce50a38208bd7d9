package dispatcher_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chainpay/gateway/config"
	"github.com/chainpay/gateway/internal/dispatcher"
	"github.com/chainpay/gateway/internal/dispatcher/mocks"
	"github.com/chainpay/gateway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func fastRetry() config.RetryConfig {
	return config.RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		MaxDelay:    10 * time.Millisecond,
	}
}

func testEvent() models.PaymentEvent {
	return models.PaymentEvent{
		EventType:  models.EventPaymentSuccess,
		PaymentID:  "payment-123",
		MerchantID: "merchant-123",
		Amount:     0.1,
		Currency:   "ETH",
		Status:     "success",
		TxHash:     "0xdeadbeef",
		OccurredAt: time.Now().UTC(),
	}
}

func registration(secret string, events ...string) models.WebhookRegistration {
	return models.WebhookRegistration{
		ID:         "webhook-1",
		MerchantID: "merchant-123",
		Events:     models.EventList(events),
		Secret:     secret,
		Active:     true,
	}
}

func TestDispatch_DeliversSignedPayload(t *testing.T) {
	var gotBody []byte
	var gotSignature, gotEventHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get(dispatcher.SignatureHeader)
		gotEventHeader = r.Header.Get(dispatcher.EventHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	secret := "aabbccdd"
	reg := registration(secret, models.EventPaymentSuccess)
	reg.URL = server.URL

	mockWebhooks := mocks.NewMockWebhookRepo(t)
	mockDeliveries := mocks.NewMockDeliveryRepo(t)
	mockDLQ := mocks.NewMockPublisher(t)
	d := dispatcher.New(mockWebhooks, mockDeliveries, mockDLQ, 5*time.Second, fastRetry())

	ctx := context.Background()
	event := testEvent()
	regs := []models.WebhookRegistration{reg}

	mockWebhooks.EXPECT().
		GetBy(ctx, "merchant_id = ? AND active = ?", "merchant-123", true).
		Return(&regs, nil).
		Once()

	mockDeliveries.EXPECT().
		Create(ctx, mock.MatchedBy(func(delivery *models.WebhookDelivery) bool {
			return delivery.RegistrationID == "webhook-1" &&
				delivery.Status == models.DeliveryDelivered &&
				delivery.Attempts == 1
		})).
		Return(nil).
		Once()

	err := d.Dispatch(ctx, event)

	assert.NoError(t, err)
	assert.True(t, dispatcher.Verify(secret, gotBody, gotSignature))
	assert.Equal(t, models.EventPaymentSuccess, gotEventHeader)

	var delivered models.PaymentEvent
	assert.NoError(t, json.Unmarshal(gotBody, &delivered))
	assert.Equal(t, event.PaymentID, delivered.PaymentID)
	mockDLQ.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_FiltersByEventType(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// Registered for failures only; a success event must never reach it.
	reg := registration("secret", models.EventPaymentFailed)
	reg.URL = server.URL

	mockWebhooks := mocks.NewMockWebhookRepo(t)
	mockDeliveries := mocks.NewMockDeliveryRepo(t)
	mockDLQ := mocks.NewMockPublisher(t)
	d := dispatcher.New(mockWebhooks, mockDeliveries, mockDLQ, 5*time.Second, fastRetry())

	ctx := context.Background()
	regs := []models.WebhookRegistration{reg}

	mockWebhooks.EXPECT().
		GetBy(ctx, "merchant_id = ? AND active = ?", "merchant-123", true).
		Return(&regs, nil).
		Once()

	err := d.Dispatch(ctx, testEvent())

	assert.NoError(t, err)
	assert.Equal(t, int32(0), requests.Load())
	mockDeliveries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDispatch_RetryThenSuccess(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	reg := registration("secret", models.EventPaymentSuccess)
	reg.URL = server.URL

	mockWebhooks := mocks.NewMockWebhookRepo(t)
	mockDeliveries := mocks.NewMockDeliveryRepo(t)
	mockDLQ := mocks.NewMockPublisher(t)
	d := dispatcher.New(mockWebhooks, mockDeliveries, mockDLQ, 5*time.Second, fastRetry())

	ctx := context.Background()
	regs := []models.WebhookRegistration{reg}

	mockWebhooks.EXPECT().
		GetBy(ctx, "merchant_id = ? AND active = ?", "merchant-123", true).
		Return(&regs, nil).
		Once()

	mockDeliveries.EXPECT().
		Create(ctx, mock.MatchedBy(func(delivery *models.WebhookDelivery) bool {
			return delivery.Status == models.DeliveryDelivered && delivery.Attempts == 3
		})).
		Return(nil).
		Once()

	err := d.Dispatch(ctx, testEvent())

	assert.NoError(t, err)
	assert.Equal(t, int32(3), requests.Load())
	mockDLQ.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_ExhaustedRetriesDeadLetter(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	reg := registration("secret", models.EventPaymentSuccess)
	reg.URL = server.URL

	mockWebhooks := mocks.NewMockWebhookRepo(t)
	mockDeliveries := mocks.NewMockDeliveryRepo(t)
	mockDLQ := mocks.NewMockPublisher(t)
	d := dispatcher.New(mockWebhooks, mockDeliveries, mockDLQ, 5*time.Second, fastRetry())

	ctx := context.Background()
	regs := []models.WebhookRegistration{reg}

	mockWebhooks.EXPECT().
		GetBy(ctx, "merchant_id = ? AND active = ?", "merchant-123", true).
		Return(&regs, nil).
		Once()

	mockDeliveries.EXPECT().
		Create(ctx, mock.MatchedBy(func(delivery *models.WebhookDelivery) bool {
			return delivery.Status == models.DeliveryDead &&
				delivery.Attempts == 3 &&
				delivery.LastError != ""
		})).
		Return(nil).
		Once()

	mockDLQ.EXPECT().
		Publish(ctx, models.WebhooksDLQTopic, mock.MatchedBy(func(msg models.DLQMessage) bool {
			return msg.RegistrationID == "webhook-1" && msg.Attempts == 3
		})).
		Return(nil).
		Once()

	err := d.Dispatch(ctx, testEvent())

	assert.NoError(t, err)
	assert.Equal(t, int32(3), requests.Load())
}

func TestHandle_SettledTopic(t *testing.T) {
	mockWebhooks := mocks.NewMockWebhookRepo(t)
	mockDeliveries := mocks.NewMockDeliveryRepo(t)
	mockDLQ := mocks.NewMockPublisher(t)
	d := dispatcher.New(mockWebhooks, mockDeliveries, mockDLQ, 5*time.Second, fastRetry())

	ctx := context.Background()
	event := testEvent()
	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	empty := []models.WebhookRegistration{}
	mockWebhooks.EXPECT().
		GetBy(ctx, "merchant_id = ? AND active = ?", "merchant-123", true).
		Return(&empty, nil).
		Once()

	err = d.Handle(ctx, models.PaymentSettledEventTopic, payload)

	assert.NoError(t, err)
}

func TestHandle_UnknownTopic(t *testing.T) {
	mockWebhooks := mocks.NewMockWebhookRepo(t)
	mockDeliveries := mocks.NewMockDeliveryRepo(t)
	mockDLQ := mocks.NewMockPublisher(t)
	d := dispatcher.New(mockWebhooks, mockDeliveries, mockDLQ, 5*time.Second, fastRetry())

	err := d.Handle(context.Background(), "payments.created", []byte(`{}`))

	assert.Error(t, err)
	mockWebhooks.AssertNotCalled(t, "GetBy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_MalformedPayload(t *testing.T) {
	mockWebhooks := mocks.NewMockWebhookRepo(t)
	mockDeliveries := mocks.NewMockDeliveryRepo(t)
	mockDLQ := mocks.NewMockPublisher(t)
	d := dispatcher.New(mockWebhooks, mockDeliveries, mockDLQ, 5*time.Second, fastRetry())

	err := d.Handle(context.Background(), models.PaymentSettledEventTopic, []byte(`{"event":`))

	assert.Error(t, err)
	mockWebhooks.AssertNotCalled(t, "GetBy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
