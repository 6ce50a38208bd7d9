package sweeper_test

import (
	"context"
	"testing"
	"time"

	"github.com/chainpay/gateway/internal/models"
	"github.com/chainpay/gateway/internal/service/mocks"
	"github.com/chainpay/gateway/internal/sweeper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func expiredPayment(id string) models.PaymentRequest {
	created := time.Now().UTC().Add(-2 * models.ExpiryWindow)
	return models.PaymentRequest{
		ID:         id,
		MerchantID: "merchant-123",
		Amount:     0.5,
		Currency:   models.CurrencyETH,
		Status:     models.StatusPending,
		CreatedAt:  created,
		ExpiresAt:  created.Add(models.ExpiryWindow),
	}
}

func TestSweep_NotifiesTimedOutRequests(t *testing.T) {
	mockRepo := mocks.NewMockPaymentRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	s := sweeper.NewSweeper(mockRepo, mockPublisher, time.Minute)

	ctx := context.Background()
	expired := []models.PaymentRequest{expiredPayment("payment-1")}

	mockRepo.EXPECT().
		GetBy(ctx, "status = ? AND expires_at < ? AND expiry_notified_at IS NULL",
			models.StatusPending, mock.AnythingOfType("time.Time")).
		Return(&expired, nil).
		Once()

	mockRepo.EXPECT().
		UpdateFields(ctx, mock.AnythingOfType("map[string]interface {}"),
			"id = ? AND expiry_notified_at IS NULL", "payment-1").
		Return(int64(1), nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentExpiredEventTopic, mock.MatchedBy(func(event models.PaymentEvent) bool {
			return event.EventType == models.EventPaymentPending &&
				event.PaymentID == "payment-1" &&
				event.Status == string(models.StatusPending)
		})).
		Return(nil).
		Once()

	notified, err := s.Sweep(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, notified)
}

func TestSweep_SkipsAlreadyNotified(t *testing.T) {
	mockRepo := mocks.NewMockPaymentRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	s := sweeper.NewSweeper(mockRepo, mockPublisher, time.Minute)

	ctx := context.Background()
	expired := []models.PaymentRequest{expiredPayment("payment-1")}

	mockRepo.EXPECT().
		GetBy(ctx, "status = ? AND expires_at < ? AND expiry_notified_at IS NULL",
			models.StatusPending, mock.AnythingOfType("time.Time")).
		Return(&expired, nil).
		Once()

	// A concurrent sweeper already stamped the row.
	mockRepo.EXPECT().
		UpdateFields(ctx, mock.AnythingOfType("map[string]interface {}"),
			"id = ? AND expiry_notified_at IS NULL", "payment-1").
		Return(int64(0), nil).
		Once()

	notified, err := s.Sweep(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 0, notified)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweep_NothingExpired(t *testing.T) {
	mockRepo := mocks.NewMockPaymentRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	s := sweeper.NewSweeper(mockRepo, mockPublisher, time.Minute)

	ctx := context.Background()
	empty := []models.PaymentRequest{}

	mockRepo.EXPECT().
		GetBy(ctx, "status = ? AND expires_at < ? AND expiry_notified_at IS NULL",
			models.StatusPending, mock.AnythingOfType("time.Time")).
		Return(&empty, nil).
		Once()

	notified, err := s.Sweep(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 0, notified)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
