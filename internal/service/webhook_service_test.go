package service_test

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/chainpay/gateway/internal/models"
	"github.com/chainpay/gateway/internal/models/dto"
	"github.com/chainpay/gateway/internal/service"
	"github.com/chainpay/gateway/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegisterWebhook_Success(t *testing.T) {
	mockRepo := mocks.NewMockWebhookRepo(t)
	webhookService := service.NewWebhookService(mockRepo)

	ctx := context.Background()

	mockRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.WebhookRegistration")).
		Return(nil).
		Once()

	webhook, err := webhookService.Register(ctx, "merchant-123", &dto.RegisterWebhook{
		URL:    "https://merchant.example.com/hooks",
		Events: []string{"payment.success", "payment.failed"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "merchant-123", webhook.MerchantID)
	assert.True(t, webhook.Active)
	assert.Equal(t, models.EventList{"payment.success", "payment.failed"}, webhook.Events)
	mockRepo.AssertExpectations(t)
}

func TestRegisterWebhook_SecretIs256BitHex(t *testing.T) {
	mockRepo := mocks.NewMockWebhookRepo(t)
	webhookService := service.NewWebhookService(mockRepo)

	ctx := context.Background()

	mockRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.WebhookRegistration")).
		Return(nil).
		Twice()

	first, err := webhookService.Register(ctx, "merchant-123", &dto.RegisterWebhook{
		URL:    "https://merchant.example.com/hooks",
		Events: []string{"payment.success"},
	})
	assert.NoError(t, err)

	second, err := webhookService.Register(ctx, "merchant-123", &dto.RegisterWebhook{
		URL:    "https://merchant.example.com/hooks",
		Events: []string{"payment.success"},
	})
	assert.NoError(t, err)

	raw, err := hex.DecodeString(first.Secret)
	assert.NoError(t, err)
	assert.Len(t, raw, 32)
	assert.NotEqual(t, first.Secret, second.Secret)
}

func TestRegisterWebhook_EmptyURL(t *testing.T) {
	mockRepo := mocks.NewMockWebhookRepo(t)
	webhookService := service.NewWebhookService(mockRepo)

	webhook, err := webhookService.Register(context.Background(), "merchant-123", &dto.RegisterWebhook{
		URL:    "",
		Events: []string{"payment.success"},
	})

	assert.Nil(t, webhook)
	assert.ErrorIs(t, err, models.ErrValidation)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterWebhook_EmptyEvents(t *testing.T) {
	mockRepo := mocks.NewMockWebhookRepo(t)
	webhookService := service.NewWebhookService(mockRepo)

	webhook, err := webhookService.Register(context.Background(), "merchant-123", &dto.RegisterWebhook{
		URL:    "https://merchant.example.com/hooks",
		Events: []string{},
	})

	assert.Nil(t, webhook)
	assert.ErrorIs(t, err, models.ErrValidation)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterWebhook_UnknownEvent(t *testing.T) {
	mockRepo := mocks.NewMockWebhookRepo(t)
	webhookService := service.NewWebhookService(mockRepo)

	webhook, err := webhookService.Register(context.Background(), "merchant-123", &dto.RegisterWebhook{
		URL:    "https://merchant.example.com/hooks",
		Events: []string{"payment.success", "payment.refunded"},
	})

	assert.Nil(t, webhook)
	assert.ErrorIs(t, err, models.ErrValidation)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
