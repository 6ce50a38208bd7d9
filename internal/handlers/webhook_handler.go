package handlers

import (
	"context"
	"net/http"

	"github.com/chainpay/gateway/internal/middleware"
	"github.com/chainpay/gateway/internal/models"
	"github.com/chainpay/gateway/internal/models/dto"
	"github.com/gin-gonic/gin"
)

type WebhookService interface {
	Register(ctx context.Context, merchantID string, webhook *dto.RegisterWebhook) (*models.WebhookRegistration, error)
}

type WebhookHandler struct {
	Service WebhookService
}

func NewWebhookHandler(s WebhookService) *WebhookHandler {
	return &WebhookHandler{Service: s}
}

// POST /v1/webhook
//
// The response is the only place the signing secret ever appears.
func (h *WebhookHandler) RegisterWebhook(c *gin.Context) {
	key, ok := middleware.KeyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "API key is required"})
		return
	}

	var req dto.RegisterWebhook
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	webhook, err := h.Service.Register(c.Request.Context(), key.MerchantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWebhookCreated(webhook))
}
