package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/chainpay/gateway/internal/middleware"
	"github.com/chainpay/gateway/internal/models"
	"github.com/chainpay/gateway/internal/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PaymentService interface {
	Create(ctx context.Context, key *models.APIKey, payment *dto.CreatePayment) (*models.PaymentRequest, error)
	Get(ctx context.Context, id string) (*models.PaymentRequest, error)
	List(ctx context.Context, merchantID string) (*[]models.PaymentRequest, error)
	Settle(ctx context.Context, id string, settle *dto.SettlePayment) (*models.PaymentRequest, error)
	PaymentURL(id string) string
}

type PaymentHandler struct {
	Service PaymentService
}

func NewPaymentHandler(s PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// POST /v1/payment
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	key, ok := middleware.KeyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "API key is required"})
		return
	}

	var req dto.CreatePayment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payment, err := h.Service.Create(c.Request.Context(), key, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentCreated{
		ID:         payment.ID,
		Amount:     payment.Amount,
		Currency:   string(payment.Currency),
		Status:     string(payment.Status),
		PaymentURL: h.Service.PaymentURL(payment.ID),
		ExpiresAt:  payment.ExpiresAt,
	})
}

// GET /v1/payment/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentView(payment, time.Now().UTC()))
}

// GET /v1/payment
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	key, ok := middleware.KeyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "API key is required"})
		return
	}

	payments, err := h.Service.List(c.Request.Context(), key.MerchantID)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now().UTC()
	views := make([]dto.PaymentView, 0, len(*payments))
	for i := range *payments {
		views = append(views, dto.NewPaymentView(&(*payments)[i], now))
	}

	c.JSON(http.StatusOK, views)
}

// POST /v1/payment/:id/settle
func (h *PaymentHandler) SettlePayment(c *gin.Context) {
	var req dto.SettlePayment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payment, err := h.Service.Settle(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentView(payment, time.Now().UTC()))
}

// respondError maps the domain error taxonomy onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrInvalidTransition), errors.Is(err, models.ErrExpired):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logrus.Errorf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
