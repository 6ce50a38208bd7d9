package app

import (
	"github.com/chainpay/gateway/internal/handlers"
	"github.com/chainpay/gateway/internal/middleware"
)

func (a *App) RegisterRoutes(auth middleware.AuthService, p *handlers.PaymentHandler, w *handlers.WebhookHandler) {
	v1 := a.Router.Group("/v1")

	authed := v1.Group("")
	authed.Use(middleware.APIKeyAuth(auth))
	authed.POST("/payment", p.CreatePayment)
	authed.GET("/payment", p.ListPayments)
	authed.POST("/webhook", w.RegisterWebhook)

	// Payer-facing routes: the wallet holder has no API key.
	v1.GET("/payment/:id", p.GetPayment)
	v1.POST("/payment/:id/settle", p.SettlePayment)
}
