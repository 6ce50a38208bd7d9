package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/chainpay/gateway/config"
	"github.com/chainpay/gateway/internal/dispatcher"
	"github.com/chainpay/gateway/internal/handlers"
	"github.com/chainpay/gateway/internal/models"
	"github.com/chainpay/gateway/internal/publisher"
	"github.com/chainpay/gateway/internal/repository/posgrest"
	"github.com/chainpay/gateway/internal/service"
	"github.com/chainpay/gateway/internal/subscriber"
	"github.com/chainpay/gateway/internal/sweeper"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.PaymentRequest{},
		&models.WebhookRegistration{},
		&models.APIKey{},
		&models.Transaction{},
		&models.WebhookDelivery{},
	); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	paymentRepo := posgrest.New[models.PaymentRequest](db)
	webhookRepo := posgrest.New[models.WebhookRegistration](db)
	keyRepo := posgrest.New[models.APIKey](db)
	txRepo := posgrest.New[models.Transaction](db)
	deliveryRepo := posgrest.New[models.WebhookDelivery](db)

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	eventPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	paymentService := service.NewPaymentService(paymentRepo, txRepo, eventPublisher, cfg.APP.BaseURL)
	webhookService := service.NewWebhookService(webhookRepo)
	authService := service.NewAuthService(keyRepo)

	paymentHandler := handlers.NewPaymentHandler(paymentService)
	webhookHandler := handlers.NewWebhookHandler(webhookService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(authService, paymentHandler, webhookHandler)

	eventDispatcher := dispatcher.New(webhookRepo, deliveryRepo, eventPublisher, cfg.Webhook.Timeout, cfg.Webhook.GetRetryConfig())

	ctx := context.Background()
	a.initSubscribers(ctx, eventDispatcher, eventPublisher)

	if cfg.Sweep.Enabled {
		sweeper.NewSweeper(paymentRepo, eventPublisher, cfg.Sweep.Interval).Start(ctx)
	}
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) initSubscribers(ctx context.Context, eventDispatcher *dispatcher.Dispatcher, eventPublisher *publisher.KafkaPublisher) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.ConsumerGroup

	consumer := subscriber.NewMultiTopicConsumer(brokers, topics, groupID, eventPublisher, a.config.Kafka.GetRetryConfig())
	consumer.Listen(ctx, func(topic string, value []byte) error {
		return eventDispatcher.Handle(ctx, topic, value)
	})
}
