package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Webhook
	Sweep
}

type APP struct {
	PORT    string `env:"APP_PORT" envDefault:"8080"`
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type Kafka struct {
	Brokers          string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup    string `env:"KAFKA_DISPATCHER_GROUP_ID" envDefault:"webhook-dispatcher"`
	PublishTopics    string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payments.settled,payments.expired,webhooks.dlq"`
	SubscriberTopics string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"payments.settled,payments.expired"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Webhook struct {
	Timeout          time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"30s"`
	RetryMaxAttempts int           `env:"WEBHOOK_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"WEBHOOK_RETRY_BASE_DELAY" envDefault:"1s"`
	RetryMaxDelay    time.Duration `env:"WEBHOOK_RETRY_MAX_DELAY" envDefault:"30s"`
	RetryJitter      bool          `env:"WEBHOOK_RETRY_JITTER" envDefault:"false"`
}

type Sweep struct {
	Enabled  bool          `env:"SWEEP_ENABLED" envDefault:"true"`
	Interval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

func (w Webhook) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: w.RetryMaxAttempts,
		BaseDelay:   w.RetryBaseDelay,
		MaxDelay:    w.RetryMaxDelay,
		Jitter:      w.RetryJitter,
	}
}
