package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv           string        `envconfig:"APP_ENV" default:"development"`
	Port             string        `envconfig:"PORT" default:"8080"`
	ReadTimeout      time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout     time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout      time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBUser     string `envconfig:"DB_USER" default:"payroll"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"payroll"`
	DBName     string `envconfig:"DB_NAME" default:"payroll"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`

	KafkaBrokers       []string      `envconfig:"KAFKA_BROKERS" default:"127.0.0.1:9092"`
	KafkaConsumerGroup string        `envconfig:"KAFKA_CONSUMER_GROUP" default:"go-payroll.payslip"`
	OutboxPollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"3s"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	PayslipStorageDir    string `envconfig:"PAYSLIP_STORAGE_DIR" default:"./storage/payslips"`
	PayslipPublicBaseURL string `envconfig:"PAYSLIP_PUBLIC_BASE_URL" default:"/files/payslips"`

	RBACModelPath string `envconfig:"RBAC_MODEL_PATH" default:"internal/rbac/infra/model.conf"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
