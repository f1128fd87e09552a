package config

import (
	"github.com/alumicraft/docmailer/internal/logger"
	"github.com/alumicraft/docmailer/internal/tracing"
)

type AppConfig struct {
	APIPort     string `env:"PORT" envDefault:"11000"`
	APIKey      string `env:"API_KEY,required"`
	RabbitMQURL string `env:"RABBITMQ_URL"`
}

type DatabaseConfig struct {
	Host            string `env:"DOCMAILER_POSTGRES_HOST,required"`
	Port            string `env:"DOCMAILER_POSTGRES_PORT,required"`
	User            string `env:"DOCMAILER_POSTGRES_USER,required"`
	DBName          string `env:"DOCMAILER_POSTGRES_DB_NAME,required"`
	Password        string `env:"DOCMAILER_POSTGRES_PASSWORD,required"`
	MaxConn         int    `env:"DOCMAILER_POSTGRES_DB_MAX_CONN"`
	MaxIdleConn     int    `env:"DOCMAILER_POSTGRES_DB_MAX_IDLE_CONN"`
	ConnMaxLifetime int    `env:"DOCMAILER_POSTGRES_DB_CONN_MAX_LIFETIME"`
	LogLevel        string `env:"DOCMAILER_POSTGRES_LOG_LEVEL" envDefault:"WARN"`
	SSLMode         string `env:"DOCMAILER_POSTGRES_SSL_MODE" envDefault:"require"`
}

type ResendConfig struct {
	Enabled            bool   `env:"RESEND_ENABLED" envDefault:"true"`
	APIKey             string `env:"RESEND_API_KEY"`
	DefaultFromAddress string `env:"RESEND_DEFAULT_FROM_ADDRESS"`
	DefaultFromName    string `env:"RESEND_DEFAULT_FROM_NAME"`
	RequestTimeoutSec  int    `env:"RESEND_REQUEST_TIMEOUT_SEC" envDefault:"30"`
}

type Config struct {
	AppConfig      *AppConfig
	Logger         *logger.Config
	Tracing        *tracing.JaegerConfig
	DatabaseConfig *DatabaseConfig
	ResendConfig   *ResendConfig
}
