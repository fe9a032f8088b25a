// Package config loads the process configuration from the environment once at
// startup. Business code never reads environment variables directly; it
// receives the relevant section by injection.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth     AuthConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Mongo    MongoConfig
	SMTP     SMTPConfig
	S3       S3Config
	Groq     GroqConfig

	// NotifyWorkers sizes the async notification dispatcher.
	NotifyWorkers int `env:"NOTIFY_WORKERS, default=8"`
}

type AuthConfig struct {
	AccessSecret  string        `env:"ACCESS_SECRET,  required"`
	RefreshSecret string        `env:"REFRESH_SECRET, required"`
	AccessTTL     time.Duration `env:"ACCESS_TTL,     default=15m"`
	RefreshTTL    time.Duration `env:"REFRESH_TTL,    default=168h"`
	Issuer        string        `env:"JWT_ISSUER,     default=gameronce-commerce-api"`
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST,     default=localhost"`
	Port     int    `env:"POSTGRES_PORT,     default=5432"`
	User     string `env:"POSTGRES_USER,     default=postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	Database string `env:"POSTGRES_DB,       default=gameronce"`
	SSLMode  string `env:"POSTGRES_SSLMODE,  default=disable"`
}

// DSN renders the connection string the postgres driver expects.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=gameronce_chat"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=no-reply@gameronce.com"`
}

type S3Config struct {
	Region    string `env:"S3_REGION, default=us-east-1"`
	Bucket    string `env:"S3_BUCKET, default=gameronce-media"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	// Endpoint overrides the AWS endpoint for S3-compatible stores (MinIO).
	Endpoint string `env:"S3_ENDPOINT"`
}

type GroqConfig struct {
	APIKey  string `env:"GROQ_API_KEY"`
	Model   string `env:"GROQ_MODEL,    default=llama-3.1-8b-instant"`
	BaseURL string `env:"GROQ_BASE_URL, default=https://api.groq.com/openai/v1"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
