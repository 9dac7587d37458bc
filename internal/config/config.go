package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Worker    WorkerConfig
	Provider  ProviderConfig
	Webhook   WebhookConfig
	Auth      AuthConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"wallet"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	HealthCheck     time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"30s"`
	// StatementTimeout bounds every statement server side, 0 disables it
	StatementTimeout time.Duration `env:"DB_STATEMENT_TIMEOUT" envDefault:"15s"`
	ApplicationName  string        `env:"DB_APPLICATION_NAME" envDefault:"wallet-settlement"`
}

// DSN returns the postgres connection URL for the configured database.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type WorkerConfig struct {
	AuditInterval       time.Duration `env:"WORKER_AUDIT_INTERVAL" envDefault:"5m"`
	PendingBalanceAfter time.Duration `env:"WORKER_PENDING_BALANCE_AFTER" envDefault:"2m"`
	AuditBatchSize      int           `env:"WORKER_AUDIT_BATCH_SIZE" envDefault:"100"`
}
type ProviderConfig struct {
	LiveBaseURL    string        `env:"KKIAPAY_LIVE_URL" envDefault:"https://api.kkiapay.me"`
	SandboxBaseURL string        `env:"KKIAPAY_SANDBOX_URL" envDefault:"https://api-sandbox.kkiapay.me"`
	Sandbox        bool          `env:"KKIAPAY_SANDBOX" envDefault:"false"`
	PublicKey      string        `env:"KKIAPAY_PUBLIC_KEY"`
	PrivateKey     string        `env:"KKIAPAY_PRIVATE_KEY"`
	Secret         string        `env:"KKIAPAY_SECRET"`
	Currency       string        `env:"KKIAPAY_CURRENCY" envDefault:"XOF"`
	Timeout        time.Duration `env:"KKIAPAY_TIMEOUT" envDefault:"15s"`
	// RequireReferenceMatch rejects verifications whose payload carries no
	// reference. A present but different reference is always rejected.
	RequireReferenceMatch bool `env:"KKIAPAY_REQUIRE_REFERENCE_MATCH" envDefault:"true"`
}

// BaseURL picks the sandbox or live endpoint.
func (c ProviderConfig) BaseURL() string {
	if c.Sandbox {
		return c.SandboxBaseURL
	}
	return c.LiveBaseURL
}

type WebhookConfig struct {
	Secret          string `env:"KKIAPAY_WEBHOOK_SECRET"`
	SignatureHeader string `env:"KKIAPAY_WEBHOOK_SIGNATURE_HEADER" envDefault:"X-Kkiapay-Signature"`
	MaxBodyBytes    int64  `env:"KKIAPAY_WEBHOOK_MAX_BODY_BYTES" envDefault:"65536"`
}
type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET"`
}
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}
type RateLimitConfig struct {
	Enabled bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	Limit   int           `env:"RATE_LIMIT_REQUESTS" envDefault:"10"`
	Window  time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}
type LogConfig struct {
	Pretty bool   `env:"LOG_PRETTY" envDefault:"true"`
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
