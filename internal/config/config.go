package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Mongo        MongoConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Payment      PaymentConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// MongoConfig holds document store connection values.
type MongoConfig struct {
	URI      string
	Database string
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr            string
	Password        string
	DB              int
	CacheTTLSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
}

// PaymentConfig holds payment provider credentials and endpoints.
type PaymentConfig struct {
	SecretKey      string
	APIBase        string
	Currency       string
	TimeoutSeconds int
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "jontropati-api"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "5000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "jontropati"),
		},
		Redis: RedisConfig{
			Addr:            getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password:        os.Getenv("REDIS_PASSWORD"),
			DB:              redisDB,
			CacheTTLSeconds: getEnvAsInt("REDIS_CACHE_TTL_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("ACCESS_TOKEN_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
		},
		Payment: PaymentConfig{
			SecretKey:      os.Getenv("PAYMENT_SECRET_KEY"),
			APIBase:        getEnv("PAYMENT_API_BASE", "https://api.stripe.com"),
			Currency:       getEnv("PAYMENT_CURRENCY", "usd"),
			TimeoutSeconds: getEnvAsInt("PAYMENT_TIMEOUT_SECONDS", 15),
		},
		Notification: NotificationConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// AccessTokenTTL returns the lifetime for tokens issued on identity upsert.
func (a AuthConfig) AccessTokenTTL() time.Duration {
	if a.AccessTokenTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(a.AccessTokenTTLMinutes) * time.Minute
}

// CacheTTL returns the product list cache lifetime.
func (r RedisConfig) CacheTTL() time.Duration {
	if r.CacheTTLSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(r.CacheTTLSeconds) * time.Second
}

// Timeout returns the payment provider request timeout.
func (p PaymentConfig) Timeout() time.Duration {
	if p.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
