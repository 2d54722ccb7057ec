package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.App.Addr())
	assert.Equal(t, "jontropati", cfg.Mongo.Database)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL())
	assert.Equal(t, "https://api.stripe.com", cfg.Payment.APIBase)
	assert.Equal(t, "usd", cfg.Payment.Currency)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "5")
	t.Setenv("REDIS_CACHE_TTL_SECONDS", "120")
	t.Setenv("MONGO_DATABASE", "jontropati_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, 2*time.Minute, cfg.Redis.CacheTTL())
	assert.Equal(t, "jontropati_test", cfg.Mongo.Database)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestDurationFallbacks(t *testing.T) {
	assert.Equal(t, time.Duration(0), AppConfig{RequestTimeoutSeconds: 0}.RequestTimeout())
	assert.Equal(t, time.Hour, AuthConfig{AccessTokenTTLMinutes: -1}.AccessTokenTTL())
	assert.Equal(t, 15*time.Second, PaymentConfig{}.Timeout())
}
