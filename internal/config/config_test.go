package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "client-assets", cfg.StorageBucket)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadSize)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.OpenAIAPIURL)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_UPLOAD_SIZE", "2048")
	t.Setenv("JWT_ACCESS_EXPIRY", "1h")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, int64(2048), cfg.MaxUploadSize)
	assert.Equal(t, time.Hour, cfg.JWTAccessExpiry)
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, 15*time.Minute, parseDuration("nonsense"))
	assert.Equal(t, 30*time.Second, parseDuration("30s"))
}

func TestParseSizeFallback(t *testing.T) {
	assert.Equal(t, int64(100), parseSize("", 100))
	assert.Equal(t, int64(100), parseSize("-5", 100))
	assert.Equal(t, int64(100), parseSize("abc", 100))
	assert.Equal(t, int64(2048), parseSize("2048", 100))
}

func TestConfiguredHelpers(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.AdminConfigured())
	assert.False(t, cfg.AIConfigured())
	assert.False(t, cfg.StorageConfigured())

	cfg.AdminPassword = "secret"
	cfg.OpenAIAPIKey = "key"
	cfg.StorageAccessKey = "ak"
	cfg.StorageSecretKey = "sk"
	cfg.StorageBucket = "bucket"
	assert.True(t, cfg.AdminConfigured())
	assert.True(t, cfg.AIConfigured())
	assert.True(t, cfg.StorageConfigured())
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5432", DBUser: "app",
		DBPassword: "pw", DBName: "sites", DBSSLMode: "require",
	}
	assert.Equal(t,
		"host=db user=app password=pw dbname=sites port=5432 sslmode=require TimeZone=UTC",
		cfg.DSN())
}
