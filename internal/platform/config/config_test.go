package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("PORT", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("AUDIT_KAFKA_BROKERS", "")
	t.Setenv("AUDIT_KAFKA_TOPIC", "")

	cfg := FromEnv()

	assert.Equal(t, ":8000", cfg.Addr)
	assert.NotEmpty(t, cfg.JWTSigningKey)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Nil(t, cfg.AuditBrokers)
	assert.Equal(t, "amity.audit", cfg.AuditTopic)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("PORT", "9090")
	t.Setenv("SECRET_KEY", "hunter2")
	t.Setenv("AUDIT_KAFKA_BROKERS", "broker-1:9092, broker-2:9092 ,")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "hunter2", cfg.JWTSigningKey)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.AuditBrokers)
}
