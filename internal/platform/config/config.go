package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration. FromEnv builds it so main
// stays lean; every field has a development default.
type Server struct {
	Addr          string
	JWTSigningKey string

	// DatabaseURL selects the PostgreSQL user store when set; empty keeps
	// the in-memory store.
	DatabaseURL string

	// RedisURL selects the Redis token revocation list when set.
	RedisURL string

	// AuditBrokers enables the Kafka audit sink when non-empty.
	AuditBrokers []string
	AuditTopic   string

	// TokenTTL is the access token lifetime.
	TokenTTL time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("ADDR")
	if addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8000"
		}
		addr = ":" + port
	}

	jwtSigningKey := os.Getenv("SECRET_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	topic := os.Getenv("AUDIT_KAFKA_TOPIC")
	if topic == "" {
		topic = "amity.audit"
	}

	return Server{
		Addr:          addr,
		JWTSigningKey: jwtSigningKey,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		AuditBrokers:  splitList(os.Getenv("AUDIT_KAFKA_BROKERS")),
		AuditTopic:    topic,
		TokenTTL:      24 * time.Hour,
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
