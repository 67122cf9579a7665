// Package config builds runtime configuration from the environment so main
// stays lean.
package config

import (
	"os"
	"strings"
	"time"
)

// Store backends the server can run against.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Server captures process-level configuration.
type Server struct {
	Addr           string
	StoreBackend   string
	RedisURL       string
	PostgresDSN    string
	KafkaBrokers   []string
	KafkaTopic     string
	JWTSigningKey  string
	AuthSecretHash string
	TokenTTL       time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	cfg := Server{
		Addr:           envOr("TRUSTLINK_ADDR", ":8080"),
		StoreBackend:   envOr("TRUSTLINK_STORE", StoreMemory),
		RedisURL:       os.Getenv("TRUSTLINK_REDIS_URL"),
		PostgresDSN:    os.Getenv("TRUSTLINK_POSTGRES_DSN"),
		KafkaTopic:     envOr("TRUSTLINK_KAFKA_TOPIC", "trustlink.attestations"),
		JWTSigningKey:  envOr("TRUSTLINK_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		AuthSecretHash: os.Getenv("TRUSTLINK_AUTH_SECRET_HASH"),
		TokenTTL:       time.Hour,
	}
	if raw := os.Getenv("TRUSTLINK_TOKEN_TTL"); raw != "" {
		if ttl, err := time.ParseDuration(raw); err == nil && ttl > 0 {
			cfg.TokenTTL = ttl
		}
	}
	if brokers := os.Getenv("TRUSTLINK_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
