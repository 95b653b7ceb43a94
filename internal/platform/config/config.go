package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr     string
	Store    StoreConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Hashing  HashingConfig
	LogLevel string
}

// StoreConfig selects and configures the user store backend.
type StoreConfig struct {
	// Backend is one of "memory", "postgres", "redis".
	Backend     string
	PostgresDSN string
}

// RedisConfig holds connection settings for the Redis-backed store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds event publishing settings. Empty brokers means events
// stay in-process (development mode).
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type HashingConfig struct {
	BcryptCost int
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	cfg := Server{
		Addr:     envOr("REGISTRAR_ADDR", ":8080"),
		LogLevel: envOr("REGISTRAR_LOG_LEVEL", "info"),
		Store: StoreConfig{
			Backend:     envOr("REGISTRAR_STORE", "memory"),
			PostgresDSN: os.Getenv("REGISTRAR_POSTGRES_DSN"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REGISTRAR_REDIS_URL"),
			PoolSize:     envIntOr("REGISTRAR_REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("REGISTRAR_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Topic: envOr("REGISTRAR_KAFKA_TOPIC", "registrar.user-events"),
		},
		Hashing: HashingConfig{
			BcryptCost: envIntOr("REGISTRAR_BCRYPT_COST", 0),
		},
	}

	if brokers := os.Getenv("REGISTRAR_KAFKA_BROKERS"); brokers != "" {
		for _, broker := range strings.Split(brokers, ",") {
			if trimmed := strings.TrimSpace(broker); trimmed != "" {
				cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, trimmed)
			}
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
