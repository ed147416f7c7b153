package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DBPath             string
	LogLevel           string
	AIBaseURL          string
	AIModel            string
	AITimeout          time.Duration
	CacheRetention     time.Duration
	CacheSweepInterval time.Duration
	ContentPrefixLen   int
	PersistWorkerCount int
	PersistQueueSize   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DBPath:             envOr("DB_PATH", "file:notedeck.db"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		AIBaseURL:          envOr("AI_BASE_URL", "http://localhost:11434"),
		AIModel:            envOr("AI_MODEL", "llama3.1"),
		AITimeout:          envDurationOr("AI_TIMEOUT", 30*time.Second),
		CacheRetention:     envDurationOr("CACHE_RETENTION", time.Hour),
		CacheSweepInterval: envDurationOr("CACHE_SWEEP_INTERVAL", 10*time.Minute),
		ContentPrefixLen:   envIntOr("CONTENT_PREFIX_LEN", 80),
		PersistWorkerCount: envIntOr("PERSIST_WORKER_COUNT", 2),
		PersistQueueSize:   envIntOr("PERSIST_QUEUE_SIZE", 64),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
