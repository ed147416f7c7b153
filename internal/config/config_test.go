package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:notedeck.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.AITimeout)
	assert.Equal(t, time.Hour, cfg.CacheRetention)
	assert.Equal(t, 10*time.Minute, cfg.CacheSweepInterval)
	assert.Equal(t, 80, cfg.ContentPrefixLen)
	assert.Equal(t, 2, cfg.PersistWorkerCount)
	assert.Equal(t, 64, cfg.PersistQueueSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("AI_TIMEOUT", "45s")
	t.Setenv("CACHE_RETENTION", "2h")
	t.Setenv("CONTENT_PREFIX_LEN", "120")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 45*time.Second, cfg.AITimeout)
	assert.Equal(t, 2*time.Hour, cfg.CacheRetention)
	assert.Equal(t, 120, cfg.ContentPrefixLen)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "soon")
	t.Setenv("CONTENT_PREFIX_LEN", "lots")

	cfg := Load()
	assert.Equal(t, 30*time.Second, cfg.AITimeout)
	assert.Equal(t, 80, cfg.ContentPrefixLen)
}
