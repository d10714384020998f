package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig_Defaults(t *testing.T) {
	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 20, cfg.SearchLimit)
	assert.Equal(t, 50, cfg.ListLimit)
	assert.Equal(t, "ride-offers", cfg.KafkaTopic)
	assert.Equal(t, "ride_origins_geo", cfg.RedisGeoKey)
	assert.Equal(t, "ping", cfg.PingMessage)
	assert.False(t, cfg.RunMigrations)
}

func TestLoadServerConfig_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,")
	t.Setenv("SEARCH_LIMIT", "5")
	t.Setenv("MIGRATE", "TRUE")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 5, cfg.SearchLimit)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadServerConfig_InvalidValuesJoinErrors(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "soon")
	t.Setenv("SEARCH_LIMIT", "-1")

	_, err := LoadServerConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_READ_TIMEOUT")
	assert.Contains(t, err.Error(), "SEARCH_LIMIT")
}
