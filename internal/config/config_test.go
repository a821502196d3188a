package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "UPSTREAM_BASE_URL", "CITY_ID", "HTTP_TIMEOUT", "LOG_LEVEL", "BREAKER_MAX_FAILURES", "BREAKER_OPEN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "https://weather.tsukumijima.net", cfg.UpstreamBaseURL)
	assert.Equal(t, "130010", cfg.CityID)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.BreakerMaxFailures)
	assert.Equal(t, time.Minute, cfg.BreakerOpenTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CITY_ID", "270000")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BREAKER_MAX_FAILURES", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "270000", cfg.CityID)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2, cfg.BreakerMaxFailures)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad duration", "HTTP_TIMEOUT", "soon"},
		{"bad url", "UPSTREAM_BASE_URL", "not a url"},
		{"bad city", "CITY_ID", "tokyo"},
		{"bad level", "LOG_LEVEL", "loud"},
		{"zero failures", "BREAKER_MAX_FAILURES", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDisplay(t *testing.T) {
	t.Setenv("RELAY_URL", "http://relay.local:3001")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("DISPLAY_IMAGE_PATH", "/tmp/cards.png")

	cfg, err := LoadDisplay()
	require.NoError(t, err)

	assert.Equal(t, "http://relay.local:3001", cfg.RelayURL)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, "/tmp/cards.png", cfg.ImagePath)
	assert.Empty(t, cfg.FontPath)
}

func TestLoadDisplayDefaultsToOneMinutePoll(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "")
	t.Setenv("RELAY_URL", "")

	cfg, err := LoadDisplay()
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.PollInterval)
	assert.Equal(t, "http://localhost:3001", cfg.RelayURL)
}
