package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "chile", cfg.App.DefaultRegion)
	assert.Equal(t, 5*time.Second, cfg.Carousel.AutoplayInterval)
	assert.Equal(t, 3, cfg.Carousel.ServiceWindow)
	assert.Equal(t, 30*time.Minute, cfg.View.IdleTimeout)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("APP_DEFAULT_REGION", "colombia")
	t.Setenv("CAROUSEL_AUTOPLAY_INTERVAL", "2500ms")
	t.Setenv("CAROUSEL_SERVICE_WINDOW", "0")
	t.Setenv("VIEW_SWEEP_INTERVAL", "bogus")
	t.Setenv("REDIS_HOST", "localhost")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "colombia", cfg.App.DefaultRegion)
	assert.Equal(t, 2500*time.Millisecond, cfg.Carousel.AutoplayInterval)
	assert.Equal(t, 3, cfg.Carousel.ServiceWindow)
	assert.Equal(t, time.Minute, cfg.View.SweepInterval)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "6379", cfg.Redis.Port)
}
