package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/futbol")
	t.Setenv("API_KEY", "k-123")
	t.Setenv("PORT", "8080")
	t.Setenv("REDIS_HOST", "localhost")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "0.0.0.0:8080", cfg.Addr())
	require.Equal(t, "futbol", cfg.MongoDB.Database)
	require.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	require.Equal(t, "k-123", cfg.Feed.APIKey)
	require.Equal(t, "https://v3.football.api-sports.io", cfg.Feed.BaseURL)
	require.Equal(t, 20, cfg.Sync.FixtureLimit)
	require.True(t, cfg.Sync.OnStart)
	require.Equal(t, "localhost", cfg.Redis.Host)
	require.False(t, cfg.RateLimit.Enabled)
}

func TestLoadConfig_DefaultPortAndDatabase(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("API_KEY", "k")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "3000", cfg.Server.Port)
	require.Equal(t, "test", cfg.MongoDB.Database)

	t.Setenv("MONGODB_DATABASE", "explicit")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "explicit", cfg.MongoDB.Database)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("API_KEY", "")

	cfg, err := LoadConfig()
	require.Nil(t, cfg)
	require.True(t, errors.Is(err, ErrMissingEnv))
	require.Contains(t, err.Error(), "MONGODB_URI")
	require.Contains(t, err.Error(), "API_KEY")

	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	_, err = LoadConfig()
	require.ErrorIs(t, err, ErrMissingEnv)
	require.NotContains(t, err.Error(), "MONGODB_URI")
}
