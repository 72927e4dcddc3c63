package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAbotsup/hindi-mapper/internal/constants"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.json"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultPort, cfg.Port)
	assert.Equal(t, constants.AniListAPIURL, cfg.AniListURL)
	assert.Equal(t, constants.SatoruBaseURL, cfg.SatoruURL)
	assert.Equal(t, constants.DefaultSimilarityThreshold, cfg.SimilarityThreshold)
	assert.Equal(t, constants.DefaultCacheSize, cfg.CacheSize)
	assert.Equal(t, constants.DefaultRequestTimeout, cfg.RequestTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.json"))
	t.Setenv("PORT", "8080")
	t.Setenv("SATORU_URL", "http://localhost:9999")
	t.Setenv("DATABASE_PATH", "/tmp/titles.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:9999", cfg.SatoruURL)
	assert.Equal(t, "/tmp/titles.db", cfg.DatabasePath)
}

func TestLoadFromFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configFile, []byte(`{"PORT":"4000","SIMILARITY_THRESHOLD":0.7}`), 0644))
	t.Setenv("CONFIG_FILE", configFile)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, 0.7, cfg.SimilarityThreshold)
}

func TestEnvOverridesFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configFile, []byte(`{"PORT":"4000"}`), 0644))
	t.Setenv("CONFIG_FILE", configFile)
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}

func TestValidate(t *testing.T) {
	t.Run("ThresholdOutOfRange", func(t *testing.T) {
		cfg := &Config{SimilarityThreshold: 1.5}
		assert.Error(t, cfg.Validate())
	})

	t.Run("FillsDefaults", func(t *testing.T) {
		cfg := &Config{SimilarityThreshold: 0.5}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, constants.DefaultCacheSize, cfg.CacheSize)
		assert.Equal(t, time.Duration(constants.DefaultCacheTTL)*time.Hour, cfg.CacheTTL)
		assert.Equal(t, constants.SatoruBaseURL, cfg.SatoruURL)
	})
}
