package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janime/gojanime/internal/constants"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	t.Setenv("CONFIG_FILE", "does-not-exist.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.TMDBAPIKey)
	assert.Equal(t, constants.DefaultAniwatchAPIURL, cfg.AniwatchAPIURL)
	assert.Equal(t, constants.DefaultExtractorAPIURL, cfg.ExtractorAPIURL)
	assert.Equal(t, constants.ExtractorMegaCloud, cfg.Extractor)
	assert.Equal(t, constants.DefaultPort, cfg.Port)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	t.Setenv("CONFIG_FILE", "does-not-exist.json")
	t.Setenv("ANIWATCH_API_URL", "http://aniwatch.local")
	t.Setenv("EXTRACTOR_API_URL", "http://extractor.local")
	t.Setenv("EXTRACTOR", "hls")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://aniwatch.local", cfg.AniwatchAPIURL)
	assert.Equal(t, "http://extractor.local", cfg.ExtractorAPIURL)
	assert.Equal(t, constants.ExtractorHLS, cfg.Extractor)
	assert.Equal(t, "9000", cfg.Port)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("CONFIG_FILE", "does-not-exist.json")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateUnknownExtractor(t *testing.T) {
	cfg := &Config{TMDBAPIKey: "k", Extractor: "bittorrent"}
	assert.Error(t, cfg.Validate())
}
