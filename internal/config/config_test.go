package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/fathom-mcp/internal/fathom"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("FATHOM_API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FATHOM_API_KEY", "fk_test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fk_test", cfg.APIKey)
	assert.Equal(t, fathom.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "./fathom-exports", cfg.ExportDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FATHOM_API_KEY", "fk_test")
	t.Setenv("FATHOM_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("FATHOM_EXPORT_DIR", "/tmp/meetings")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/v1", cfg.BaseURL)
	assert.Equal(t, "/tmp/meetings", cfg.ExportDir)
}
