package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{"api_key": "key-123", "style": "classic", "port": 8080, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "key-123", cfg.APIKey)
	assert.Equal(t, "classic", cfg.Style)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeTempConfig(t, `{broken`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_UnknownStyle(t *testing.T) {
	cfg := &Config{Style: "neon"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ValidStyles(t *testing.T) {
	for _, style := range []string{"", "modern", "classic", "minimal"} {
		cfg := &Config{Style: style}
		assert.NoError(t, cfg.Validate(), "style %q", style)
	}
}

func TestValidate_PortRange(t *testing.T) {
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.NoError(t, (&Config{Port: 8080}).Validate())
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "absent.json")}
	assert.Error(t, cfg.Validate())
}

func TestResolveAPIKey_PrefersConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	cfg := &Config{APIKey: "config-key"}
	assert.Equal(t, "config-key", cfg.ResolveAPIKey())

	cfg.APIKey = ""
	assert.Equal(t, "env-key", cfg.ResolveAPIKey())
}
