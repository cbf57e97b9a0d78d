package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"API_KEY", "GEMINI_API_KEY", "JOURNEY_PROVIDER", "JOURNEY_MODEL", "JOURNEY_ADDR", "CORS_ALLOWED_ORIGINS", "JOURNEY_CATALOG"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.False(t, cfg.Journey.CanonicalFields)
	assert.False(t, cfg.Journey.DropUnmatched)
	assert.Equal(t, 120*time.Second, cfg.GetLLMTimeout())
	assert.Equal(t, 2*time.Hour, cfg.GetSessionTTL())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "journey.yaml")
	content := `
llm:
  provider: offline
  timeout: 5s
journey:
  canonical_fields: true
  drop_unmatched: true
catalog:
  path: campaigns.yaml
server:
  addr: ":9000"
  session_ttl: 10m
logging:
  level: debug
  categories:
    api: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "offline", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model, "unset keys keep defaults")
	assert.Equal(t, 5*time.Second, cfg.GetLLMTimeout())
	assert.True(t, cfg.Journey.CanonicalFields)
	assert.True(t, cfg.Journey.DropUnmatched)
	assert.Equal(t, "campaigns.yaml", cfg.Catalog.Path)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 10*time.Minute, cfg.GetSessionTTL())
	assert.False(t, cfg.Logging.IsCategoryEnabled("api"))
	assert.True(t, cfg.Logging.IsCategoryEnabled("journey"))
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [unterminated"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "journey.yaml")
	cfg := DefaultConfig()
	cfg.LLM.Provider = "offline"
	cfg.Server.AllowedOrigins = []string{"https://ngo.example"}

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("GEMINI_API_KEY wins over API_KEY", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("API_KEY", "legacy")
		t.Setenv("GEMINI_API_KEY", "gem")

		cfg := &Config{}
		cfg.applyEnvOverrides()
		assert.Equal(t, "gem", cfg.LLM.APIKey)
	})

	t.Run("API_KEY alone", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("API_KEY", "legacy")

		cfg := &Config{}
		cfg.applyEnvOverrides()
		assert.Equal(t, "legacy", cfg.LLM.APIKey)
	})

	t.Run("server and catalog", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JOURNEY_PROVIDER", "OFFLINE")
		t.Setenv("JOURNEY_ADDR", ":7000")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
		t.Setenv("JOURNEY_CATALOG", "/etc/campaigns.yaml")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "offline", cfg.LLM.Provider)
		assert.Equal(t, ":7000", cfg.Server.Addr)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, "/etc/campaigns.yaml", cfg.Catalog.Path)
	})
}

func TestLoadEnvDoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("JOURNEY_MODEL=from-file\nJOURNEY_ADDR=:1234\n"), 0644))

	t.Setenv("JOURNEY_MODEL", "from-shell")
	t.Setenv("JOURNEY_ADDR", "")
	require.NoError(t, os.Unsetenv("JOURNEY_ADDR"))

	require.NoError(t, LoadEnv(envPath, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-shell", os.Getenv("JOURNEY_MODEL"))
	assert.Equal(t, ":1234", os.Getenv("JOURNEY_ADDR"))
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.Error(t, cfg.Validate(), "gemini without key")

	cfg.LLM.APIKey = "k"
	require.NoError(t, cfg.Validate())

	cfg.LLM.Provider = "openai"
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.LLM.Provider = "offline"
	require.NoError(t, cfg.Validate())

	cfg.Server.Mode = "loud"
	require.Error(t, cfg.Validate())
}
