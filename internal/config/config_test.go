package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FormatText, cfg.Log.Format)
	assert.Equal(t, 2, cfg.Spelling.EditDepth)
	assert.Equal(t, 4096, cfg.Spelling.CacheSize)
	assert.Equal(t, float32(0.2), cfg.AI.Temperature)
	assert.Equal(t, 60*time.Second, cfg.AI.Timeout)
	assert.True(t, cfg.AI.CacheModel)
	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.False(t, cfg.AIEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	content := `
server:
  port: 8080
  cors_allowed_origins: ["http://localhost:3000"]
log:
  level: debug
  format: json
ai:
  model: models/gemini-pinned
  timeout: 15s
  cache_model: false
export:
  dir: /tmp/out
`
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)
	assert.Equal(t, "models/gemini-pinned", cfg.AI.Model)
	assert.Equal(t, 15*time.Second, cfg.AI.Timeout)
	assert.False(t, cfg.AI.CacheModel)
	assert.Equal(t, "/tmp/out", cfg.Export.Dir)

	// Unset values keep their defaults
	assert.Equal(t, 2, cfg.Spelling.EditDepth)
	assert.Equal(t, float32(0.2), cfg.AI.Temperature)
}

func TestLoadConfig_JSONIsAccepted(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"server": {"port": 9000}}`), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("server: [unclosed"), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		"PORT":                    "7000",
		"CORS_ALLOWED_ORIGINS":    "http://a.test, http://b.test,",
		"LOG_LEVEL":               "warn",
		"LOG_FORMAT":              "json",
		"SPELLING_FREQUENCY_FILE": "/data/words.txt",
		"GEMINI_API_KEY":          "  secret  ",
		"GEMINI_MODEL":            "models/x",
		"AI_TIMEOUT":              "5s",
		"EXPORT_DIR":              "/var/exports",
	}))
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)
	assert.Equal(t, "/data/words.txt", cfg.Spelling.FrequencyFile)
	assert.Equal(t, "secret", cfg.AI.APIKey)
	assert.True(t, cfg.AIEnabled())
	assert.Equal(t, "models/x", cfg.AI.Model)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "/var/exports", cfg.Export.Dir)
}

func TestApplyEnv_EmptyValuesKeepDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{"PORT": "", "EXPORT_DIR": ""})))
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "exports", cfg.Export.Dir)
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"port":    {"PORT": "abc"},
		"timeout": {"AI_TIMEOUT": "soon"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Default().ApplyEnv(envMap(env)))
		})
	}
}

func TestLoad_WithFileAndEnv(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("server:\n  port: 8081\n"), 0644))
	t.Setenv("PORT", "8082")

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, 8082, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(existing, []byte("word 1\n"), 0644))

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"existing frequency file", func(c *Config) { c.Spelling.FrequencyFile = existing }, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"negative shutdown", func(c *Config) { c.Server.ShutdownTimeout = -1 }, "shutdown_timeout"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"edit depth", func(c *Config) { c.Spelling.EditDepth = 5 }, "edit_depth"},
		{"cache size", func(c *Config) { c.Spelling.CacheSize = -1 }, "cache_size"},
		{"missing frequency file", func(c *Config) { c.Spelling.FrequencyFile = "/nope/words.txt" }, "frequency file not found"},
		{"temperature", func(c *Config) { c.AI.Temperature = 3 }, "temperature"},
		{"timeout", func(c *Config) { c.AI.Timeout = -time.Second }, "ai.timeout"},
		{"export dir", func(c *Config) { c.Export.Dir = " " }, "export.dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"
	cfg.Log.Format = FormatJSON

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Format = FormatText
	logger, err = cfg.NewLogger()
	require.NoError(t, err)
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	cfg.Log.Level = "loud"
	_, err = cfg.NewLogger()
	assert.Error(t, err)
}
