// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the full application configuration. Values are layered:
// Default, then an optional YAML file, then environment variables, then CLI flags.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Spelling SpellingConfig `yaml:"spelling"`
	AI       AIConfig       `yaml:"ai"`
	Export   ExportConfig   `yaml:"export"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Port               int           `yaml:"port"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig configures logrus
type LogConfig struct {
	Level  string `yaml:"level"`  // logrus level name
	Format string `yaml:"format"` // text or json
}

// SpellingConfig configures the spelling engine
type SpellingConfig struct {
	FrequencyFile string `yaml:"frequency_file"` // empty uses the embedded English list
	EditDepth     int    `yaml:"edit_depth"`
	CacheSize     int    `yaml:"cache_size"`
}

// AIConfig configures the Gemini-backed routes
type AIConfig struct {
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"` // pins a model and skips discovery
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
	CacheModel  bool          `yaml:"cache_model"`
}

// ExportConfig configures where export artifacts are written
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// Log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               5000,
			CORSAllowedOrigins: []string{"*"},
			ShutdownTimeout:    10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
		Spelling: SpellingConfig{
			EditDepth: 2,
			CacheSize: 4096,
		},
		AI: AIConfig{
			Temperature: 0.2,
			Timeout:     60 * time.Second,
			CacheModel:  true,
		},
		Export: ExportConfig{
			Dir: "exports",
		},
	}
}

// LoadConfig loads configuration from a YAML (or JSON) file on top of Default.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Load returns Default overlaid by the file at path (if any) and the process environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays values from environment variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: PORT must be an integer: %q", v)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok && v != "" {
		c.Server.CORSAllowedOrigins = splitList(v)
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		c.Log.Format = v
	}
	if v, ok := lookup("SPELLING_FREQUENCY_FILE"); ok && v != "" {
		c.Spelling.FrequencyFile = v
	}
	if v, ok := lookup("GEMINI_API_KEY"); ok {
		c.AI.APIKey = strings.TrimSpace(v)
	}
	if v, ok := lookup("GEMINI_MODEL"); ok && v != "" {
		c.AI.Model = v
	}
	if v, ok := lookup("AI_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config error: AI_TIMEOUT must be a duration: %q", v)
		}
		c.AI.Timeout = d
	}
	if v, ok := lookup("EXPORT_DIR"); ok && v != "" {
		c.Export.Dir = v
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("config error: 'server.shutdown_timeout' must be non-negative")
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config error: 'log.level' %q is not a valid level", c.Log.Level)
	}
	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		return fmt.Errorf("config error: 'log.format' must be %q or %q", FormatText, FormatJSON)
	}

	if c.Spelling.EditDepth < 1 || c.Spelling.EditDepth > 3 {
		return fmt.Errorf("config error: 'spelling.edit_depth' must be between 1 and 3")
	}
	if c.Spelling.CacheSize < 0 {
		return fmt.Errorf("config error: 'spelling.cache_size' must be non-negative")
	}
	if c.Spelling.FrequencyFile != "" {
		if _, err := os.Stat(c.Spelling.FrequencyFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: frequency file not found: %s", c.Spelling.FrequencyFile)
		}
	}

	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		return fmt.Errorf("config error: 'ai.temperature' must be between 0 and 2")
	}
	if c.AI.Timeout < 0 {
		return fmt.Errorf("config error: 'ai.timeout' must be non-negative")
	}

	if strings.TrimSpace(c.Export.Dir) == "" {
		return fmt.Errorf("config error: 'export.dir' is required")
	}

	return nil
}

// NewLogger builds a logrus logger from the log settings.
func (c *Config) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	logger := logrus.New()
	logger.SetLevel(level)
	if c.Log.Format == FormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}

// AIEnabled reports whether an API key is configured.
func (c *Config) AIEnabled() bool {
	return c.AI.APIKey != ""
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
