// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for myth configuration.
	DefaultConfigDir = ".myth"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultBaseURL is the upstream catalog API used when none is configured.
	DefaultBaseURL = "https://thegreekmythapi.vercel.app/api"
	// DefaultAssetsDir holds one subdirectory of images per category.
	DefaultAssetsDir = "assets"
)

// Config holds static configuration (read-only after load).
type Config struct {
	Upstream UpstreamConfig `yaml:"upstream,omitempty"`
	Assets   AssetsConfig   `yaml:"assets,omitempty"`
	Log      LogConfig      `yaml:"log,omitempty"`
}

// UpstreamConfig holds configuration for the catalog API.
type UpstreamConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
	// Timeout bounds a single fetch. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`
	// SnapshotDir, when set, serves catalogs from <dir>/<category>.json
	// instead of HTTP.
	SnapshotDir string `yaml:"snapshot_dir,omitempty"`
}

// AssetsConfig holds configuration for the local image registry.
type AssetsConfig struct {
	Dir string `yaml:"dir,omitempty"`
	// URLPrefix is prepended to bucket/file when building asset URLs.
	// Empty means the file path under Dir is used.
	URLPrefix string `yaml:"url_prefix,omitempty"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	JSON  bool   `yaml:"json,omitempty"`
}

// envOverrides lists the environment variables that take precedence over
// the config file. Empty values leave the file settings untouched.
type envOverrides struct {
	BaseURL     string        `env:"MYTH_API_BASE_URL"`
	Timeout     time.Duration `env:"MYTH_API_TIMEOUT"`
	SnapshotDir string        `env:"MYTH_SNAPSHOT_DIR"`
	AssetsDir   string        `env:"MYTH_ASSETS_DIR"`
	LogLevel    string        `env:"MYTH_LOG_LEVEL"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Upstream: UpstreamConfig{
			BaseURL: DefaultBaseURL,
		},
		Assets: AssetsConfig{
			Dir: DefaultAssetsDir,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from the .myth directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'myth init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads the config file if present and falls back to defaults
// otherwise. Environment overrides apply in both cases.
func LoadOrDefault(basePath string) (*Config, error) {
	if Exists(basePath) {
		return Load(basePath)
	}

	cfg := Default()
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}

	if o.BaseURL != "" {
		c.Upstream.BaseURL = o.BaseURL
	}
	if o.Timeout != 0 {
		c.Upstream.Timeout = o.Timeout
	}
	if o.SnapshotDir != "" {
		c.Upstream.SnapshotDir = o.SnapshotDir
	}
	if o.AssetsDir != "" {
		c.Assets.Dir = o.AssetsDir
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	return nil
}

// ConfigDir returns the path to the .myth config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
