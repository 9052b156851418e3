// Package config loads application configuration: defaults, overlaid by
// an optional YAML file, overlaid by environment variables (prefix YS).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// defaultConfigFile is looked up in the working directory unless
// YS_CONFIG_FILE points elsewhere.
const defaultConfigFile = "config.yaml"

// Config is the complete application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Source  SourceConfig  `yaml:"source" envconfig:"SOURCE"`
	Filter  FilterConfig  `yaml:"filter" envconfig:"FILTER"`
	Results ResultsConfig `yaml:"results" envconfig:"RESULTS"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// SourceConfig describes the published fund sheet and the refresh policy.
type SourceConfig struct {
	URL          string        `yaml:"url" envconfig:"URL"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" envconfig:"FETCH_TIMEOUT"`
	CacheTTL     time.Duration `yaml:"cache_ttl" envconfig:"CACHE_TTL"`
}

// FilterConfig tunes the filter engine.
type FilterConfig struct {
	// TagMode is "any" (a record matches when it carries at least one
	// selected category tag) or "all" (it must carry every selected tag).
	TagMode string `yaml:"tag_mode" envconfig:"TAG_MODE"`
	// MaxYield caps the accepted yield_max query value; 0 means no cap.
	MaxYield float64 `yaml:"max_yield" envconfig:"MAX_YIELD"`
}

// ResultsConfig tunes presentation.
type ResultsConfig struct {
	// Gated withholds the results table until a criterion is active.
	Gated bool `yaml:"gated" envconfig:"GATED"`
}

// Default returns the built-in configuration. The 10m cache TTL matches
// the publish cadence of the upstream sheet.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "stdout",
			FilePath: "logs/yieldscan.log",
		},
		Source: SourceConfig{
			FetchTimeout: 30 * time.Second,
			CacheTTL:     10 * time.Minute,
		},
		Filter: FilterConfig{
			TagMode: "any",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file when
// present, then environment variables, then validation.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv("YS_CONFIG_FILE")
	if path == "" {
		path = defaultConfigFile
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Environment variables override the file.
	if err := envconfig.Process("YS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Source.URL == "" {
		return fmt.Errorf("source url is required")
	}
	if c.Source.FetchTimeout <= 0 {
		return fmt.Errorf("source fetch timeout must be positive")
	}
	if c.Source.CacheTTL <= 0 {
		return fmt.Errorf("source cache ttl must be positive")
	}
	if c.Filter.TagMode != "any" && c.Filter.TagMode != "all" {
		return fmt.Errorf("filter tag_mode must be \"any\" or \"all\", got %q", c.Filter.TagMode)
	}
	if c.Filter.MaxYield < 0 {
		return fmt.Errorf("filter max_yield must not be negative")
	}
	return nil
}
