package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultCatalogPath is where the rule catalog is read from when nothing
// else is configured.
const DefaultCatalogPath = "datasets/knowledge_base.csv"

// ErrInvalidConfig marks a configuration that failed validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the diagnoser configuration.
type Config struct {
	// Rule catalog file (.csv, .yaml or .yml)
	Catalog string `yaml:"catalog" env:"DIAGNOSER_CATALOG"`

	// Skip malformed catalog records instead of failing the load
	SkipInvalid bool `yaml:"skip_invalid" env:"DIAGNOSER_SKIP_INVALID"`

	Logging LoggingConfig `yaml:"logging"`
	Render  RenderConfig  `yaml:"render"`
	Screen  ScreenConfig  `yaml:"screen"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level" env:"DIAGNOSER_LOG_LEVEL"` // debug, info, warn, error
	JSON  bool   `yaml:"json" env:"DIAGNOSER_LOG_JSON"`
}

// RenderConfig configures terminal output.
type RenderConfig struct {
	Color bool `yaml:"color" env:"DIAGNOSER_COLOR"`
}

// ScreenConfig configures batch verification.
type ScreenConfig struct {
	Concurrency int `yaml:"concurrency" env:"DIAGNOSER_SCREEN_CONCURRENCY"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Catalog: DefaultCatalogPath,
		Logging: LoggingConfig{
			Level: "info",
			JSON:  true,
		},
		Render: RenderConfig{
			Color: true,
		},
		Screen: ScreenConfig{
			Concurrency: 4,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the CLI cannot use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Catalog) == "" {
		return fmt.Errorf("%w: catalog path is empty", ErrInvalidConfig)
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Screen.Concurrency < 1 {
		return fmt.Errorf("%w: screen concurrency must be at least 1, got %d", ErrInvalidConfig, c.Screen.Concurrency)
	}
	return nil
}

// ZapLevel parses the configured level.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(l.Level)
}
