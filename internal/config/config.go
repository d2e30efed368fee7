package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Port         int               `yaml:"port"`
	MetricsPort  int               `yaml:"metrics_port"`
	DatabasePath string            `yaml:"database_path"`
	LogLevel     string            `yaml:"log_level"`
	Recognition  RecognitionConfig `yaml:"recognition"`
}

// RecognitionConfig configures the food-recognition boundary. The
// deployed provider is a stub; the limits still apply at the API edge.
type RecognitionConfig struct {
	Provider       string `yaml:"provider"`
	MaxImageBytes  int64  `yaml:"max_image_bytes"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the recognition request timeout.
func (r RecognitionConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:         8080,
		MetricsPort:  9090,
		DatabasePath: "fridge.db",
		LogLevel:     "info",
		Recognition: RecognitionConfig{
			Provider:       "stub",
			MaxImageBytes:  2 << 20,
			TimeoutSeconds: 10,
		},
	}
}

// Load reads the YAML config at path on top of the defaults. A missing
// file is not an error, the defaults simply apply; a malformed file is.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
