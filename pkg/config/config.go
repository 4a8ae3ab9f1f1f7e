// Package config provides configuration management for the PocketSmith CLI.
// It loads configuration from environment variables, .env files and an
// optional YAML config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	PocketSmith PocketSmithConfig
	Debug       bool
}

// PocketSmithConfig represents PocketSmith API configuration.
type PocketSmithConfig struct {
	DeveloperKey string
	APIURL       string
	Timeout      time.Duration
}

// fileConfig is the shape of the optional YAML config file.
type fileConfig struct {
	DeveloperKey string `yaml:"developer_key"`
	APIURL       string `yaml:"api_url"`
}

// Load loads configuration from environment variables.
// It automatically loads .env from the current directory if available; a
// custom .env path can be given instead. An optional YAML config file
// ($POCKETSMITH_CONFIG, or ~/.config/pocketsmith/config.yaml) provides
// defaults that environment variables override.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	fileCfg, err := loadFileConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		PocketSmith: PocketSmithConfig{
			DeveloperKey: getEnvOrDefault("POCKETSMITH_DEVELOPER_KEY", fileCfg.DeveloperKey),
			APIURL:       getEnvOrDefault("POCKETSMITH_API_URL", fileCfg.APIURL),
			Timeout:      30 * time.Second,
		},
		Debug: os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// Validate validates the configuration. The developer key is the only
// required field.
func (c *Config) Validate() error {
	if c.PocketSmith.DeveloperKey == "" {
		return fmt.Errorf("missing required configuration: POCKETSMITH_DEVELOPER_KEY\nPlease check your .env file or environment variables")
	}
	return nil
}

// loadFileConfig reads the optional YAML config file. A missing file is not
// an error; a present but unparsable one is.
func loadFileConfig() (fileConfig, error) {
	var cfg fileConfig

	path := os.Getenv("POCKETSMITH_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".config", "pocketsmith", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// getEnvOrDefault returns the value of the environment variable or a default
// value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
