package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Server ServerConfig `json:"server"`
	Model  ModelConfig  `json:"model"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port string `json:"port"`
	Host string `json:"host"`
}

// ModelConfig represents model artifact configuration
type ModelConfig struct {
	Path string `json:"path"`
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(configPath string) (*Config, error) {
	// Default config path
	if configPath == "" {
		configPath = "config.json"
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse JSON
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	config.applyEnvOverrides()

	return &config, nil
}

// LoadConfigWithDefaults loads config with fallback to defaults if file doesn't exist
func LoadConfigWithDefaults(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.json"
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		// If file doesn't exist, return default config
		if errors.Is(err, os.ErrNotExist) {
			config = &Config{}
			config.applyDefaults()
			config.applyEnvOverrides()
			return config, nil
		}
		return nil, err
	}

	return config, nil
}

// applyDefaults fills in any fields not specified
func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8001"
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Model.Path == "" {
		c.Model.Path = "model/prediksi.json"
	}
}

// applyEnvOverrides lets environment variables win over the config file.
// A .env file in the working directory is honored if present.
func (c *Config) applyEnvOverrides() {
	_ = godotenv.Load() // ignore error, fallback to env vars

	if port := os.Getenv("BEARINGML_PORT"); port != "" {
		c.Server.Port = port
	}
	if host := os.Getenv("BEARINGML_HOST"); host != "" {
		c.Server.Host = host
	}
	if modelPath := os.Getenv("BEARINGML_MODEL_PATH"); modelPath != "" {
		c.Model.Path = modelPath
	}
}
