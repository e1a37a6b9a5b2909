package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string `yaml:"port" env:"SERVER_PORT"`
	Mode string `yaml:"mode" env:"SERVER_MODE"`
}

// DatabaseConfig holds MongoDB connection settings
type DatabaseConfig struct {
	URI         string `yaml:"uri" env:"MONGODB_URI"`
	Name        string `yaml:"name" env:"MONGODB_NAME"`
	MaxPoolSize uint64 `yaml:"max_pool_size" env:"MONGODB_MAX_POOL_SIZE"`
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret          string `yaml:"secret" env:"JWT_SECRET"`
	TokenExpiration string `yaml:"token_expiration" env:"JWT_TOKEN_EXPIRATION"`
	Issuer          string `yaml:"issuer" env:"JWT_ISSUER"`
}

// StorageConfig holds media upload settings
type StorageConfig struct {
	UploadDir string `yaml:"upload_dir" env:"STORAGE_UPLOAD_DIR"`
	BaseURL   string `yaml:"base_url" env:"STORAGE_BASE_URL"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// Config structure represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars alone can carry a full configuration
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.URI = "mongodb://localhost:27017"
	config.Database.Name = "alumni_management"
	config.Database.MaxPoolSize = 20

	config.JWT.TokenExpiration = "24h"
	config.JWT.Issuer = "alumni-management-system"

	config.Storage.UploadDir = "./uploads"
	config.Storage.BaseURL = "/uploads"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.URI == "" {
		return fmt.Errorf("database URI is required")
	}

	if config.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.TokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT token expiration format: %w", err)
	}

	return nil
}

// TokenExpiration returns the parsed JWT token lifetime.
// validateConfig guarantees the value parses.
func (c *Config) TokenExpiration() time.Duration {
	d, _ := time.ParseDuration(c.JWT.TokenExpiration)
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
