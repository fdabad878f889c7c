package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// fallbackAdminSecret is only for local development; deployments must set ADMIN_SECRET.
const fallbackAdminSecret = "sbinfra2024"

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Admin   AdminConfig
	App     AppConfig
}

type ServerConfig struct {
	Port string
}

type StorageConfig struct {
	DataDir    string
	UploadsDir string
}

type AdminConfig struct {
	Secret string
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3002"),
		},
		Storage: StorageConfig{
			DataDir:    getEnv("DATA_DIR", "data"),
			UploadsDir: getEnv("UPLOADS_DIR", "uploads"),
		},
		Admin: AdminConfig{
			Secret: getAdminSecret(),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Storage.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}

	if c.Storage.UploadsDir == "" {
		return fmt.Errorf("UPLOADS_DIR is required")
	}

	if c.Admin.Secret == "" {
		return fmt.Errorf("ADMIN_SECRET is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getAdminSecret trims the configured secret and falls back to the
// development default when the environment leaves it empty.
func getAdminSecret() string {
	secret := strings.TrimSpace(os.Getenv("ADMIN_SECRET"))
	if secret == "" {
		return fallbackAdminSecret
	}
	return secret
}
