package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Optional static API key for the summary endpoints.
	// Empty disables authentication (the viewer is a localhost tool by default).
	APIKey string

	// Upload limits
	MaxUploadBytes int64
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:   getEnv("PORT", "8080"),
		Env:    getEnv("ENV", "development"),
		APIKey: getEnv("API_KEY", ""),
	}

	// Parse upload size limit (defaults to 16 MiB, plenty for a statement export)
	maxStr := getEnv("MAX_UPLOAD_BYTES", "16777216")
	maxBytes, err := strconv.ParseInt(maxStr, 10, 64)
	if err != nil || maxBytes <= 0 {
		log.Printf("Warning: invalid MAX_UPLOAD_BYTES value '%s', falling back to 16 MiB\n", maxStr)
		maxBytes = 16 << 20
	}
	config.MaxUploadBytes = maxBytes

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
