package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Store backends supported by the key-value binding.
const (
	StoreBackendSQLite = "sqlite"
	StoreBackendFile   = "file"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Store
	StoreBackend   string
	StorePath      string
	StoreNamespace string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Store
		StoreBackend:   getEnv("STORE_BACKEND", StoreBackendSQLite),
		StorePath:      getEnv("STORE_PATH", "duitku.db"),
		StoreNamespace: getEnv("STORE_NAMESPACE", "transactions"),
	}

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
