// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port   string
	APIKey string

	// Remote ledger
	LedgerBaseURL string
	LedgerAPIKey  string

	// Local cache
	CachePath string

	// Price feeds
	HomeCurrency   string
	ExchangeSuffix string

	// External calls
	RequestTimeout time.Duration
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
		Port:   getEnv("PORT", "8080"),
		APIKey: getEnv("API_KEY", ""),

		// Remote ledger
		LedgerBaseURL: getEnv("LEDGER_URL", "http://localhost:9090"),
		LedgerAPIKey:  getEnv("LEDGER_API_KEY", ""),

		// Local cache
		CachePath: getEnv("CACHE_PATH", "wealthguard.db"),

		// Price feeds: home currency for crypto quotes and the exchange
		// suffix appended to stock symbols for chart lookups.
		HomeCurrency:   getEnv("HOME_CURRENCY", "vnd"),
		ExchangeSuffix: getEnv("EXCHANGE_SUFFIX", ".VN"),
	}

	// Parse external request timeout
	timeoutStr := getEnv("REQUEST_TIMEOUT", "15s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		log.Printf("Warning: invalid REQUEST_TIMEOUT value '%s', falling back to 15s\n", timeoutStr)
		timeout = 15 * time.Second
	}
	config.RequestTimeout = timeout

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
