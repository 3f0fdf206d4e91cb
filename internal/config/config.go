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
	Env  string
	Port string

	// Recommendations
	RecommendationTTL       time.Duration
	RecommendationRetention time.Duration

	// Enforcement level given to budgets created without one
	DefaultEnforcementLevel string

	// Key the analysis pipeline presents when submitting recommendations
	PipelineAPIKey string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:                     getEnv("ENV", "development"),
		Port:                    getEnv("PORT", "8080"),
		RecommendationTTL:       getDuration("RECOMMENDATION_TTL", 30*24*time.Hour),
		RecommendationRetention: getDuration("RECOMMENDATION_RETENTION", 7*24*time.Hour),
		DefaultEnforcementLevel: getEnv("DEFAULT_ENFORCEMENT_LEVEL", "warning"),
		PipelineAPIKey:          getEnv("PIPELINE_API_KEY", ""),
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

// getDuration parses a duration variable, falling back to the default on
// absent or malformed input.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
