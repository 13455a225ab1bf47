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

	// Database
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Rate limiting
	RateLimitRPS   float64
	RateLimitBurst int
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "data/wealthyways.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "wealthyways"),
		DBPassword: getEnv("DB_PASSWORD", "wealthyways"),
		DBName:     getEnv("DB_NAME", "wealthyways"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	rpsStr := getEnv("RATE_LIMIT_RPS", "20")
	rps, err := strconv.ParseFloat(rpsStr, 64)
	if err != nil || rps <= 0 {
		log.Printf("Warning: invalid RATE_LIMIT_RPS value '%s', falling back to 20\n", rpsStr)
		rps = 20
	}
	config.RateLimitRPS = rps

	burstStr := getEnv("RATE_LIMIT_BURST", "40")
	burst, err := strconv.Atoi(burstStr)
	if err != nil || burst <= 0 {
		log.Printf("Warning: invalid RATE_LIMIT_BURST value '%s', falling back to 40\n", burstStr)
		burst = 40
	}
	config.RateLimitBurst = burst

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
