package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultMonthlyFee is the fallback per-month tuition unit price in whole
// rupiah. The recap's RUPIAH row is a synthetic estimate computed from this
// fee, not a sum of actual transaction amounts.
const DefaultMonthlyFee = 66000

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// MonthlyFee is the fixed per-month tuition unit price (whole rupiah).
	MonthlyFee int64
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

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "kasiswa"),
		DBPassword: getEnv("DB_PASSWORD", "kasiswa"),
		DBName:     getEnv("DB_NAME", "kasiswa"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Parse the monthly fee
	feeStr := getEnv("MONTHLY_FEE", "")
	fee, err := strconv.ParseInt(feeStr, 10, 64)
	if err != nil || fee <= 0 {
		if feeStr != "" {
			log.Printf("Warning: invalid MONTHLY_FEE value '%s', falling back to %d\n", feeStr, int64(DefaultMonthlyFee))
		}
		fee = DefaultMonthlyFee
	}
	config.MonthlyFee = fee

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
