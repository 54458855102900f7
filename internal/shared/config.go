package shared

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the full runtime configuration for the server.
type Config struct {
	HTTPPort    string
	Environment string // development, staging, production

	// StoreBackend selects the record store implementation: "mongo" or "memory".
	StoreBackend string

	Mongo MongoConfig

	CORSAllowedOrigins []string

	Payment PaymentConfig
}

// PaymentConfig carries the fixed checkout-session parameters. These are
// deployment configuration; nothing in the record core depends on them.
type PaymentConfig struct {
	StripeSecretKey string
	ProductName     string
	AmountCents     int64
	Currency        string
	SuccessURL      string
	CancelURL       string
	CustomerEmail   string
}

// LoadEnv loads environment variables from a .env file if one exists.
func LoadEnv(envFile string) error {
	if envFile == "" {
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil {
		log.Printf("Warning: %s file not found, using system environment variables", envFile)
		return err
	}

	log.Printf("Successfully loaded environment from %s", envFile)
	return nil
}

// LoadConfig builds the server configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		HTTPPort:     GetEnv("HTTP_PORT", "8900"),
		Environment:  GetEnv("ENVIRONMENT", "development"),
		StoreBackend: GetEnv("STORE_BACKEND", "mongo"),

		CORSAllowedOrigins: strings.Split(GetEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"), ","),

		Payment: PaymentConfig{
			StripeSecretKey: GetEnv("STRIPE_SECRET_KEY", ""),
			ProductName:     GetEnv("PAYMENT_PRODUCT_NAME", "Membership"),
			AmountCents:     GetInt64Env("PAYMENT_AMOUNT_CENTS", 34900),
			Currency:        GetEnv("PAYMENT_CURRENCY", "usd"),
			SuccessURL:      GetEnv("PAYMENT_SUCCESS_URL", "http://localhost:5173/billing"),
			CancelURL:       GetEnv("PAYMENT_CANCEL_URL", "http://localhost:5173/billing"),
			CustomerEmail:   GetEnv("PAYMENT_CUSTOMER_EMAIL", ""),
		},
	}

	if cfg.StoreBackend == "mongo" {
		mongoURI := GetEnv("MONGO_URI", "")
		if mongoURI == "" {
			return nil, fmt.Errorf("MONGO_URI environment variable is required")
		}

		cfg.Mongo = MongoConfig{
			URI:            mongoURI,
			Database:       GetEnv("MONGO_DB_NAME", "schoolbook"),
			ConnectTimeout: GetDurationEnv("MONGO_CONNECT_TIMEOUT", 20*time.Second),
			MaxPoolSize:    uint64(GetIntEnv("MONGO_MAX_POOL_SIZE", 50)),
			MinPoolSize:    uint64(GetIntEnv("MONGO_MIN_POOL_SIZE", 10)),
			MaxIdleTime:    GetDurationEnv("MONGO_MAX_IDLE_TIME", 30*time.Second),
		}
	}

	return cfg, nil
}

// GetEnv retrieves an environment variable with a fallback default.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetIntEnv retrieves an integer environment variable with a fallback default.
func GetIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid integer for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return intValue
}

// GetInt64Env retrieves a 64-bit integer environment variable with a fallback default.
func GetInt64Env(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid integer for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return intValue
}

// GetDurationEnv retrieves a duration environment variable with a fallback default.
func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid duration for %s, using default %s", key, defaultValue)
		return defaultValue
	}
	return duration
}
