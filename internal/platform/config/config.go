package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration

	// Single-user credentials. The password is stored as a bcrypt hash,
	// never in the clear.
	AuthUsername     string
	AuthPasswordHash string

	// Rate limit for the API group in ulule format, e.g. "100-M".
	RateLimit string

	DefaultCurrency string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present. Environment variables win over .env values.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("AUTH_USERNAME", "owner")
	viper.SetDefault("AUTH_PASSWORD_HASH", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("DEFAULT_CURRENCY", "EUR")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.AuthUsername = viper.GetString("AUTH_USERNAME")
	cfg.AuthPasswordHash = viper.GetString("AUTH_PASSWORD_HASH")
	if cfg.AuthPasswordHash == "" {
		log.Println("Warning: AUTH_PASSWORD_HASH not set. Login will reject every attempt until it is configured.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.DefaultCurrency = viper.GetString("DEFAULT_CURRENCY")

	return cfg, nil
}
