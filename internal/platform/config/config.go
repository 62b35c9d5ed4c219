package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	MongoURI      string
	MongoDBName   string
	EnableDBCheck bool

	// FX upstream settings
	FXBaseURL        string
	FXConnectTimeout time.Duration
	FXReadTimeout    time.Duration
	FXRetryMax       int // retries after the first attempt
	FXRetryWaitMin   time.Duration

	// Session settings
	SessionTTL time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MONGO_URI", "")
	viper.SetDefault("MONGO_DB_NAME", "currency_exchange")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("FX_API_BASE_URL", "https://api.frankfurter.dev/v1")
	viper.SetDefault("FX_CONNECT_TIMEOUT", "5s")
	viper.SetDefault("FX_READ_TIMEOUT", "10s")
	viper.SetDefault("FX_RETRY_MAX", 2)
	viper.SetDefault("FX_RETRY_WAIT_MIN", "300ms")
	viper.SetDefault("SESSION_TTL", "168h")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.MongoURI = viper.GetString("MONGO_URI")
	if cfg.MongoURI == "" {
		log.Println("Warning: MONGO_URI environment variable not set.")
	}
	cfg.MongoDBName = viper.GetString("MONGO_DB_NAME")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.FXBaseURL = viper.GetString("FX_API_BASE_URL")

	cfg.FXConnectTimeout = parseDurationOr("FX_CONNECT_TIMEOUT", 5*time.Second)
	cfg.FXReadTimeout = parseDurationOr("FX_READ_TIMEOUT", 10*time.Second)
	cfg.FXRetryWaitMin = parseDurationOr("FX_RETRY_WAIT_MIN", 300*time.Millisecond)

	cfg.FXRetryMax = viper.GetInt("FX_RETRY_MAX")
	if cfg.FXRetryMax < 0 {
		log.Printf("Warning: Invalid value for FX_RETRY_MAX (%d). Defaulting to 2.\n", cfg.FXRetryMax)
		cfg.FXRetryMax = 2
	}

	cfg.SessionTTL = parseDurationOr("SESSION_TTL", 168*time.Hour)

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
