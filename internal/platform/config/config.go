package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	// Exchange-rate sources
	RatesOfficialURL  string
	RatesParallelURL  string
	RatesFetchTimeout time.Duration

	// Requests per minute per client IP
	RateLimitPerMinute int64

	// Allowed CORS origins, comma separated
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if
// present. Defaults are development-friendly; production deployments are
// expected to override JWT_SECRET and PGSQL_URL.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RATES_OFFICIAL_URL", "https://ve.dolarapi.com/v1/dolares/oficial")
	viper.SetDefault("RATES_PARALLEL_URL", "https://ve.dolarapi.com/v1/dolares/paralelo")
	viper.SetDefault("RATES_FETCH_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 300)
	viper.SetDefault("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"})

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

	cfg.RatesOfficialURL = viper.GetString("RATES_OFFICIAL_URL")
	cfg.RatesParallelURL = viper.GetString("RATES_PARALLEL_URL")

	fetchTimeout, err := time.ParseDuration(viper.GetString("RATES_FETCH_TIMEOUT"))
	if err != nil {
		log.Printf("Warning: Invalid value for RATES_FETCH_TIMEOUT ('%s'). Defaulting to 10s.\n", viper.GetString("RATES_FETCH_TIMEOUT"))
		fetchTimeout = 10 * time.Second
	}
	cfg.RatesFetchTimeout = fetchTimeout

	cfg.RateLimitPerMinute = viper.GetInt64("RATE_LIMIT_PER_MINUTE")
	if cfg.RateLimitPerMinute <= 0 {
		cfg.RateLimitPerMinute = 300
	}

	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")

	return cfg, nil
}
