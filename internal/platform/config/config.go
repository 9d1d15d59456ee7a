package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// UpstreamBaseURL is the base URL of the property-management API that
	// serves the rooms, tables, bookings, reservations, orders and cab
	// collections.
	UpstreamBaseURL string

	// SnapshotRefreshInterval is the period of the background snapshot
	// poller; SnapshotCacheTTL is how long a fetched snapshot stays fresh.
	SnapshotRefreshInterval time.Duration
	SnapshotCacheTTL        time.Duration

	// RateLimitFormatted is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimitFormatted string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "frontdesk-backend")
	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:5000")
	viper.SetDefault("SNAPSHOT_REFRESH_INTERVAL", "30s")
	viper.SetDefault("SNAPSHOT_CACHE_TTL", "30s")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.UpstreamBaseURL = viper.GetString("UPSTREAM_BASE_URL")
	if cfg.UpstreamBaseURL == "" {
		log.Println("Warning: UPSTREAM_BASE_URL environment variable not set. Live floor data will be unavailable.")
	}

	refreshStr := viper.GetString("SNAPSHOT_REFRESH_INTERVAL")
	refreshInterval, err := time.ParseDuration(refreshStr)
	if err != nil || refreshInterval <= 0 {
		refreshInterval = 30 * time.Second
		log.Printf("Warning: Invalid value for SNAPSHOT_REFRESH_INTERVAL ('%s'). Defaulting to %s.\n", refreshStr, refreshInterval)
	}
	cfg.SnapshotRefreshInterval = refreshInterval

	ttlStr := viper.GetString("SNAPSHOT_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(ttlStr)
	if err != nil {
		cacheTTL = 30 * time.Second
		log.Printf("Warning: Invalid value for SNAPSHOT_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, cacheTTL)
	}
	cfg.SnapshotCacheTTL = cacheTTL

	cfg.RateLimitFormatted = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
