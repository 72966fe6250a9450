package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string // reference database (accounts, providers, categories)
	JobsDatabaseURL string // production job-tracking database (read-only)
	RedisAddr       string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool

	// Document rendering
	GotenbergURL     string
	InvoiceExportDir string

	// Billing run snapshot lifetime
	SnapshotTTL time.Duration

	// Rate limiting, ulule/limiter format (e.g. "60-M")
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("JOBS_PGSQL_URL", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("GOTENBERG_URL", "")
	viper.SetDefault("INVOICE_EXPORT_DIR", "/home/proxyserver/clerks/exports")
	viper.SetDefault("SNAPSHOT_TTL", "12h")
	viper.SetDefault("RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.JobsDatabaseURL = viper.GetString("JOBS_PGSQL_URL")
	if cfg.JobsDatabaseURL == "" {
		log.Println("Warning: JOBS_PGSQL_URL environment variable not set. Job data fetches will fail.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.GotenbergURL = viper.GetString("GOTENBERG_URL")
	if cfg.GotenbergURL == "" {
		log.Println("Warning: GOTENBERG_URL not set. PDF generation will not function.")
	}

	cfg.InvoiceExportDir = viper.GetString("INVOICE_EXPORT_DIR")

	snapshotTTLStr := viper.GetString("SNAPSHOT_TTL")
	snapshotTTL, err := time.ParseDuration(snapshotTTLStr)
	if err != nil {
		snapshotTTL = 12 * time.Hour
		if snapshotTTLStr != "" {
			log.Printf("Warning: Invalid value for SNAPSHOT_TTL ('%s'). Defaulting to %s.\n", snapshotTTLStr, snapshotTTL.String())
		}
	}
	cfg.SnapshotTTL = snapshotTTL

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
