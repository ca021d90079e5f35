package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	RunMigrations   bool
	JWTSecret       string
	JWTIssuer       string
	StorageBackend  string
	ShutdownTimeout time.Duration

	// HTTP edge
	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string

	// Ledger policy
	PostingRulesFile         string
	CashAccountCodes         []string
	BlockNonZeroDeactivation bool
	SweepConcurrency         int
	SystemUserID             string // Actor recorded for seeding and sweeps
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "erp-ledger")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LEDGER_STORAGE", StoragePostgres)
	v.SetDefault("LEDGER_POSTING_RULES_FILE", "")
	v.SetDefault("LEDGER_CASH_ACCOUNT_CODES", "")
	v.SetDefault("LEDGER_BLOCK_NONZERO_DEACTIVATION", true)
	v.SetDefault("LEDGER_SWEEP_CONCURRENCY", 4)
	v.SetDefault("LEDGER_SYSTEM_USER", "system")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:              v.GetString("PGSQL_URL"),
		Port:                     v.GetString("PORT"),
		IsProduction:             v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:            v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:            v.GetBool("RUN_MIGRATIONS"),
		JWTSecret:                v.GetString("JWT_SECRET"),
		JWTIssuer:                v.GetString("JWT_ISSUER"),
		StorageBackend:           strings.ToLower(v.GetString("LEDGER_STORAGE")),
		RateLimit:                v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:       splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PostingRulesFile:         v.GetString("LEDGER_POSTING_RULES_FILE"),
		CashAccountCodes:         splitList(v.GetString("LEDGER_CASH_ACCOUNT_CODES")),
		BlockNonZeroDeactivation: v.GetBool("LEDGER_BLOCK_NONZERO_DEACTIVATION"),
		SweepConcurrency:         v.GetInt("LEDGER_SWEEP_CONCURRENCY"),
		SystemUserID:             v.GetString("LEDGER_SYSTEM_USER"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageBackend {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StorageMemory:
		log.Println("Warning: LEDGER_STORAGE=memory, ledger data is not persisted.")
	default:
		log.Printf("Warning: unknown LEDGER_STORAGE %q. Defaulting to %s.\n", cfg.StorageBackend, StoragePostgres)
		cfg.StorageBackend = StoragePostgres
	}

	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	shutdownStr := v.GetString("SHUTDOWN_TIMEOUT")
	shutdown, err := time.ParseDuration(shutdownStr)
	if err != nil {
		shutdown = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdown)
	}
	cfg.ShutdownTimeout = shutdown

	if cfg.SweepConcurrency < 1 {
		log.Printf("Warning: LEDGER_SWEEP_CONCURRENCY must be positive, got %d. Defaulting to 1.\n", cfg.SweepConcurrency)
		cfg.SweepConcurrency = 1
	}

	return cfg, nil
}

// splitList parses a comma-separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
