package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported database types
const (
	DatabasePostgres = "postgres"
	DatabasePgx      = "pgx"
	DatabaseSQLite   = "sqlite"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	AllowedOrigin string
	RateLimit     float64 // requests per second per client, 0 disables
	RateBurst     int
	TrustProxy    bool // read client IPs from X-Forwarded-For / X-Real-IP
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	fs := flag.NewFlagSet("quickly-notes", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres, pgx or sqlite)")
	fs.StringVar(&cfg.AllowedOrigin, "origin", "", "Allowed cross-origin client URL")

	// Rate limiting
	fs.Float64Var(&cfg.RateLimit, "rate", -1, "Requests per second per client (0 disables)")
	fs.IntVar(&cfg.RateBurst, "burst", 0, "Rate limiter burst size")
	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", false, "Trust X-Forwarded-For from a reverse proxy")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabasePostgres
		}
	}
	switch cfg.DatabaseType {
	case DatabasePostgres, DatabasePgx, DatabaseSQLite:
	default:
		return Config{}, errors.New("database type must be one of: postgres, pgx, sqlite")
	}

	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = os.Getenv("CLIENT_URL")
		if cfg.AllowedOrigin == "" {
			cfg.AllowedOrigin = "http://localhost:5173"
		}
	}

	if cfg.RateLimit < 0 {
		cfg.RateLimit = 0
		if rateStr := os.Getenv("RATE_LIMIT"); rateStr != "" {
			rate, err := strconv.ParseFloat(rateStr, 64)
			if err != nil || rate < 0 {
				return Config{}, errors.New("invalid RATE_LIMIT env variable")
			}
			cfg.RateLimit = rate
		}
	}
	if cfg.RateBurst == 0 {
		if burstStr := os.Getenv("RATE_BURST"); burstStr != "" {
			burst, err := strconv.Atoi(burstStr)
			if err != nil {
				return Config{}, errors.New("invalid RATE_BURST env variable")
			}
			cfg.RateBurst = burst
		}
	}
	if !cfg.TrustProxy {
		if proxyStr := os.Getenv("TRUST_PROXY"); proxyStr != "" {
			trust, err := strconv.ParseBool(proxyStr)
			if err != nil {
				return Config{}, errors.New("invalid TRUST_PROXY env variable")
			}
			cfg.TrustProxy = trust
		}
	}

	if cfg.RateLimit > 0 && cfg.RateBurst <= 0 {
		cfg.RateBurst = 10
	}

	return cfg, nil
}
