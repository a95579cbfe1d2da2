// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: Connection string (required)
  - DatabaseType: postgres, pgx or sqlite (default: postgres)
  - AllowedOrigin: Cross-origin client URL (default: http://localhost:5173)
  - RateLimit, RateBurst: Per-client token bucket (default: disabled)

# CLI Flags

	-p       Server port
	-d       Database URL
	-t       Database type
	-origin  Allowed client origin
	-rate    Requests per second per client
	-burst   Rate limiter burst size
	-trust-proxy  Read client IPs from X-Forwarded-For / X-Real-IP

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	CLIENT_URL    → -origin
	RATE_LIMIT    → -rate
	RATE_BURST    → -burst
	TRUST_PROXY   → -trust-proxy

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded first if present; it never overrides variables
already set in the environment.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - PORT, RATE_LIMIT, RATE_BURST or TRUST_PROXY cannot be parsed
  - DATABASE_TYPE is not one of the supported drivers
*/
package cliparse
