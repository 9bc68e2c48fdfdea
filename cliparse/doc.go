// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string or sqlite file path (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - PrivilegedRoles: Roles ranked ahead of the rest (default: sergeant,expert,activist)
  - LogLevel: slog level (default: info)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-privileged   Privileged roles, comma separated
	-log-level    Log level

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	PRIVILEGED_ROLES → -privileged
	LOG_LEVEL        → -log-level

CLI flags take precedence over environment variables. Call LoadDotEnv
before ParseFlags to pull variables from a .env file; variables already
present in the environment are left alone.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - DATABASE_TYPE is not sqlite or postgres
  - PRIVILEGED_ROLES names an unknown role
  - LOG_LEVEL is not a slog level name
*/
package cliparse
