// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

/*
Package config provides centralized configuration management for Geoquest.

Configuration is layered with koanf. Later sources override earlier ones:

 1. Struct defaults (defaultConfig)
 2. The first YAML file found: $CONFIG_PATH, then DefaultConfigPaths
 3. Environment variables listed in envMappings

Unknown environment variables are ignored, so the process environment can be
loaded wholesale.

# Configuration Structure

  - DatabaseConfig: driver (postgres or duckdb), DSN, pool limits, query
    timeout, schema bootstrap and circuit breaker tuning
  - ServerConfig: listen address, HTTP timeouts and deployment environment
  - SecurityConfig: CORS, rate limiting, password hashing and optional
    session tokens
  - LoggingConfig: zerolog level, format and caller annotation

# Example

	DB_DRIVER=postgres
	DATABASE_URL=postgres://geoquest:secret@db:5432/geoquest?sslmode=disable
	HTTP_PORT=8500
	PASSWORD_HASHING=bcrypt
	LOG_LEVEL=info

# Validation

Load and LoadWithKoanf return an error when the merged configuration is not
usable. Plain-text password storage is refused when ENVIRONMENT=production.
*/
package config
