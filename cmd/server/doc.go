// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

/*
Command server runs the geoquest HTTP backend.

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Store
	DB_DRIVER=postgres           # postgres or duckdb
	DATABASE_URL=postgres://...  # DSN; ":memory:" with duckdb for a throwaway store
	DB_CREATE_SCHEMA=false       # create the nine game tables on startup
	DB_SPATIAL=true              # load the DuckDB spatial extension

	# Server
	HTTP_PORT=8500
	HTTP_REQUEST_TIMEOUT=20s
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Security
	PASSWORD_HASHING=plain       # plain or bcrypt
	JWT_SECRET=                  # set to issue session tokens from /auth
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m

A config file is read from CONFIG_PATH, or config.yaml in the working
directory when present.

# Supervision

The HTTP server and the store monitor run under a suture supervisor tree.
SIGINT and SIGTERM cancel the root context; the server then drains in-flight
requests for up to 10 seconds before the store is closed.

# Example

	DB_DRIVER=duckdb DATABASE_URL=:memory: DB_CREATE_SCHEMA=true ./server
*/
package main
