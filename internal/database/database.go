// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/tomtom215/geoquest/internal/config"
	"github.com/tomtom215/geoquest/internal/database/query"
	"github.com/tomtom215/geoquest/internal/logging"
)

// DB is the game store. It renders builder values for its dialect, checks
// out one pooled connection per statement and converts results to Records.
// It is safe for concurrent use.
type DB struct {
	conn    *sqlx.DB
	cfg     *config.DatabaseConfig
	dialect query.Dialect
	breaker *breaker

	spatialAvailable bool
}

// New opens the configured store, verifies connectivity, loads spatial
// support and optionally creates the game schema.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	dialect, err := query.DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	conn, err := sqlx.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		conn:             conn,
		cfg:              cfg,
		dialect:          dialect,
		breaker:          newBreaker("database", &cfg.Breaker),
		spatialAvailable: dialect == query.PostGIS,
	}

	db.configureConnectionPool()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	if dialect == query.DuckDB && cfg.Spatial {
		db.loadSpatialExtension(ctx)
	}

	if cfg.CreateSchema {
		if err := db.EnsureSchema(ctx); err != nil {
			closeQuietly(conn)
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	logging.Info().
		Str("driver", cfg.Driver).
		Str("dialect", dialect.Name()).
		Bool("spatial", db.spatialAvailable).
		Msg("Database ready")

	return db, nil
}

// configureConnectionPool applies pool limits. An in-memory DuckDB database
// exists per connection, so it is pinned to one.
func (db *DB) configureConnectionPool() {
	maxOpen, maxIdle := db.cfg.MaxOpenConns, db.cfg.MaxIdleConns
	if db.dialect == query.DuckDB && isInMemory(db.cfg.DSN) {
		maxOpen, maxIdle = 1, 1
	}

	db.conn.SetMaxOpenConns(maxOpen)
	db.conn.SetMaxIdleConns(maxIdle)
	db.conn.SetConnMaxLifetime(db.cfg.ConnMaxLifetime)
	db.conn.SetConnMaxIdleTime(db.cfg.ConnMaxIdleTime)
}

func isInMemory(dsn string) bool {
	return dsn == "" || strings.HasPrefix(dsn, ":memory:")
}

// Close closes the connection pool.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	return db.conn.PingContext(ctx)
}

// Conn returns the underlying pool, e.g. for the Prometheus DBStats collector.
func (db *DB) Conn() *sql.DB {
	return db.conn.DB
}

// Dialect returns the SQL dialect statements are rendered for.
func (db *DB) Dialect() query.Dialect {
	return db.dialect
}

// IsSpatialAvailable reports whether geometry tables and predicates can be used.
func (db *DB) IsSpatialAvailable() bool {
	return db.spatialAvailable
}

// BreakerState reports the circuit breaker state for health checks.
func (db *DB) BreakerState() string {
	return db.breaker.state()
}
