// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package database

import (
	"context"
	"time"

	"github.com/tomtom215/geoquest/internal/logging"
)

const extensionTimeout = 30 * time.Second

// loadSpatialExtension installs and loads DuckDB spatial, then verifies it
// with a trivial geometry call. Failure is not fatal: the store keeps
// serving non-spatial tables and geometry statements fail as database errors.
func (db *DB) loadSpatialExtension(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, extensionTimeout)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, "INSTALL spatial;"); err != nil {
		// may already be installed locally; LOAD decides
		logging.Debug().Err(err).Msg("INSTALL spatial failed, trying LOAD")
	}
	if _, err := db.conn.ExecContext(ctx, "LOAD spatial;"); err != nil {
		logging.Warn().Err(err).Msg("DuckDB spatial extension unavailable, geometry tables disabled")
		return
	}

	var wkt string
	if err := db.conn.QueryRowContext(ctx, "SELECT ST_AsText(ST_Point(1, 2))").Scan(&wkt); err != nil {
		logging.Warn().Err(err).Msg("DuckDB spatial extension loaded but functions unavailable")
		return
	}

	db.spatialAvailable = true
	logging.Debug().Str("probe", wkt).Msg("DuckDB spatial extension loaded")
}
