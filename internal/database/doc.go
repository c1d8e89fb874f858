// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

/*
Package database is the game's storage facade.

It executes statements built with the query subpackage against PostGIS
(lib/pq) or an embedded DuckDB with the spatial extension. The driver is
chosen by config.DatabaseConfig.Driver and decides the query.Dialect every
statement is rendered for.

# Execution

Query and Exec accept any query.Renderer:

	sel := query.Select("id", "url").From("gallery").Where("player_id").Is(query.Int(7))
	records, err := db.Query(ctx, sel)

Every call checks one connection out of the sqlx pool, runs a single
auto-committed statement and returns the connection on every path. A
statement without a caller deadline gets database.query_timeout. Calls go
through a gobreaker circuit breaker; while it is open they fail immediately.

# Errors

Builder errors (query.ErrMalformedValue and friends) are returned as they are.
Everything that went wrong in the store wraps ErrDatabase. Single-row lookups
that match nothing wrap ErrNotFound.

# Results

Records hold rows as ordered (column, text) pairs. Their JSON form is an array
of objects whose keys keep select order and whose values are strings or null.

# Typed access

AddPlayer, AddImage, AddLandmark, AddQuest and the other Add methods insert
one entity and return its generated id where the table has one. PlayerByEmail
and ImagesByPlayer scan into models structs through sqlx.
*/
package database
