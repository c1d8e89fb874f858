// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/geoquest/internal/database/query"
	"github.com/tomtom215/geoquest/internal/logging"
)

// tableDDL is one CREATE statement. Spatial statements are skipped when the
// store has no geometry support.
type tableDDL struct {
	name    string
	spatial bool
	sql     string
}

// gameTables are the tables EnsureSchema creates.
var gameTables = map[string]struct{}{
	"player":         {},
	"player_stats":   {},
	"gallery":        {},
	"location":       {},
	"landmark_type":  {},
	"landmark":       {},
	"quest_type":     {},
	"quest":          {},
	"quest_location": {},
}

// metricTable is the table label for statement metrics. Table names come
// from requests, so anything outside the game schema is "other".
func metricTable(table string) string {
	if _, ok := gameTables[strings.ToLower(table)]; ok {
		return strings.ToLower(table)
	}
	return "other"
}

var postgisSchema = []tableDDL{
	{"postgis", true, `CREATE EXTENSION IF NOT EXISTS postgis`},
	{"player", false, `CREATE TABLE IF NOT EXISTS player (
		id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`},
	{"player_stats", false, `CREATE TABLE IF NOT EXISTS player_stats (
		player_id INTEGER PRIMARY KEY REFERENCES player(id) ON DELETE CASCADE,
		xp INTEGER NOT NULL DEFAULT 0,
		cash INTEGER NOT NULL DEFAULT 0
	)`},
	{"gallery", false, `CREATE TABLE IF NOT EXISTS gallery (
		id SERIAL PRIMARY KEY,
		ts TIMESTAMP NOT NULL,
		player_id INTEGER NOT NULL REFERENCES player(id) ON DELETE CASCADE,
		url TEXT NOT NULL
	)`},
	{"location", true, `CREATE TABLE IF NOT EXISTS location (
		id INTEGER PRIMARY KEY REFERENCES gallery(id) ON DELETE CASCADE,
		location geometry(Point, 4326) NOT NULL
	)`},
	{"landmark_type", false, `CREATE TABLE IF NOT EXISTS landmark_type (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL
	)`},
	{"landmark", true, `CREATE TABLE IF NOT EXISTS landmark (
		id SERIAL PRIMARY KEY,
		location geometry(Point, 4326) NOT NULL,
		type INTEGER REFERENCES landmark_type(id),
		description TEXT
	)`},
	{"quest_type", false, `CREATE TABLE IF NOT EXISTS quest_type (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL
	)`},
	{"quest", false, `CREATE TABLE IF NOT EXISTS quest (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		type INTEGER REFERENCES quest_type(id),
		xp INTEGER NOT NULL DEFAULT 0,
		cash INTEGER NOT NULL DEFAULT 0
	)`},
	{"quest_location", true, `CREATE TABLE IF NOT EXISTS quest_location (
		id SERIAL PRIMARY KEY,
		quest_id INTEGER NOT NULL REFERENCES quest(id) ON DELETE CASCADE,
		location geometry(Point, 4326) NOT NULL
	)`},
	{"location_gist", true, `CREATE INDEX IF NOT EXISTS idx_location_location ON location USING GIST (location)`},
	{"landmark_gist", true, `CREATE INDEX IF NOT EXISTS idx_landmark_location ON landmark USING GIST (location)`},
	{"quest_location_gist", true, `CREATE INDEX IF NOT EXISTS idx_quest_location_location ON quest_location USING GIST (location)`},
}

// DuckDB has no SERIAL; ids come from sequences. Foreign keys are left out
// because DuckDB cannot delete a referenced row even with a cascade.
var duckdbSchema = []tableDDL{
	{"player_id_seq", false, `CREATE SEQUENCE IF NOT EXISTS player_id_seq`},
	{"gallery_id_seq", false, `CREATE SEQUENCE IF NOT EXISTS gallery_id_seq`},
	{"landmark_type_id_seq", false, `CREATE SEQUENCE IF NOT EXISTS landmark_type_id_seq`},
	{"landmark_id_seq", false, `CREATE SEQUENCE IF NOT EXISTS landmark_id_seq`},
	{"quest_type_id_seq", false, `CREATE SEQUENCE IF NOT EXISTS quest_type_id_seq`},
	{"quest_id_seq", false, `CREATE SEQUENCE IF NOT EXISTS quest_id_seq`},
	{"quest_location_id_seq", false, `CREATE SEQUENCE IF NOT EXISTS quest_location_id_seq`},
	{"player", false, `CREATE TABLE IF NOT EXISTS player (
		id BIGINT PRIMARY KEY DEFAULT nextval('player_id_seq'),
		email VARCHAR NOT NULL UNIQUE,
		password VARCHAR NOT NULL
	)`},
	{"player_stats", false, `CREATE TABLE IF NOT EXISTS player_stats (
		player_id BIGINT PRIMARY KEY,
		xp BIGINT NOT NULL DEFAULT 0,
		cash BIGINT NOT NULL DEFAULT 0
	)`},
	{"gallery", false, `CREATE TABLE IF NOT EXISTS gallery (
		id BIGINT PRIMARY KEY DEFAULT nextval('gallery_id_seq'),
		ts TIMESTAMP NOT NULL,
		player_id BIGINT NOT NULL,
		url VARCHAR NOT NULL
	)`},
	{"location", true, `CREATE TABLE IF NOT EXISTS location (
		id BIGINT PRIMARY KEY,
		location GEOMETRY NOT NULL
	)`},
	{"landmark_type", false, `CREATE TABLE IF NOT EXISTS landmark_type (
		id BIGINT PRIMARY KEY DEFAULT nextval('landmark_type_id_seq'),
		name VARCHAR NOT NULL
	)`},
	{"landmark", true, `CREATE TABLE IF NOT EXISTS landmark (
		id BIGINT PRIMARY KEY DEFAULT nextval('landmark_id_seq'),
		location GEOMETRY NOT NULL,
		type BIGINT,
		description VARCHAR
	)`},
	{"quest_type", false, `CREATE TABLE IF NOT EXISTS quest_type (
		id BIGINT PRIMARY KEY DEFAULT nextval('quest_type_id_seq'),
		name VARCHAR NOT NULL
	)`},
	{"quest", false, `CREATE TABLE IF NOT EXISTS quest (
		id BIGINT PRIMARY KEY DEFAULT nextval('quest_id_seq'),
		name VARCHAR NOT NULL,
		description VARCHAR,
		type BIGINT,
		xp BIGINT NOT NULL DEFAULT 0,
		cash BIGINT NOT NULL DEFAULT 0
	)`},
	{"quest_location", true, `CREATE TABLE IF NOT EXISTS quest_location (
		id BIGINT PRIMARY KEY DEFAULT nextval('quest_location_id_seq'),
		quest_id BIGINT NOT NULL,
		location GEOMETRY NOT NULL
	)`},
}

// EnsureSchema creates the game tables that do not exist yet. It never
// alters or drops existing tables.
func (db *DB) EnsureSchema(ctx context.Context) error {
	ddl := postgisSchema
	if db.dialect == query.DuckDB {
		ddl = duckdbSchema
	}

	for _, t := range ddl {
		if t.spatial && !db.spatialAvailable {
			logging.Warn().Str("table", t.name).Msg("Skipping spatial DDL, no geometry support")
			continue
		}
		if _, err := db.conn.ExecContext(ctx, t.sql); err != nil {
			return fmt.Errorf("%w: create %s: %w", ErrDatabase, t.name, err)
		}
	}
	return nil
}
