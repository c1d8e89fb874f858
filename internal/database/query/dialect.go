// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import "fmt"

// Dialect renders the spatial fragments that differ between stores.
// Statements always render "?" placeholders; rebinding to the driver's
// placeholder style happens at execution time.
type Dialect interface {
	// Name identifies the dialect in logs and metrics.
	Name() string
	// GeometryParam is the placeholder expression for a WKT geometry bind.
	GeometryParam() string
	// WithinRadius is true when column lies within radius meters of center.
	WithinRadius(center Point, radius float64, column string) string
	// WithinPolygon is true when column lies inside poly.
	WithinPolygon(poly Polygon, column string) string
	// PointX and PointY project a stored point as longitude and latitude.
	PointX(column string) string
	PointY(column string) string
	// CentroidX and CentroidY project the WGS 84 centroid of column.
	CentroidX(column string) string
	CentroidY(column string) string
}

// PostGIS is the PostgreSQL + PostGIS dialect.
var PostGIS Dialect = postgis{}

// DuckDB is the DuckDB spatial extension dialect.
var DuckDB Dialect = duckdb{}

// DialectFor resolves a dialect by database driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "postgres", "postgis", "pq":
		return PostGIS, nil
	case "duckdb":
		return DuckDB, nil
	default:
		return nil, fmt.Errorf("no SQL dialect for driver %q", driver)
	}
}

type postgis struct{}

func (postgis) Name() string { return "postgis" }

func (postgis) GeometryParam() string {
	return fmt.Sprintf("ST_GeomFromText(?, %d)", SRID)
}

// The buffer is computed on geography so radius is in meters, then cast back
// to geometry for the containment test.
func (postgis) WithinRadius(center Point, radius float64, column string) string {
	return fmt.Sprintf("ST_Contains(ST_Buffer(ST_MakePoint(%s, %s)::geography, %s)::geometry, %s)",
		formatCoord(center.Lon), formatCoord(center.Lat), formatCoord(radius), column)
}

func (postgis) WithinPolygon(poly Polygon, column string) string {
	return fmt.Sprintf("ST_Contains(ST_SetSRID(ST_GeomFromText('%s'), %d), %s)", poly.WKT(), SRID, column)
}

func (postgis) PointX(column string) string { return "ST_X(" + column + ")" }
func (postgis) PointY(column string) string { return "ST_Y(" + column + ")" }

func (postgis) CentroidX(column string) string {
	return fmt.Sprintf("ST_X(ST_Centroid(ST_Transform(%s, %d)))", column, SRID)
}

func (postgis) CentroidY(column string) string {
	return fmt.Sprintf("ST_Y(ST_Centroid(ST_Transform(%s, %d)))", column, SRID)
}

type duckdb struct{}

func (duckdb) Name() string { return "duckdb" }

func (duckdb) GeometryParam() string { return "ST_GeomFromText(?)" }

// ST_Distance_Sphere expects [latitude, longitude] axis order, so the center
// is built lat-first and the stored (lon, lat) column is flipped.
func (duckdb) WithinRadius(center Point, radius float64, column string) string {
	return fmt.Sprintf("ST_Distance_Sphere(ST_Point(%s, %s), ST_FlipCoordinates(%s)) <= %s",
		formatCoord(center.Lat), formatCoord(center.Lon), column, formatCoord(radius))
}

func (duckdb) WithinPolygon(poly Polygon, column string) string {
	return fmt.Sprintf("ST_Contains(ST_GeomFromText('%s'), %s)", poly.WKT(), column)
}

func (duckdb) PointX(column string) string { return "ST_X(" + column + ")" }
func (duckdb) PointY(column string) string { return "ST_Y(" + column + ")" }

func (duckdb) CentroidX(column string) string { return "ST_X(ST_Centroid(" + column + "))" }
func (duckdb) CentroidY(column string) string { return "ST_Y(ST_Centroid(" + column + "))" }
