// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestWithinRadiusOf(t *testing.T) {
	stmt, err := Select("id", "description").
		From("landmark").
		WithinRadiusOf(Point{Lon: 7.0, Lat: 42.0}, 500, "landmark", "location").
		Render(PostGIS)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	want := "SELECT id,description FROM landmark WHERE " +
		"ST_Contains(ST_Buffer(ST_MakePoint(7, 42)::geography, 500)::geometry, landmark.location)"
	if stmt.SQL != want {
		t.Errorf("Expected %q, got %q", want, stmt.SQL)
	}
	if !strings.Contains(stmt.SQL, "ST_Buffer(ST_MakePoint(") {
		t.Error("radius predicate does not buffer a point")
	}
	if len(stmt.Args) != 0 {
		t.Errorf("Expected no args, got %v", stmt.Args)
	}
}

func TestWithinRadiusOf_DuckDB(t *testing.T) {
	stmt, err := Select("id").
		From("landmark").
		WithinRadiusOf(Point{Lon: 7.5, Lat: 42.25}, 120.5, "landmark", "location").
		Render(DuckDB)
	if err != nil {
		t.Fatal(err)
	}
	want := "SELECT id FROM landmark WHERE " +
		"ST_Distance_Sphere(ST_Point(42.25, 7.5), ST_FlipCoordinates(landmark.location)) <= 120.5"
	if stmt.SQL != want {
		t.Errorf("Expected %q, got %q", want, stmt.SQL)
	}
}

func TestWithinRadiusOf_Errors(t *testing.T) {
	tests := []struct {
		name    string
		center  Point
		radius  float64
		column  string
		wantErr error
	}{
		{"zero radius", Point{Lon: 7, Lat: 42}, 0, "location", ErrMalformedValue},
		{"negative radius", Point{Lon: 7, Lat: 42}, -1, "location", ErrMalformedValue},
		{"infinite radius", Point{Lon: 7, Lat: 42}, math.Inf(1), "location", ErrMalformedValue},
		{"latitude out of range", Point{Lon: 7, Lat: 95}, 10, "location", ErrMalformedValue},
		{"non-geometry column", Point{Lon: 7, Lat: 42}, 10, "description", ErrMalformedValue},
		{"unknown column", Point{Lon: 7, Lat: 42}, 10, "geom", ErrUnrecognizedColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Select("id").From("landmark").
				WithinRadiusOf(tt.center, tt.radius, "landmark", tt.column).
				Render(PostGIS)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func triangle(t *testing.T) Polygon {
	t.Helper()
	poly, err := NewPolygon([]Point{{Lon: 1, Lat: 2}, {Lon: 3, Lat: 4}, {Lon: 5, Lat: 6}})
	if err != nil {
		t.Fatalf("NewPolygon() unexpected error: %v", err)
	}
	return poly
}

func TestWithinPoly(t *testing.T) {
	stmt, err := Select("id").From("location").WithinPoly(triangle(t), "location", "location").Render(PostGIS)
	if err != nil {
		t.Fatal(err)
	}
	want := "SELECT id FROM location WHERE " +
		"ST_Contains(ST_SetSRID(ST_GeomFromText('POLYGON((1 2, 3 4, 5 6, 1 2))'), 4326), location.location)"
	if stmt.SQL != want {
		t.Errorf("Expected %q, got %q", want, stmt.SQL)
	}
}

func TestWithinPoly_TooFewVertices(t *testing.T) {
	_, err := NewPolygon([]Point{{Lon: 1, Lat: 2}, {Lon: 3, Lat: 4}})
	if !errors.Is(err, ErrInvalidPolygon) {
		t.Errorf("NewPolygon error = %v, want ErrInvalidPolygon", err)
	}

	// A zero Polygon never made it through NewPolygon; Render still refuses it.
	_, err = Select("id").From("location").WithinPoly(Polygon{}, "location", "location").Render(PostGIS)
	if !errors.Is(err, ErrInvalidPolygon) {
		t.Errorf("Render error = %v, want ErrInvalidPolygon", err)
	}
}

func TestPolygonImageSearch(t *testing.T) {
	stmt, err := PolygonImageSearch(triangle(t)).Render(PostGIS)
	if err != nil {
		t.Fatal(err)
	}

	inner := "SELECT id,location FROM location WHERE " +
		"ST_Contains(ST_SetSRID(ST_GeomFromText('POLYGON((1 2, 3 4, 5 6, 1 2))'), 4326), location.location)"
	joined := "SELECT matches.id,matches.location,gallery.url FROM (" + inner +
		") AS matches INNER JOIN gallery ON matches.id = gallery.id"
	want := "SELECT ST_X(ST_Centroid(ST_Transform(images.location, 4326))) AS lon," +
		"ST_Y(ST_Centroid(ST_Transform(images.location, 4326))) AS lat,images.url FROM (" + joined + ") AS images"

	if stmt.SQL != want {
		t.Errorf("Expected\n%s\ngot\n%s", want, stmt.SQL)
	}
	if stmt.Table != "location" {
		t.Errorf("Expected table label %q, got %q", "location", stmt.Table)
	}
}

func TestPolygonImageSearch_DuckDB(t *testing.T) {
	stmt, err := PolygonImageSearch(triangle(t)).Render(DuckDB)
	if err != nil {
		t.Fatal(err)
	}
	for _, fragment := range []string{
		"ST_X(ST_Centroid(images.location)) AS lon",
		"ST_Contains(ST_GeomFromText('POLYGON((1 2, 3 4, 5 6, 1 2))'), location.location)",
		") AS matches INNER JOIN gallery ON matches.id = gallery.id",
	} {
		if !strings.Contains(stmt.SQL, fragment) {
			t.Errorf("Expected SQL to contain %q, got %q", fragment, stmt.SQL)
		}
	}
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{"postgres", "postgis"},
		{"duckdb", "duckdb"},
	}
	for _, tt := range tests {
		d, err := DialectFor(tt.driver)
		if err != nil {
			t.Fatalf("DialectFor(%q) unexpected error: %v", tt.driver, err)
		}
		if d.Name() != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, d.Name())
		}
	}
	if _, err := DialectFor("sqlite3"); err == nil {
		t.Error("expected an error for an unsupported driver")
	}
}
