// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import (
	"errors"
	"testing"
)

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"POINT(7 42)", "POINT(7 42)"},
		{"point( -73.9857  40.7484 )", "POINT(-73.9857 40.7484)"},
		{"SRID=4326;POINT(7 42)", "POINT(7 42)"},
		{"7,42", "POINT(7 42)"},
		{" 7.25 , 42.5 ", "POINT(7.25 42.5)"},
		{"POLYGON((1 2, 3 4, 5 6, 1 2))", "POLYGON((1 2, 3 4, 5 6, 1 2))"},
		{"POLYGON((1 2,3 4,5 6))", "POLYGON((1 2, 3 4, 5 6, 1 2))"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			g, err := ParseGeometry(tt.raw)
			if err != nil {
				t.Fatalf("ParseGeometry() unexpected error: %v", err)
			}
			if got := g.WKT(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseGeometry_Rejects(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr error
	}{
		{"", ErrMalformedValue},
		{"POINT(7)", ErrMalformedValue},
		{"POINT(7 42) OR 1=1", ErrMalformedValue},
		{"POINT(7 42'); DROP TABLE location; --)", ErrMalformedValue},
		{"LINESTRING(1 2, 3 4)", ErrMalformedValue},
		{"SRID=;POINT(7 42)", ErrMalformedValue},
		{"POLYGON((1 2, 3 4))", ErrInvalidPolygon},
		{"POLYGON((1 2, 3 4, 1 2))", ErrInvalidPolygon},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if _, err := ParseGeometry(tt.raw); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPolygonFromJSON(t *testing.T) {
	poly, err := PolygonFromJSON([]byte(`[{"lat":42,"lng":7},{"lat":43,"lng":7},{"lat":43,"lng":8}]`))
	if err != nil {
		t.Fatalf("PolygonFromJSON() unexpected error: %v", err)
	}
	if want := "POLYGON((7 42, 7 43, 8 43, 7 42))"; poly.WKT() != want {
		t.Errorf("Expected %q, got %q", want, poly.WKT())
	}
}

func TestPolygonFromJSON_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"not json", `lat=1`, ErrMalformedValue},
		{"string coordinates", `[{"lat":"42","lng":"7"},{"lat":43,"lng":7},{"lat":43,"lng":8}]`, ErrMalformedValue},
		{"missing lng", `[{"lat":42},{"lat":43,"lng":7},{"lat":43,"lng":8}]`, ErrMalformedValue},
		{"two vertices", `[{"lat":42,"lng":7},{"lat":43,"lng":7}]`, ErrInvalidPolygon},
		{"empty", `[]`, ErrInvalidPolygon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PolygonFromJSON([]byte(tt.body)); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
