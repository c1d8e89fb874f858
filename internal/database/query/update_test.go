// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import (
	"errors"
	"reflect"
	"testing"
)

func TestUpdate_Render(t *testing.T) {
	stmt, err := Update("Player").Set("email").To(Text("a@b.com")).Where("id").Is(Int(123)).Render(PostGIS)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	if want := "UPDATE Player SET email = ? WHERE id = ?"; stmt.SQL != want {
		t.Errorf("Expected %q, got %q", want, stmt.SQL)
	}
	if want := []any{"a@b.com", int64(123)}; !reflect.DeepEqual(stmt.Args, want) {
		t.Errorf("Expected args %v, got %v", want, stmt.Args)
	}
	if stmt.Op != "UPDATE" || stmt.Table != "Player" {
		t.Errorf("unexpected labels %q %q", stmt.Op, stmt.Table)
	}
}

func TestUpdate_GeometrySet(t *testing.T) {
	stmt, err := Update("landmark").
		Set("location").To(Geo{Geometry: Point{Lon: -0.1, Lat: 51.5}}).
		Where("id").Is(Int(9)).
		Render(DuckDB)
	if err != nil {
		t.Fatal(err)
	}
	if want := "UPDATE landmark SET location = ST_GeomFromText(?) WHERE id = ?"; stmt.SQL != want {
		t.Errorf("Expected %q, got %q", want, stmt.SQL)
	}
	if want := []any{"POINT(-0.1 51.5)", int64(9)}; !reflect.DeepEqual(stmt.Args, want) {
		t.Errorf("Expected args %v, got %v", want, stmt.Args)
	}
}

func TestUpdate_RenderErrors(t *testing.T) {
	tests := []struct {
		name    string
		stmt    UpdateStatement
		wantErr error
	}{
		{"bad table", Update("Player x").Set("email").To(Text("a")).Where("id").Is(Int(1)), ErrMalformedValue},
		{"unknown set column", Update("Player").Set("nickname").To(Text("a")).Where("id").Is(Int(1)), ErrUnrecognizedColumn},
		{"set type mismatch", Update("Player").Set("email").To(Int(1)).Where("id").Is(Int(1)), ErrMalformedValue},
		{"where type mismatch", Update("Player").Set("email").To(Text("a")).Where("id").Is(Text("1")), ErrMalformedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.stmt.Render(PostGIS); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
