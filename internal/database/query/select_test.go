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

func TestSelect_Render(t *testing.T) {
	tests := []struct {
		name     string
		stmt     SelectBuilder
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "no where",
			stmt:    Select("email", "password").From("Player"),
			wantSQL: "SELECT email,password FROM Player",
		},
		{
			name:     "where",
			stmt:     Select("email").From("Player").Where("id").Is(Int(4)),
			wantSQL:  "SELECT email FROM Player WHERE id = ?",
			wantArgs: []any{int64(4)},
		},
		{
			name:     "later where replaces earlier",
			stmt:     Select("url").From("gallery").Where("id").Is(Int(1)).Where("player_id").Is(Int(2)),
			wantSQL:  "SELECT url FROM gallery WHERE player_id = ?",
			wantArgs: []any{int64(2)},
		},
		{
			name:    "join",
			stmt:    Select("*").From("gallery").Join("player").On("gallery.player_id").Equals("player.id"),
			wantSQL: "SELECT * FROM gallery JOIN player ON gallery.player_id = player.id",
		},
		{
			name:    "inner join",
			stmt:    Select("url", "email").From("gallery").InnerJoin("player").On("gallery.player_id").Equals("player.id"),
			wantSQL: "SELECT url,email FROM gallery INNER JOIN player ON gallery.player_id = player.id",
		},
		{
			name:     "join renders before where",
			stmt:     Select("url").From("gallery").Where("email").Is(Text("a@b.com")).Join("player").On("gallery.player_id").Equals("player.id"),
			wantSQL:  "SELECT url FROM gallery JOIN player ON gallery.player_id = player.id WHERE email = ?",
			wantArgs: []any{"a@b.com"},
		},
		{
			name:     "geometry equality binds wkt",
			stmt:     Select("id").From("location").Where("location").Is(Geo{Geometry: Point{Lon: 7, Lat: 42}}),
			wantSQL:  "SELECT id FROM location WHERE location = ST_GeomFromText(?, 4326)",
			wantArgs: []any{"POINT(7 42)"},
		},
		{
			name:    "point projections",
			stmt:    Project(Col("id"), PointLon("location", "lon"), PointLat("location", "lat")).From("landmark"),
			wantSQL: "SELECT id,ST_X(location) AS lon,ST_Y(location) AS lat FROM landmark",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.stmt.Render(PostGIS)
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got.SQL != tt.wantSQL {
				t.Errorf("Expected %q, got %q", tt.wantSQL, got.SQL)
			}
			if len(got.Args) != len(tt.wantArgs) || (len(tt.wantArgs) > 0 && !reflect.DeepEqual(got.Args, tt.wantArgs)) {
				t.Errorf("Expected args %v, got %v", tt.wantArgs, got.Args)
			}
			if got.Op != "SELECT" {
				t.Errorf("Expected op SELECT, got %q", got.Op)
			}
		})
	}
}

func TestSelect_RenderErrors(t *testing.T) {
	tests := []struct {
		name    string
		stmt    SelectBuilder
		wantErr error
	}{
		{"no columns", Select().From("Player"), ErrMissingParameter},
		{"bad table", Select("id").From("Player; DROP TABLE Player"), ErrMalformedValue},
		{"bad column", Select("id, password").From("Player"), ErrMalformedValue},
		{"unrecognized where column", Select("id").From("Player").Where("nickname").Is(Text("x")), ErrUnrecognizedColumn},
		{"value type mismatch", Select("id").From("Player").Where("id").Is(Text("1")), ErrMalformedValue},
		{"nil value", Select("id").From("Player").Where("id").Is(nil), ErrMalformedValue},
		{"bad join attribute", Select("*").From("gallery").Join("player").On("1=1 OR gallery.id").Equals("player.id"), ErrMalformedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.stmt.Render(PostGIS)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSelect_Immutable(t *testing.T) {
	base := Select("url").From("gallery")
	filtered := base.Where("player_id").Is(Int(3))
	joined := base.Join("player").On("gallery.player_id").Equals("player.id")
	_ = joined.Join("location").On("gallery.id").Equals("location.id")

	got, err := base.Render(PostGIS)
	if err != nil {
		t.Fatal(err)
	}
	if got.SQL != "SELECT url FROM gallery" {
		t.Errorf("base builder changed: %q", got.SQL)
	}

	got, err = joined.Render(PostGIS)
	if err != nil {
		t.Fatal(err)
	}
	if want := "SELECT url FROM gallery JOIN player ON gallery.player_id = player.id"; got.SQL != want {
		t.Errorf("Expected %q, got %q", want, got.SQL)
	}

	first, _ := filtered.Render(PostGIS)
	second, _ := filtered.Render(PostGIS)
	if first.SQL != second.SQL || !reflect.DeepEqual(first.Args, second.Args) {
		t.Error("rendering the same builder twice gave different statements")
	}
}
