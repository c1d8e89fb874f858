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

func TestDelete_Render(t *testing.T) {
	t.Run("unconditional", func(t *testing.T) {
		stmt, err := Delete().From("Player").Render(PostGIS)
		if err != nil {
			t.Fatal(err)
		}
		if stmt.SQL != "DELETE FROM Player" {
			t.Errorf("Expected %q, got %q", "DELETE FROM Player", stmt.SQL)
		}
		if len(stmt.Args) != 0 {
			t.Errorf("Expected no args, got %v", stmt.Args)
		}
	})

	t.Run("where", func(t *testing.T) {
		stmt, err := Delete().From("Player").Where("email").Is(Text("x@y.com")).Render(PostGIS)
		if err != nil {
			t.Fatal(err)
		}
		if want := "DELETE FROM Player WHERE email = ?"; stmt.SQL != want {
			t.Errorf("Expected %q, got %q", want, stmt.SQL)
		}
		if want := []any{"x@y.com"}; !reflect.DeepEqual(stmt.Args, want) {
			t.Errorf("Expected args %v, got %v", want, stmt.Args)
		}
	})

	t.Run("bad table", func(t *testing.T) {
		_, err := Delete().From("").Render(PostGIS)
		if !errors.Is(err, ErrMalformedValue) {
			t.Errorf("Expected ErrMalformedValue, got %v", err)
		}
	})
}
