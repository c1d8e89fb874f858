// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

// Package query builds the SQL statements behind the game API.
//
// Statements are immutable values assembled through a fluent grammar and
// turned into SQL text plus ordered bind values by a single Render call:
//
//	stmt, err := query.Update("Player").
//	    Set("email").To(query.Text("a@b.com")).
//	    Where("id").Is(query.Int(123)).
//	    Render(query.PostGIS)
//	// stmt.SQL:  "UPDATE Player SET email = ? WHERE id = ?"
//	// stmt.Args: ["a@b.com", 123]
//
// # Grammar
//
//   - Select(cols...).From(table) [.Where(col).Is(v) | .WithinRadiusOf(...) | .WithinPoly(...)] [.Join(t).On(a).Equals(b)]
//   - Update(table).Set(col).To(v).Where(col).Is(v)
//   - Delete().From(table) [.Where(col).Is(v)]
//   - Insert(table, cols...).Values(vs...) [.Returning(col)]
//
// Each step returns a new value of a narrower type, so an UPDATE cannot
// reach Is before To, and a builder can be rendered more than once.
//
// # Typed values
//
// Bind values are Int, Time, Text or Geo. The column type table maps every
// column of the game schema to one of those types; ParseValue and Bind turn
// untyped request strings into the matching value and reject unknown
// columns with ErrUnrecognizedColumn.
//
// # Spatial predicates
//
// Radius and polygon containment are rendered by a Dialect. Their
// coordinates are embedded as SQL literals, which is only done after each
// number has been parsed as a finite float and formatted again. Geometry
// values compared with "=" or inserted are bound as WKT parameters.
//
// # Placeholders
//
// Render always emits "?". The database package rebinds to the driver's
// placeholder style ($1, $2, ... for PostgreSQL) before execution.
package query
