// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Value is a typed bind value. The four implementations mirror the four
// semantic types of the column table.
type Value interface {
	// Type reports the semantic type carried by the value.
	Type() SemanticType
	// Arg returns the value handed to the database driver.
	Arg() any
}

// Int is an integer bind value.
type Int int64

func (Int) Type() SemanticType { return TypeInteger }
func (v Int) Arg() any          { return int64(v) }

// Time is a timestamp bind value.
type Time time.Time

func (Time) Type() SemanticType { return TypeTimestamp }
func (v Time) Arg() any          { return time.Time(v) }

// Text is a text bind value.
type Text string

func (Text) Type() SemanticType { return TypeText }
func (v Text) Arg() any          { return string(v) }

// Geo is a geometry bind value. It binds as WKT; dialects wrap the
// placeholder in the constructor that turns the text into a geometry.
type Geo struct {
	Geometry Geometry
}

func (Geo) Type() SemanticType { return TypeGeometry }
func (v Geo) Arg() any {
	if v.Geometry == nil {
		return nil
	}
	return v.Geometry.WKT()
}

// ParseValue converts a raw request string into the typed value for column.
// It is the single conversion point for insert values, SET values and WHERE
// comparisons.
func ParseValue(column, raw string) (Value, error) {
	t, err := ColumnType(column)
	if err != nil {
		return nil, err
	}
	return parseAs(t, column, raw)
}

func parseAs(t SemanticType, column, raw string) (Value, error) {
	switch t {
	case TypeInteger:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %s expects an integer, got %q", ErrMalformedValue, column, raw)
		}
		return Int(n), nil
	case TypeTimestamp:
		ts, err := time.Parse(TimestampLayout, strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: column %s expects a timestamp like %q, got %q", ErrMalformedValue, column, TimestampLayout, raw)
		}
		return Time(ts), nil
	case TypeText:
		return Text(raw), nil
	case TypeGeometry:
		g, err := ParseGeometry(raw)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", column, err)
		}
		return Geo{Geometry: g}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedColumn, column)
	}
}

// checkValue verifies that v matches the semantic type of column.
func checkValue(column string, v Value) error {
	if v == nil {
		return fmt.Errorf("%w: no value for column %s", ErrMalformedValue, column)
	}
	t, err := ColumnType(column)
	if err != nil {
		return err
	}
	if v.Type() != t {
		return fmt.Errorf("%w: column %s is %s, got %s value", ErrMalformedValue, column, t, v.Type())
	}
	if g, ok := v.(Geo); ok {
		if g.Geometry == nil {
			return fmt.Errorf("%w: empty geometry for column %s", ErrMalformedValue, column)
		}
		if err := g.Geometry.validate(); err != nil {
			return err
		}
	}
	return nil
}
