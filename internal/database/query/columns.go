// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import (
	"fmt"
	"strings"
)

// SemanticType is the domain meaning of a column's value, independent of
// how it travels over HTTP.
type SemanticType int

const (
	TypeInteger SemanticType = iota + 1
	TypeTimestamp
	TypeText
	TypeGeometry
)

// String returns the lowercase name of the type.
func (t SemanticType) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeTimestamp:
		return "timestamp"
	case TypeText:
		return "text"
	case TypeGeometry:
		return "geometry"
	default:
		return "unknown"
	}
}

// TimestampLayout is the only accepted timestamp format, both for parsing
// request values and for rendering result rows.
const TimestampLayout = "2006-01-02 15:04:05"

// columnTypes is exhaustive over every column the game schema defines.
var columnTypes = map[string]SemanticType{
	"id":          TypeInteger,
	"player_id":   TypeInteger,
	"quest_id":    TypeInteger,
	"type":        TypeInteger,
	"xp":          TypeInteger,
	"cash":        TypeInteger,
	"ts":          TypeTimestamp,
	"email":       TypeText,
	"password":    TypeText,
	"url":         TypeText,
	"description": TypeText,
	"name":        TypeText,
	"location":    TypeGeometry,
}

// ColumnType resolves the semantic type of a column. Qualified names such as
// "gallery.id" resolve through their last segment. Lookups are
// case-insensitive because SQL identifiers are.
func ColumnType(column string) (SemanticType, error) {
	name := column
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	t, ok := columnTypes[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedColumn, column)
	}
	return t, nil
}

// Columns returns a copy of the column type table.
func Columns() map[string]SemanticType {
	out := make(map[string]SemanticType, len(columnTypes))
	for k, v := range columnTypes {
		out[k] = v
	}
	return out
}
