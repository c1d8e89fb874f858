// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import "errors"

// Request-level errors. Callers classify them with errors.Is; every error
// returned from this package wraps exactly one of these.
var (
	// ErrMissingParameter is returned when a required parameter key is absent.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrMalformedValue is returned when a raw string cannot be converted to
	// the semantic type of its column, or when an identifier is not a plain
	// SQL name.
	ErrMalformedValue = errors.New("malformed value")

	// ErrUnrecognizedColumn is returned for a column absent from the column
	// type table.
	ErrUnrecognizedColumn = errors.New("unrecognized column")

	// ErrInvalidPolygon is returned for a polygon with fewer than three
	// vertices or with non-finite coordinates.
	ErrInvalidPolygon = errors.New("invalid polygon")

	// ErrUnrecognizedOperation is returned when a request names no known
	// table or sub-resource.
	ErrUnrecognizedOperation = errors.New("unrecognized operation")
)
