// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package database

import (
	"errors"
	"io"
)

var (
	// ErrDatabase wraps every failure that happened while talking to the
	// store: connection checkout, execution, scanning, or a rejected call
	// while the circuit breaker is open.
	ErrDatabase = errors.New("database error")

	// ErrNotFound is returned by single-row lookups that matched nothing.
	ErrNotFound = errors.New("not found")
)

// closeQuietly closes a resource and explicitly ignores any error
// Use this for cleanup operations in error paths where Close() errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
