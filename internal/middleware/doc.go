// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

// Package middleware provides the HTTP middleware mounted on the chi router:
// request IDs, access logging, Prometheus instrumentation and gzip
// compression. All middleware uses the func(http.Handler) http.Handler shape
// that chi's Use expects.
package middleware
