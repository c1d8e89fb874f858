// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

// Package validation wraps go-playground/validator for request DTOs.
//
// Besides the built-in tags it registers sqlident and sqlidents, which accept
// the identifiers the query builders will render and nothing else.
package validation
