// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

// Package logging provides the process-wide zerolog logger.
//
// Init is called once from main with the values of config.LoggingConfig.
// Handlers log through Ctx so that the request ID set by the request ID
// middleware is attached to every event:
//
//	logging.Ctx(r.Context()).Error().Err(err).Str("table", table).Msg("insert failed")
//
// SlogHandler bridges slog-only libraries, notably sutureslog, onto the same
// writer.
//
// Always terminate event chains with Msg or Send; an unterminated event is
// never written.
package logging
