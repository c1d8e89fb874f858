// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/geoquest/internal/logging"
	"github.com/tomtom215/geoquest/internal/metrics"
)

const contentTypeText = "text/plain; charset=utf-8"

func writeOutcome(w http.ResponseWriter, o outcome, payload []byte) {
	metrics.RecordResponse(o.label)

	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(o.status)

	body := o.body
	if payload != nil {
		body += "\n" + string(payload)
	}
	_, _ = w.Write([]byte(body)) //nolint:errcheck // client may have disconnected
}

// respondSuccess writes the bare success token.
func respondSuccess(w http.ResponseWriter) {
	writeOutcome(w, outcomeSuccess, nil)
}

// respondRows writes the success token followed by rows rendered as JSON.
func respondRows(w http.ResponseWriter, r *http.Request, rows any) {
	if requestExpired(r) {
		logging.Ctx(r.Context()).Warn().Str("path", r.URL.Path).Msg("Request timed out")
		return
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode result rows")
		writeOutcome(w, outcomeDatabaseError, nil)
		return
	}
	writeOutcome(w, outcomeSuccess, payload)
}

// respondError classifies err and writes the matching token. Database
// failures are logged with the request ID; request-side failures are logged
// at debug.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.Ctx(r.Context())
	if requestExpired(r) {
		logger.Warn().Err(err).Str("path", r.URL.Path).Msg("Request timed out")
		return
	}
	o := classify(err)
	if o == outcomeDatabaseError {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	} else {
		logger.Debug().Err(err).Str("path", r.URL.Path).Msg("Request rejected")
	}
	writeOutcome(w, o, nil)
}

// requestExpired reports whether the request deadline has passed. The
// Timeout middleware answers such requests with 504, so nothing else may be
// written.
func requestExpired(r *http.Request) bool {
	return errors.Is(r.Context().Err(), context.DeadlineExceeded)
}

// methodNotFound answers requests for operations that do not exist.
func methodNotFound(w http.ResponseWriter, _ *http.Request) {
	writeOutcome(w, outcomeMethodNotFound, nil)
}
