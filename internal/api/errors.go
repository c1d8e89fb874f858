// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package api

import (
	"errors"

	"github.com/tomtom215/geoquest/internal/auth"
	"github.com/tomtom215/geoquest/internal/database/query"
	"github.com/tomtom215/geoquest/internal/validation"
)

// ErrMalformedBody indicates a request body that could not be decoded.
var ErrMalformedBody = errors.New("malformed body")

// outcome is one entry of the response vocabulary.
type outcome struct {
	status int
	body   string
	label  string
}

var (
	outcomeSuccess        = outcome{200, "success", "success"}
	outcomeBadParameters  = outcome{400, "bad parameters", "bad_parameters"}
	outcomeDatabaseError  = outcome{500, "database error", "database_error"}
	outcomeMethodNotFound = outcome{404, "method not found", "method_not_found"}
)

// badParameterErrors are the request-side failures.
var badParameterErrors = []error{
	query.ErrMissingParameter,
	query.ErrMalformedValue,
	query.ErrUnrecognizedColumn,
	query.ErrInvalidPolygon,
	ErrMalformedBody,
	auth.ErrInvalidCredentials,
}

// classify maps an error to its outcome. Anything not recognized as a
// request-side failure is reported as a database error.
func classify(err error) outcome {
	if errors.Is(err, query.ErrUnrecognizedOperation) {
		return outcomeMethodNotFound
	}
	for _, target := range badParameterErrors {
		if errors.Is(err, target) {
			return outcomeBadParameters
		}
	}
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		return outcomeBadParameters
	}
	return outcomeDatabaseError
}
