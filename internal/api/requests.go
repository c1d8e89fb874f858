// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package api

import (
	"fmt"
	"time"

	"github.com/tomtom215/geoquest/internal/database/query"
	"github.com/tomtom215/geoquest/internal/validation"
)

// Credentials is the JSON body of /register and /auth.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RadiusRequest represents the validated parameters of a radius geoSelect.
type RadiusRequest struct {
	Lat float64 `validate:"latitude"`
	Lon float64 `validate:"longitude"`
	Rad float64 `validate:"gt=0"`
}

// UpdateRequest carries the identifiers of an /update call.
type UpdateRequest struct {
	Table string `validate:"required,sqlident"`
	Set   string `validate:"required,sqlident"`
	Where string `validate:"required,sqlident"`
}

// SelectRequest carries the identifiers of a /select call. Columns is the
// comma-joined column list without "*".
type SelectRequest struct {
	Columns string `validate:"omitempty,sqlidents"`
	From    string `validate:"required,sqlident"`
	Join    string `validate:"omitempty,sqlident"`
	On      string `validate:"omitempty,sqlident"`
	Equals  string `validate:"omitempty,sqlident"`
}

// validateRequest runs the struct rules and tags failures as bad parameters.
func validateRequest(req any) error {
	if err := validation.ValidateStruct(req); err != nil {
		return fmt.Errorf("%w: %w", query.ErrMalformedValue, err)
	}
	return nil
}

func floatParam(p query.Params, key string) (float64, error) {
	raw, err := p.Require(key)
	if err != nil {
		return 0, err
	}
	v, err := query.ParseCoordinate(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// columnParam converts parameter key through the column table entry for
// column, the same conversion /update and WHERE values go through.
func columnParam(p query.Params, key, column string) (query.Value, error) {
	raw, err := p.Require(key)
	if err != nil {
		return nil, err
	}
	v, err := query.ParseValue(column, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func intColumnParam(p query.Params, key, column string) (int64, error) {
	v, err := columnParam(p, key, column)
	if err != nil {
		return 0, err
	}
	n, ok := v.(query.Int)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not an integer column", query.ErrMalformedValue, column)
	}
	return int64(n), nil
}

func timeColumnParam(p query.Params, key, column string) (time.Time, error) {
	v, err := columnParam(p, key, column)
	if err != nil {
		return time.Time{}, err
	}
	ts, ok := v.(query.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s is not a timestamp column", query.ErrMalformedValue, column)
	}
	return time.Time(ts), nil
}

func textColumnParam(p query.Params, key, column string) (string, error) {
	v, err := columnParam(p, key, column)
	if err != nil {
		return "", err
	}
	text, ok := v.(query.Text)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a text column", query.ErrMalformedValue, column)
	}
	return string(text), nil
}

// pointParams reads a (lon, lat) pair from two parameters.
func pointParams(p query.Params, lonKey, latKey string) (query.Point, error) {
	lon, err := floatParam(p, lonKey)
	if err != nil {
		return query.Point{}, err
	}
	lat, err := floatParam(p, latKey)
	if err != nil {
		return query.Point{}, err
	}
	return query.Point{Lon: lon, Lat: lat}, nil
}
