// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package api

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/tomtom215/geoquest/internal/database/query"
)

func paramsOf(raw string) query.Params {
	values, _ := url.ParseQuery(raw)
	return query.ParamsFromValues(values)
}

func TestColumnParamsMatchColumnConversion(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		key    string
		column string
	}{
		{"integer", "player=%207%20", "player", "player_id"},
		{"timestamp", "timestamp=2026-03-01%2012:30:00", "timestamp", "ts"},
		{"text", "url=https://cdn.example/1.jpg", "url", "url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paramsOf(tt.raw)
			raw, _ := p.Require(tt.key)

			want, err := query.ParseValue(tt.column, raw)
			if err != nil {
				t.Fatalf("ParseValue() unexpected error: %v", err)
			}
			got, err := columnParam(p, tt.key, tt.column)
			if err != nil {
				t.Fatalf("columnParam() unexpected error: %v", err)
			}
			if got != want {
				t.Errorf("Expected %v, got %v", want, got)
			}
		})
	}
}

func TestIntColumnParam(t *testing.T) {
	n, err := intColumnParam(paramsOf("xp=250"), "xp", "xp")
	if err != nil || n != 250 {
		t.Errorf("Expected 250, got %d (%v)", n, err)
	}

	_, err = intColumnParam(paramsOf("xp=lots"), "xp", "xp")
	if !errors.Is(err, query.ErrMalformedValue) {
		t.Errorf("Expected ErrMalformedValue, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "column xp") {
		t.Errorf("Expected error to name the column, got %v", err)
	}

	_, err = intColumnParam(paramsOf(""), "xp", "xp")
	if !errors.Is(err, query.ErrMissingParameter) {
		t.Errorf("Expected ErrMissingParameter, got %v", err)
	}

	_, err = intColumnParam(paramsOf("url=x"), "url", "url")
	if !errors.Is(err, query.ErrMalformedValue) {
		t.Errorf("Expected ErrMalformedValue for a text column, got %v", err)
	}
}

func TestTimeColumnParam(t *testing.T) {
	ts, err := timeColumnParam(paramsOf("timestamp=2026-03-01%2012:30:00"), "timestamp", "ts")
	if err != nil {
		t.Fatalf("timeColumnParam() unexpected error: %v", err)
	}
	if got := ts.Format(query.TimestampLayout); got != "2026-03-01 12:30:00" {
		t.Errorf("Expected 2026-03-01 12:30:00, got %s", got)
	}

	_, err = timeColumnParam(paramsOf("timestamp=yesterday"), "timestamp", "ts")
	if !errors.Is(err, query.ErrMalformedValue) {
		t.Errorf("Expected ErrMalformedValue, got %v", err)
	}
}
