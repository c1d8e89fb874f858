// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package database

import (
	"math/big"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func strPtr(s string) *string { return &s }

func TestRecordsMarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		records Records
		want    string
	}{
		{"nil result", nil, `[]`},
		{"empty result", Records{}, `[]`},
		{
			"keeps column order",
			Records{{{Name: "url", Value: strPtr("u")}, {Name: "id", Value: strPtr("1")}}},
			`[{"url":"u","id":"1"}]`,
		},
		{
			"null value",
			Records{{{Name: "description", Value: nil}}},
			`[{"description":null}]`,
		},
		{
			"escapes text",
			Records{{{Name: "name", Value: strPtr(`say "hi"`)}}},
			`[{"name":"say \"hi\""}]`,
		},
		{
			"several rows",
			Records{{{Name: "id", Value: strPtr("1")}}, {{Name: "id", Value: strPtr("2")}}},
			`[{"id":"1"},{"id":"2"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.records)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, data)
			}
		})
	}
}

func TestRecordGet(t *testing.T) {
	r := Record{{Name: "id", Value: strPtr("4")}, {Name: "url", Value: nil}}

	if v, ok := r.Get("id"); !ok || v != "4" {
		t.Errorf("Expected 4, got %q (%v)", v, ok)
	}
	if _, ok := r.Get("url"); ok {
		t.Error("NULL column should not be found")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("missing column should not be found")
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *string
	}{
		{"nil", nil, nil},
		{"bytes", []byte("POINT (1 2)"), strPtr("POINT (1 2)")},
		{"string", "x", strPtr("x")},
		{"int64", int64(-42), strPtr("-42")},
		{"int32", int32(7), strPtr("7")},
		{"float", 1.5, strPtr("1.5")},
		{"bool", true, strPtr("true")},
		{"time", time.Date(2026, 3, 1, 12, 30, 5, 0, time.UTC), strPtr("2026-03-01 12:30:05")},
		{"big int", big.NewInt(99), strPtr("99")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stringify(tt.in)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("Expected nil, got %q", *got)
			case tt.want != nil && got == nil:
				t.Errorf("Expected %q, got nil", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("Expected %q, got %q", *tt.want, *got)
			}
		})
	}
}
