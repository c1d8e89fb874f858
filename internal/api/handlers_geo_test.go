// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package api

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/geoquest/internal/database/query"
	"github.com/tomtom215/geoquest/internal/models"
)

func TestGeoSelectRadius(t *testing.T) {
	tests := []struct {
		resource string
		contains []string
	}{
		{"landmark", []string{
			"FROM landmark WHERE ",
			"ST_Buffer(ST_MakePoint(7, 42)::geography, 500)",
			"landmark.location)",
			"ST_X(location) AS lon",
		}},
		{"quest", []string{
			"FROM quest_location INNER JOIN quest ON quest_location.quest_id = quest.id WHERE ",
			"ST_MakePoint(7, 42)",
			"quest_location.location)",
		}},
		{"location", []string{
			"FROM location INNER JOIN gallery ON location.id = gallery.id WHERE ",
			"ST_MakePoint(7, 42)",
			"gallery.url",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			store := newRecordingStore()
			status, body, _ := do(t, newTestServer(store, nil), http.MethodGet,
				"/geoSelect/"+tt.resource+"?lat=42.0&lon=7.0&rad=500", "")

			if status != http.StatusOK || body != "success\n[]" {
				t.Fatalf("Expected success, got %d %q", status, body)
			}
			if len(store.statements) != 1 {
				t.Fatalf("Expected 1 statement, got %d", len(store.statements))
			}
			sql := store.statements[0].SQL
			for _, want := range tt.contains {
				if !strings.Contains(sql, want) {
					t.Errorf("Expected SQL to contain %q, got %q", want, sql)
				}
			}
		})
	}
}

func TestGeoSelectPolygon(t *testing.T) {
	store := newRecordingStore()
	poly := url.QueryEscape(`[{"lat":48.8,"lng":2.2},{"lat":48.8,"lng":2.4},{"lat":48.9,"lng":2.4}]`)

	status, _, _ := do(t, newTestServer(store, nil), http.MethodGet, "/geoSelect/location?poly="+poly, "")

	if status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}
	if len(store.statements) != 1 {
		t.Fatalf("Expected 1 statement, got %d", len(store.statements))
	}
	sql := store.statements[0].SQL
	for _, want := range []string{
		"POLYGON((2.2 48.8, 2.4 48.8, 2.4 48.9, 2.2 48.8))",
		") AS matches INNER JOIN gallery ON matches.id = gallery.id",
		") AS images",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("Expected SQL to contain %q, got %q", want, sql)
		}
	}
}

func TestGeoSelectRejections(t *testing.T) {
	triangle := url.QueryEscape(`[{"lat":1,"lng":1},{"lat":2,"lng":1},{"lat":2,"lng":2}]`)
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"unknown resource", "/geoSelect/player?lat=1&lon=1&rad=1", http.StatusNotFound, "method not found"},
		{"poly on landmark", "/geoSelect/landmark?poly=" + triangle, http.StatusBadRequest, "bad parameters"},
		{"two vertices", "/geoSelect/location?poly=" + url.QueryEscape(`[{"lat":1,"lng":1},{"lat":2,"lng":2}]`), http.StatusBadRequest, "bad parameters"},
		{"poly not json", "/geoSelect/location?poly=abc", http.StatusBadRequest, "bad parameters"},
		{"missing rad", "/geoSelect/landmark?lat=1&lon=1", http.StatusBadRequest, "bad parameters"},
		{"negative rad", "/geoSelect/landmark?lat=1&lon=1&rad=-5", http.StatusBadRequest, "bad parameters"},
		{"latitude out of range", "/geoSelect/landmark?lat=95&lon=1&rad=5", http.StatusBadRequest, "bad parameters"},
		{"non-numeric lon", "/geoSelect/quest?lat=1&lon=1)--&rad=5", http.StatusBadRequest, "bad parameters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newRecordingStore()
			status, body, _ := do(t, newTestServer(store, nil), http.MethodGet, tt.target, "")

			if status != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, status)
			}
			if body != tt.wantBody {
				t.Errorf("Expected body %q, got %q", tt.wantBody, body)
			}
			if len(store.statements) != 0 {
				t.Errorf("Expected no statement, got %q", store.statements[0].SQL)
			}
		})
	}
}

func TestBuildGeoSelectPolygonOnlyForLocation(t *testing.T) {
	p := query.Params{"poly": `[{"lat":1,"lng":1},{"lat":2,"lng":1},{"lat":2,"lng":2}]`}
	if _, err := buildGeoSelect("quest", p); !errors.Is(err, query.ErrMalformedValue) {
		t.Errorf("Expected ErrMalformedValue, got %v", err)
	}
}

func TestGallery(t *testing.T) {
	store := newRecordingStore()
	store.images = []models.Image{{
		ImageID:   2,
		PlayerID:  5,
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		URL:       "https://cdn.example/2.jpg",
	}}
	srv := newTestServer(store, nil)

	status, body, _ := do(t, srv, http.MethodGet, "/gallery/5", "")
	if status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}
	if !strings.HasPrefix(body, "success\n[{") || !strings.Contains(body, `"imageId":2`) || !strings.Contains(body, `"playerId":5`) {
		t.Errorf("Unexpected gallery body %q", body)
	}
	if len(store.calls) != 1 || store.calls[0] != "ImagesByPlayer(5)" {
		t.Errorf("Expected ImagesByPlayer(5), got %v", store.calls)
	}

	store.images = nil
	if _, body, _ := do(t, srv, http.MethodGet, "/gallery/6", ""); body != "success\n[]" {
		t.Errorf("Expected empty gallery, got %q", body)
	}

	if status, _, _ := do(t, srv, http.MethodGet, "/gallery/me", ""); status != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-numeric player, got %d", status)
	}
}
