// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/geoquest/internal/database"
	"github.com/tomtom215/geoquest/internal/database/query"
	"github.com/tomtom215/geoquest/internal/models"
)

// recordingStore is a Store that records every call. Statements are
// rendered with the PostGIS dialect so tests can assert on SQL text.
type recordingStore struct {
	mu sync.Mutex

	statements []query.Statement
	calls      []string

	rows    database.Records
	images  []models.Image
	players map[string]models.Player
	err     error
	pingErr error
	nextID  int64
}

func newRecordingStore() *recordingStore {
	return &recordingStore{players: map[string]models.Player{}}
}

func (s *recordingStore) record(call string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	s.calls = append(s.calls, call+"("+strings.Join(parts, ",")+")")
}

func (s *recordingStore) render(r query.Renderer) error {
	stmt, err := r.Render(query.PostGIS)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.statements = append(s.statements, stmt)
	s.mu.Unlock()
	return nil
}

func (s *recordingStore) id() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID
}

func (s *recordingStore) Query(_ context.Context, r query.Renderer) (database.Records, error) {
	if err := s.render(r); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	if s.rows == nil {
		return database.Records{}, nil
	}
	return s.rows, nil
}

func (s *recordingStore) Exec(_ context.Context, r query.Renderer) error {
	if err := s.render(r); err != nil {
		return err
	}
	return s.err
}

func (s *recordingStore) AddPlayer(_ context.Context, email, password string) (int64, error) {
	s.record("AddPlayer", email, password)
	if s.err != nil {
		return 0, s.err
	}
	id := s.id()
	s.mu.Lock()
	s.players[email] = models.Player{ID: id, Email: email, Password: password}
	s.mu.Unlock()
	return id, nil
}

func (s *recordingStore) AddPlayerStats(_ context.Context, playerID, xp, cash int64) error {
	s.record("AddPlayerStats", playerID, xp, cash)
	return s.err
}

func (s *recordingStore) AddImage(_ context.Context, ts time.Time, playerID int64, url string) (int64, error) {
	s.record("AddImage", ts.Format(query.TimestampLayout), playerID, url)
	return s.id(), s.err
}

func (s *recordingStore) AddImageLocation(_ context.Context, imageID int64, at query.Point) error {
	s.record("AddImageLocation", imageID, at.WKT())
	return s.err
}

func (s *recordingStore) AddLandmarkType(_ context.Context, name string) (int64, error) {
	s.record("AddLandmarkType", name)
	return s.id(), s.err
}

func (s *recordingStore) AddLandmark(_ context.Context, at query.Point, landmarkType int64, description string) (int64, error) {
	s.record("AddLandmark", at.WKT(), landmarkType, description)
	return s.id(), s.err
}

func (s *recordingStore) AddQuestType(_ context.Context, name string) (int64, error) {
	s.record("AddQuestType", name)
	return s.id(), s.err
}

func (s *recordingStore) AddQuest(_ context.Context, name, description string, questType, xp, cash int64) (int64, error) {
	s.record("AddQuest", name, description, questType, xp, cash)
	return s.id(), s.err
}

func (s *recordingStore) AddQuestLocation(_ context.Context, questID int64, at query.Point) (int64, error) {
	s.record("AddQuestLocation", questID, at.WKT())
	return s.id(), s.err
}

func (s *recordingStore) PlayerByEmail(_ context.Context, email string) (models.Player, error) {
	s.record("PlayerByEmail", email)
	if s.err != nil {
		return models.Player{}, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[email]
	if !ok {
		return models.Player{}, fmt.Errorf("player: %w", database.ErrNotFound)
	}
	return p, nil
}

func (s *recordingStore) ImagesByPlayer(_ context.Context, playerID int64) ([]models.Image, error) {
	s.record("ImagesByPlayer", playerID)
	return s.images, s.err
}

func (s *recordingStore) Ping(context.Context) error { return s.pingErr }

func (s *recordingStore) BreakerState() string { return "closed" }

// newTestServer returns a router over store with rate limiting disabled.
func newTestServer(store Store, h *Handler) http.Handler {
	if h == nil {
		h = NewHandler(store, nil, nil)
	}
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(h, NewChiMiddleware(cfg), 5*time.Second).SetupChi()
}

// do sends a request and returns status and body.
func do(t *testing.T, srv http.Handler, method, target, body string) (int, string, http.Header) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec.Code, rec.Body.String(), rec.Header()
}

var playerFixture = models.Player{ID: 1, Email: "scout@example.com", Password: "hunter2"}
