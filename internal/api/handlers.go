// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/geoquest/internal/auth"
	"github.com/tomtom215/geoquest/internal/database"
	"github.com/tomtom215/geoquest/internal/database/query"
	"github.com/tomtom215/geoquest/internal/models"
)

// Store is the part of the query processor the handlers use.
// *database.DB implements it.
type Store interface {
	Query(ctx context.Context, r query.Renderer) (database.Records, error)
	Exec(ctx context.Context, r query.Renderer) error

	AddPlayer(ctx context.Context, email, password string) (int64, error)
	AddPlayerStats(ctx context.Context, playerID, xp, cash int64) error
	AddImage(ctx context.Context, ts time.Time, playerID int64, url string) (int64, error)
	AddImageLocation(ctx context.Context, imageID int64, at query.Point) error
	AddLandmarkType(ctx context.Context, name string) (int64, error)
	AddLandmark(ctx context.Context, at query.Point, landmarkType int64, description string) (int64, error)
	AddQuestType(ctx context.Context, name string) (int64, error)
	AddQuest(ctx context.Context, name, description string, questType, xp, cash int64) (int64, error)
	AddQuestLocation(ctx context.Context, questID int64, at query.Point) (int64, error)

	PlayerByEmail(ctx context.Context, email string) (models.Player, error)
	ImagesByPlayer(ctx context.Context, playerID int64) ([]models.Image, error)

	Ping(ctx context.Context) error
	BreakerState() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_insert.go: /insert
//   - handlers_statement.go: /select, /update, /delete
//   - handlers_geo.go: /geoSelect, /gallery
//   - handlers_auth.go: /register, /auth
//   - handlers_health.go: /health
type Handler struct {
	store     Store
	hasher    auth.PasswordHasher
	jwt       *auth.JWTManager
	startTime time.Time
}

// NewHandler creates the handler set. jwt may be nil, in which case /auth
// answers without a session token.
func NewHandler(store Store, hasher auth.PasswordHasher, jwt *auth.JWTManager) *Handler {
	if hasher == nil {
		hasher = auth.PlainHasher{}
	}
	return &Handler{
		store:     store,
		hasher:    hasher,
		jwt:       jwt,
		startTime: time.Now(),
	}
}

// queryParams decodes the query string.
func queryParams(r *http.Request) query.Params {
	return query.ParamsFromValues(r.URL.Query())
}

// pathParam returns a percent-decoded chi URL parameter.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
