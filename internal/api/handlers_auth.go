// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/geoquest/internal/auth"
	"github.com/tomtom215/geoquest/internal/database"
	"github.com/tomtom215/geoquest/internal/database/query"
	"github.com/tomtom215/geoquest/internal/logging"
	"github.com/tomtom215/geoquest/internal/metrics"
)

const maxBodyBytes = 1 << 20

// decodeCredentials reads and validates a {email,password} body.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (Credentials, error) {
	var creds Credentials
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return creds, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if err := json.Unmarshal(body, &creds); err != nil {
		return creds, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if err := validateRequest(&creds); err != nil {
		return creds, err
	}
	return creds, nil
}

// Register handles POST /register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	stored, err := h.hasher.Hash(creds.Password)
	if err != nil {
		// bcrypt refuses passwords over 72 bytes
		respondError(w, r, fmt.Errorf("%w: %w", query.ErrMalformedValue, err))
		return
	}
	if _, err := h.store.AddPlayer(r.Context(), creds.Email, stored); err != nil {
		respondError(w, r, err)
		return
	}
	respondSuccess(w)
}

// Auth handles POST /auth. On success the body carries the player id and,
// when sessions are enabled, the Authorization header carries a token.
func (h *Handler) Auth(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	player, err := h.store.PlayerByEmail(r.Context(), creds.Email)
	if errors.Is(err, database.ErrNotFound) {
		metrics.RecordAuthAttempt(false)
		respondError(w, r, auth.ErrInvalidCredentials)
		return
	}
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.hasher.Verify(player.Password, creds.Password); err != nil {
		metrics.RecordAuthAttempt(false)
		respondError(w, r, err)
		return
	}
	metrics.RecordAuthAttempt(true)

	if h.jwt != nil {
		token, err := h.jwt.GenerateToken(player.ID, player.Email)
		if err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to sign session token")
		} else {
			w.Header().Set("Authorization", "Bearer "+token)
		}
	}

	id := strconv.FormatInt(player.ID, 10)
	respondRows(w, r, database.Records{{{Name: "id", Value: &id}}})
}
