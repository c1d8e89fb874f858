// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tomtom215/geoquest/internal/database/query"
)

// inserter adds one row to a table from request parameters. Column values
// are converted by query.ParseValue; lon/lat pairs are not columns and go
// through pointParams.
type inserter func(ctx context.Context, h *Handler, p query.Params) error

// inserters maps /insert/{table} to its parameter list.
var inserters = map[string]inserter{
	"player":         insertPlayer,
	"player_stats":   insertPlayerStats,
	"gallery":        insertGallery,
	"location":       insertLocation,
	"landmark":       insertLandmark,
	"landmark_type":  insertLandmarkType,
	"quest":          insertQuest,
	"quest_location": insertQuestLocation,
	"quest_type":     insertQuestType,
}

// Insert handles GET|POST /insert/{table}. Parameters come from the query
// string or a form body.
func (h *Handler) Insert(w http.ResponseWriter, r *http.Request) {
	table := pathParam(r, "table")
	insert, ok := inserters[table]
	if !ok {
		respondError(w, r, fmt.Errorf("%w: insert into %q", query.ErrUnrecognizedOperation, table))
		return
	}

	if err := r.ParseForm(); err != nil {
		respondError(w, r, fmt.Errorf("%w: %v", ErrMalformedBody, err))
		return
	}

	if err := insert(r.Context(), h, query.ParamsFromValues(r.Form)); err != nil {
		respondError(w, r, err)
		return
	}
	respondSuccess(w)
}

func insertPlayer(ctx context.Context, h *Handler, p query.Params) error {
	email, err := textColumnParam(p, "email", "email")
	if err != nil {
		return err
	}
	password, err := textColumnParam(p, "password", "password")
	if err != nil {
		return err
	}
	stored, err := h.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("%w: %w", query.ErrMalformedValue, err)
	}
	_, err = h.store.AddPlayer(ctx, email, stored)
	return err
}

func insertPlayerStats(ctx context.Context, h *Handler, p query.Params) error {
	player, err := intColumnParam(p, "player", "player_id")
	if err != nil {
		return err
	}
	xp, err := intColumnParam(p, "xp", "xp")
	if err != nil {
		return err
	}
	cash, err := intColumnParam(p, "cash", "cash")
	if err != nil {
		return err
	}
	return h.store.AddPlayerStats(ctx, player, xp, cash)
}

func insertGallery(ctx context.Context, h *Handler, p query.Params) error {
	ts, err := timeColumnParam(p, "timestamp", "ts")
	if err != nil {
		return err
	}
	player, err := intColumnParam(p, "player", "player_id")
	if err != nil {
		return err
	}
	url, err := textColumnParam(p, "url", "url")
	if err != nil {
		return err
	}
	_, err = h.store.AddImage(ctx, ts, player, url)
	return err
}

func insertLocation(ctx context.Context, h *Handler, p query.Params) error {
	id, err := intColumnParam(p, "id", "id")
	if err != nil {
		return err
	}
	at, err := pointParams(p, "lon", "lat")
	if err != nil {
		return err
	}
	return h.store.AddImageLocation(ctx, id, at)
}

func insertLandmark(ctx context.Context, h *Handler, p query.Params) error {
	at, err := pointParams(p, "lon", "lat")
	if err != nil {
		return err
	}
	landmarkType, err := intColumnParam(p, "type", "type")
	if err != nil {
		return err
	}
	description, err := textColumnParam(p, "description", "description")
	if err != nil {
		return err
	}
	_, err = h.store.AddLandmark(ctx, at, landmarkType, description)
	return err
}

func insertLandmarkType(ctx context.Context, h *Handler, p query.Params) error {
	name, err := textColumnParam(p, "name", "name")
	if err != nil {
		return err
	}
	_, err = h.store.AddLandmarkType(ctx, name)
	return err
}

func insertQuest(ctx context.Context, h *Handler, p query.Params) error {
	name, err := textColumnParam(p, "name", "name")
	if err != nil {
		return err
	}
	description, err := textColumnParam(p, "description", "description")
	if err != nil {
		return err
	}
	questType, err := intColumnParam(p, "type", "type")
	if err != nil {
		return err
	}
	xp, err := intColumnParam(p, "xp", "xp")
	if err != nil {
		return err
	}
	cash, err := intColumnParam(p, "cash", "cash")
	if err != nil {
		return err
	}
	_, err = h.store.AddQuest(ctx, name, description, questType, xp, cash)
	return err
}

func insertQuestLocation(ctx context.Context, h *Handler, p query.Params) error {
	quest, err := intColumnParam(p, "quest", "quest_id")
	if err != nil {
		return err
	}
	at, err := pointParams(p, "lon", "lat")
	if err != nil {
		return err
	}
	_, err = h.store.AddQuestLocation(ctx, quest, at)
	return err
}

func insertQuestType(ctx context.Context, h *Handler, p query.Params) error {
	name, err := textColumnParam(p, "name", "name")
	if err != nil {
		return err
	}
	_, err = h.store.AddQuestType(ctx, name)
	return err
}
