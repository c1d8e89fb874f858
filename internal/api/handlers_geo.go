// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/geoquest/internal/database/query"
	"github.com/tomtom215/geoquest/internal/models"
)

// radiusSearches builds the radius query of each geoSelect resource. Stored
// points are projected as lon and lat so raw geometry never reaches a row.
var radiusSearches = map[string]func(center query.Point, meters float64) query.SelectBuilder{
	"landmark": func(center query.Point, meters float64) query.SelectBuilder {
		return query.Project(
			query.Col("id"),
			query.PointLon("location", "lon"),
			query.PointLat("location", "lat"),
			query.Col("type"),
			query.Col("description"),
		).From("landmark").
			WithinRadiusOf(center, meters, "landmark", "location")
	},
	"quest": func(center query.Point, meters float64) query.SelectBuilder {
		return query.Project(
			query.Col("quest.id"),
			query.Col("quest.name"),
			query.Col("quest.description"),
			query.Col("quest.xp"),
			query.Col("quest.cash"),
			query.PointLon("quest_location.location", "lon"),
			query.PointLat("quest_location.location", "lat"),
		).From("quest_location").
			InnerJoin("quest").On("quest_location.quest_id").Equals("quest.id").
			WithinRadiusOf(center, meters, "quest_location", "location")
	},
	"location": func(center query.Point, meters float64) query.SelectBuilder {
		return query.Project(
			query.Col("location.id"),
			query.PointLon("location.location", "lon"),
			query.PointLat("location.location", "lat"),
			query.Col("gallery.url"),
		).From("location").
			InnerJoin("gallery").On("location.id").Equals("gallery.id").
			WithinRadiusOf(center, meters, "location", "location")
	},
}

// buildGeoSelect picks the polygon or radius search for resource.
func buildGeoSelect(resource string, p query.Params) (query.SelectBuilder, error) {
	radius, ok := radiusSearches[resource]
	if !ok {
		return query.SelectBuilder{}, fmt.Errorf("%w: geoSelect %q", query.ErrUnrecognizedOperation, resource)
	}

	if raw, ok := p.Lookup("poly"); ok {
		if resource != "location" {
			return query.SelectBuilder{}, fmt.Errorf("%w: poly is only supported for location", query.ErrMalformedValue)
		}
		poly, err := query.PolygonFromJSON([]byte(raw))
		if err != nil {
			return query.SelectBuilder{}, err
		}
		return query.PolygonImageSearch(poly), nil
	}

	var (
		req RadiusRequest
		err error
	)
	if req.Lat, err = floatParam(p, "lat"); err != nil {
		return query.SelectBuilder{}, err
	}
	if req.Lon, err = floatParam(p, "lon"); err != nil {
		return query.SelectBuilder{}, err
	}
	if req.Rad, err = floatParam(p, "rad"); err != nil {
		return query.SelectBuilder{}, err
	}
	if err := validateRequest(&req); err != nil {
		return query.SelectBuilder{}, err
	}
	return radius(query.Point{Lon: req.Lon, Lat: req.Lat}, req.Rad), nil
}

// GeoSelect handles GET /geoSelect/{resource}.
func (h *Handler) GeoSelect(w http.ResponseWriter, r *http.Request) {
	stmt, err := buildGeoSelect(pathParam(r, "resource"), queryParams(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	rows, err := h.store.Query(r.Context(), stmt)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondRows(w, r, rows)
}

// Gallery handles GET /gallery/{player}: the player's images, oldest first.
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	v, err := query.ParseValue("player_id", pathParam(r, "player"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	images, err := h.store.ImagesByPlayer(r.Context(), int64(v.(query.Int)))
	if err != nil {
		respondError(w, r, err)
		return
	}
	if images == nil {
		images = []models.Image{}
	}
	respondRows(w, r, images)
}
