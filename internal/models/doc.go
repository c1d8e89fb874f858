// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

/*
Package models defines the game's persisted entities.

Each struct maps one table. The db tags are read by sqlx when rows are
scanned into structs, and the json tags define the wire form used by the
gallery endpoint.

  - Player, PlayerStats: accounts and their progress
  - Image, ImageLocation: photos players upload and where they were taken
  - Landmark, LandmarkType: fixed points of interest
  - Quest, QuestType, QuestLocation: tasks and the places they lead to

Geometry columns are carried as query.Point so they render as WKT when bound.
*/
package models
