// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package models

import (
	"time"

	"github.com/tomtom215/geoquest/internal/database/query"
)

// Player is a registered account. Password holds whatever the configured
// hasher produced: the plain secret or a bcrypt hash.
type Player struct {
	ID       int64  `db:"id" json:"id"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
}

// PlayerStats is keyed by the player it belongs to.
type PlayerStats struct {
	PlayerID int64 `db:"player_id" json:"playerId"`
	XP       int64 `db:"xp" json:"xp"`
	Cash     int64 `db:"cash" json:"cash"`
}

// Image is one row of the gallery table.
type Image struct {
	ImageID   int64     `db:"id" json:"imageId"`
	PlayerID  int64     `db:"player_id" json:"playerId"`
	Timestamp time.Time `db:"ts" json:"timestamp"`
	URL       string    `db:"url" json:"url"`
}

// ImageLocation shares its id with the gallery row it locates.
type ImageLocation struct {
	ImageID  int64       `json:"imageId"`
	Location query.Point `json:"location"`
}

type LandmarkType struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Landmark struct {
	ID          int64       `json:"id"`
	Location    query.Point `json:"location"`
	Type        int64       `json:"type"`
	Description string      `json:"description"`
}

type QuestType struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Quest rewards XP and Cash on completion.
type Quest struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Type        int64  `db:"type" json:"type"`
	XP          int64  `db:"xp" json:"xp"`
	Cash        int64  `db:"cash" json:"cash"`
}

// QuestLocation is one waypoint of a quest.
type QuestLocation struct {
	ID       int64       `json:"id"`
	QuestID  int64       `json:"questId"`
	Location query.Point `json:"location"`
}
