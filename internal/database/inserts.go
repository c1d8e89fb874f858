// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package database

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"time"

	"github.com/tomtom215/geoquest/internal/database/query"
	"github.com/tomtom215/geoquest/internal/models"
)

// AddPlayer creates an account. password is stored as given; hashing is the
// caller's concern.
func (db *DB) AddPlayer(ctx context.Context, email, password string) (int64, error) {
	return db.insertReturningID(ctx, query.Insert("player", "email", "password").
		Values(query.Text(email), query.Text(password)))
}

// AddPlayerStats creates the stats row for a player.
func (db *DB) AddPlayerStats(ctx context.Context, playerID, xp, cash int64) error {
	return db.Exec(ctx, query.Insert("player_stats", "player_id", "xp", "cash").
		Values(query.Int(playerID), query.Int(xp), query.Int(cash)))
}

// AddImage records image metadata in the gallery and returns its id.
func (db *DB) AddImage(ctx context.Context, ts time.Time, playerID int64, url string) (int64, error) {
	return db.insertReturningID(ctx, query.Insert("gallery", "ts", "player_id", "url").
		Values(query.Time(ts), query.Int(playerID), query.Text(url)))
}

// AddImageLocation stores where a gallery image was taken. The location row
// shares the image's id.
func (db *DB) AddImageLocation(ctx context.Context, imageID int64, at query.Point) error {
	return db.Exec(ctx, query.Insert("location", "id", "location").
		Values(query.Int(imageID), query.Geo{Geometry: at}))
}

func (db *DB) AddLandmarkType(ctx context.Context, name string) (int64, error) {
	return db.insertReturningID(ctx, query.Insert("landmark_type", "name").
		Values(query.Text(name)))
}

func (db *DB) AddLandmark(ctx context.Context, at query.Point, landmarkType int64, description string) (int64, error) {
	return db.insertReturningID(ctx, query.Insert("landmark", "location", "type", "description").
		Values(query.Geo{Geometry: at}, query.Int(landmarkType), query.Text(description)))
}

func (db *DB) AddQuestType(ctx context.Context, name string) (int64, error) {
	return db.insertReturningID(ctx, query.Insert("quest_type", "name").
		Values(query.Text(name)))
}

// AddQuest creates a quest with its completion reward.
func (db *DB) AddQuest(ctx context.Context, name, description string, questType, xp, cash int64) (int64, error) {
	return db.insertReturningID(ctx, query.Insert("quest", "name", "description", "type", "xp", "cash").
		Values(query.Text(name), query.Text(description), query.Int(questType), query.Int(xp), query.Int(cash)))
}

// AddQuestLocation adds a waypoint to a quest.
func (db *DB) AddQuestLocation(ctx context.Context, questID int64, at query.Point) (int64, error) {
	return db.insertReturningID(ctx, query.Insert("quest_location", "quest_id", "location").
		Values(query.Int(questID), query.Geo{Geometry: at}))
}

// PlayerByEmail returns the account registered under email, or ErrNotFound.
func (db *DB) PlayerByEmail(ctx context.Context, email string) (models.Player, error) {
	var p models.Player
	err := db.get(ctx, &p, query.Select("id", "email", "password").
		From("player").
		Where("email").Is(query.Text(email)))
	if err != nil {
		return models.Player{}, err
	}
	return p, nil
}

// ImagesByPlayer lists a player's gallery, oldest first.
func (db *DB) ImagesByPlayer(ctx context.Context, playerID int64) ([]models.Image, error) {
	images := []models.Image{}
	err := db.selectInto(ctx, &images, query.Select("id", "player_id", "ts", "url").
		From("gallery").
		Where("player_id").Is(query.Int(playerID)))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	slices.SortFunc(images, func(a, b models.Image) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.ImageID, b.ImageID)
	})
	return images, nil
}
