// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

// Package auth holds player credential handling.
//
// PasswordHasher decides how /register stores a password and how /auth checks
// one: PlainHasher (constant-time comparison) or BcryptHasher. JWTManager
// issues the optional session token returned by /auth when JWT_SECRET is set.
package auth
