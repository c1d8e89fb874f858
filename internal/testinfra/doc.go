// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

// Package testinfra starts real backing services for integration tests with
// testcontainers-go.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/...
//
// Tests call SkipIfNoDocker first so that the suite degrades to a skip on
// machines without a Docker daemon.
package testinfra
