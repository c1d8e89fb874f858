// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

// Package services adapts long-running components to suture.Service so the
// supervisor tree can restart them.
//
//   - HTTPServerService runs the API server and shuts it down gracefully when
//     its context ends.
//   - StoreMonitorService probes the spatial store and publishes the
//     database_up gauge.
package services
