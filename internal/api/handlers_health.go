// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// HealthStatus is the /health payload.
type HealthStatus struct {
	Status   string  `json:"status"`
	Database string  `json:"database"`
	Breaker  string  `json:"breaker"`
	Uptime   float64 `json:"uptime_seconds"`
}

const healthPingTimeout = 2 * time.Second

// Health handles GET /health. It answers 503 when the store does not
// respond to a ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	status := HealthStatus{
		Status:   "ok",
		Database: "up",
		Breaker:  h.store.BreakerState(),
		Uptime:   time.Since(h.startTime).Seconds(),
	}
	code := http.StatusOK
	if err := h.store.Ping(ctx); err != nil {
		status.Status = "unavailable"
		status.Database = "down"
		code = http.StatusServiceUnavailable
	}

	body, err := json.Marshal(status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body) //nolint:errcheck // client may have disconnected
}
