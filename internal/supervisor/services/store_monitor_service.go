// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/geoquest/internal/logging"
	"github.com/tomtom215/geoquest/internal/metrics"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreMonitorService probes the store on a fixed interval. It publishes the
// result as the database_up gauge and logs only on up/down transitions, so a
// steady outage produces one line rather than one per tick.
type StoreMonitorService struct {
	store    Pinger
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger

	up    atomic.Bool
	known atomic.Bool
}

// NewStoreMonitorService creates a monitor. A non-positive interval means 15s.
func NewStoreMonitorService(store Pinger, interval time.Duration) *StoreMonitorService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	timeout := interval / 2
	if timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &StoreMonitorService{
		store:    store,
		interval: interval,
		timeout:  timeout,
		logger:   logging.WithComponent("store-monitor"),
	}
}

// Serve implements suture.Service. It probes once immediately, then on every tick.
func (s *StoreMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.probe(ctx)
		}
	}
}

func (s *StoreMonitorService) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	err := s.store.Ping(probeCtx)
	cancel()

	// shutdown mid-probe says nothing about the store
	if ctx.Err() != nil {
		return
	}

	up := err == nil
	if up {
		metrics.DatabaseUp.Set(1)
	} else {
		metrics.DatabaseUp.Set(0)
	}

	known := s.known.Load()
	if known && up == s.up.Load() {
		return
	}
	switch {
	case up && known:
		s.logger.Info().Msg("store reachable again")
	case up:
		s.logger.Debug().Msg("store reachable")
	default:
		s.logger.Warn().Err(err).Msg("store unreachable")
	}
	s.up.Store(up)
	s.known.Store(true)
}

// Healthy reports the last probe result; false before the first probe.
func (s *StoreMonitorService) Healthy() bool {
	return s.known.Load() && s.up.Load()
}

// String names the service in supervisor logs.
func (s *StoreMonitorService) String() string {
	return "store-monitor"
}
