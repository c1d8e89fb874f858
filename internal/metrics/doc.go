// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry through promauto at
// package init. The database layer records statement latency and failures,
// the HTTP middleware records request counts and latency, and the circuit
// breaker reports its state transitions.
//
// Database statements:
//
//	db_query_duration_seconds{operation, table}
//	db_query_errors_total{operation, table, error_type}
//
// HTTP surface:
//
//	api_requests_total{method, endpoint, status}
//	api_request_duration_seconds{method, endpoint}
//	api_active_requests
//	api_rate_limit_hits_total{endpoint}
//	api_responses_total{outcome}
//	auth_attempts_total{result}
//
// Circuit breaker:
//
//	circuit_breaker_state{name}
//	circuit_breaker_requests_total{name, result}
//	circuit_breaker_state_transitions_total{name, from_state, to_state}
package metrics
