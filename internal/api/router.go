// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/geoquest/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler        *Handler
	chiMiddleware  *ChiMiddleware
	requestTimeout time.Duration
}

// NewRouter creates a router. requestTimeout of zero disables the
// per-request timeout.
func NewRouter(handler *Handler, mw *ChiMiddleware, requestTimeout time.Duration) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:        handler,
		chiMiddleware:  mw,
		requestTimeout: requestTimeout,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to all routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(methodNotFound)
	r.MethodNotAllowed(methodNotFound)

	// Operational endpoints
	r.Get("/health", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Game endpoints
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.Compression)
		// Timeout answers 504 itself; handlers write nothing once the
		// deadline has passed.
		if router.requestTimeout > 0 {
			r.Use(chimiddleware.Timeout(router.requestTimeout))
		}

		r.Get("/insert/{table}", router.handler.Insert)
		r.Post("/insert/{table}", router.handler.Insert)
		r.Get("/select/{columns}", router.handler.Select)
		r.Get("/update/{table}", router.handler.Update)
		r.Get("/delete", router.handler.Delete)
		r.Get("/delete/{table}", router.handler.Delete)
		r.Get("/geoSelect/{resource}", router.handler.GeoSelect)
		r.Get("/gallery/{player}", router.handler.Gallery)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitAuth())
			r.Post("/register", router.handler.Register)
			r.Post("/auth", router.handler.Auth)
		})
	})

	return r
}
