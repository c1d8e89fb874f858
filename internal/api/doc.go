// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

/*
Package api is the HTTP request dispatcher of the game backend.

The first path segment selects the operation family and the query string
carries its parameters:

	GET|POST /insert/{table}
	GET      /select/{col1&col2&...}?from=T[&where=C&is=V | &join=T2&on=A&equals=B]
	GET      /update/{table}?set=C&to=V&where=C&is=V
	GET      /delete/{table}[?from=T][&where=C&is=V]
	GET      /geoSelect/{landmark|quest|location}?lat=&lon=&rad=
	GET      /geoSelect/location?poly=[{"lat":..,"lng":..},...]
	GET      /gallery/{player}
	POST     /register, /auth   {"email":..,"password":..}

# Responses

Bodies are plain text. Every request ends in exactly one outcome:

	success                 200, insert/update/delete/register
	success\n<json rows>    200, select/geoSelect/gallery/auth
	bad parameters          400
	database error          500
	method not found        404

Row payloads are JSON arrays of objects whose values are the string form of
each column, in column order.

# Middleware

Requests pass through request ID assignment, real IP extraction, access
logging, Prometheus metrics, panic recovery, CORS, per-IP rate limiting,
the per-request timeout and gzip compression, in that order.
*/
package api
