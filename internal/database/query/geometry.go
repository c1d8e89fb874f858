// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// SRID is the spatial reference every stored geometry uses (WGS 84).
const SRID = 4326

// Geometry is a value that can be written as well-known text.
type Geometry interface {
	WKT() string
	validate() error
}

// Point is a WGS 84 coordinate. Every SQL function in this package receives
// it as (longitude, latitude).
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// WKT returns POINT(lon lat).
func (p Point) WKT() string {
	return "POINT(" + formatCoord(p.Lon) + " " + formatCoord(p.Lat) + ")"
}

func (p Point) validate() error {
	if !finite(p.Lon) || !finite(p.Lat) {
		return fmt.Errorf("%w: non-finite coordinate", ErrMalformedValue)
	}
	if p.Lon < -180 || p.Lon > 180 || p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("%w: coordinate (%s %s) out of range", ErrMalformedValue, formatCoord(p.Lon), formatCoord(p.Lat))
	}
	return nil
}

// Polygon is a single-ring polygon. Vertices hold the open ring; WKT closes
// it by repeating the first vertex.
type Polygon struct {
	Vertices []Point
}

// NewPolygon validates vertices and returns the polygon. A trailing vertex
// equal to the first is treated as an explicit ring closure and dropped
// before counting.
func NewPolygon(vertices []Point) (Polygon, error) {
	ring := vertices
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		ring = ring[:n-1]
	}
	p := Polygon{Vertices: append([]Point(nil), ring...)}
	if err := p.validate(); err != nil {
		return Polygon{}, err
	}
	return p, nil
}

// WKT returns POLYGON((x1 y1, x2 y2, ..., x1 y1)).
func (p Polygon) WKT() string {
	var sb strings.Builder
	sb.WriteString("POLYGON((")
	for _, v := range p.Vertices {
		sb.WriteString(formatCoord(v.Lon))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(v.Lat))
		sb.WriteString(", ")
	}
	if len(p.Vertices) > 0 {
		sb.WriteString(formatCoord(p.Vertices[0].Lon))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(p.Vertices[0].Lat))
	}
	sb.WriteString("))")
	return sb.String()
}

func (p Polygon) validate() error {
	if len(p.Vertices) < 3 {
		return fmt.Errorf("%w: need at least 3 vertices, got %d", ErrInvalidPolygon, len(p.Vertices))
	}
	for _, v := range p.Vertices {
		if err := v.validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPolygon, err)
		}
	}
	return nil
}

// LatLng is a polygon vertex as clients send it.
type LatLng struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// PolygonFromJSON decodes a JSON array of {lat,lng} objects into a polygon,
// reordering each vertex to (lng, lat).
func PolygonFromJSON(data []byte) (Polygon, error) {
	var raw []LatLng
	if err := json.Unmarshal(data, &raw); err != nil {
		return Polygon{}, fmt.Errorf("%w: polygon vertices: %v", ErrMalformedValue, err)
	}
	vertices := make([]Point, 0, len(raw))
	for i, v := range raw {
		if v.Lat == nil || v.Lng == nil {
			return Polygon{}, fmt.Errorf("%w: vertex %d needs lat and lng", ErrMalformedValue, i)
		}
		vertices = append(vertices, Point{Lon: *v.Lng, Lat: *v.Lat})
	}
	return NewPolygon(vertices)
}

// ParseGeometry accepts POINT or POLYGON well-known text, optionally
// prefixed with SRID=4326;, or a bare "lon,lat" decimal pair.
func ParseGeometry(raw string) (Geometry, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToUpper(s), "SRID=") {
		semi := strings.IndexByte(s, ';')
		if semi < 0 {
			return nil, fmt.Errorf("%w: geometry %q", ErrMalformedValue, raw)
		}
		srid, err := strconv.Atoi(s[len("SRID="):semi])
		if err != nil || srid != SRID {
			return nil, fmt.Errorf("%w: unsupported SRID in %q", ErrMalformedValue, raw)
		}
		s = strings.TrimSpace(s[semi+1:])
	}

	upper := strings.ToUpper(s)
	switch {
	case strings.HasPrefix(upper, "POINT"):
		body, ok := unwrap(strings.TrimSpace(s[len("POINT"):]), 1)
		if !ok {
			return nil, fmt.Errorf("%w: geometry %q", ErrMalformedValue, raw)
		}
		return parsePoint(body, " ")
	case strings.HasPrefix(upper, "POLYGON"):
		body, ok := unwrap(strings.TrimSpace(s[len("POLYGON"):]), 2)
		if !ok {
			return nil, fmt.Errorf("%w: geometry %q", ErrMalformedValue, raw)
		}
		parts := strings.Split(body, ",")
		vertices := make([]Point, 0, len(parts))
		for _, part := range parts {
			p, err := parsePoint(part, " ")
			if err != nil {
				return nil, err
			}
			vertices = append(vertices, p)
		}
		return NewPolygon(vertices)
	default:
		return parsePoint(s, ",")
	}
}

// unwrap strips depth levels of balanced parentheses.
func unwrap(s string, depth int) (string, bool) {
	for i := 0; i < depth; i++ {
		s = strings.TrimSpace(s)
		if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
			return "", false
		}
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s), true
}

func parsePoint(s, sep string) (Point, error) {
	var fields []string
	if sep == " " {
		fields = strings.Fields(s)
	} else {
		fields = strings.Split(s, sep)
	}
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("%w: point %q", ErrMalformedValue, s)
	}
	lon, err := parseCoord(fields[0])
	if err != nil {
		return Point{}, err
	}
	lat, err := parseCoord(fields[1])
	if err != nil {
		return Point{}, err
	}
	p := Point{Lon: lon, Lat: lat}
	if err := p.validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

// parseCoord only accepts plain decimal numbers so a coordinate can be
// embedded in SQL text without escaping.
func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !finite(v) {
		return 0, fmt.Errorf("%w: coordinate %q", ErrMalformedValue, s)
	}
	return v, nil
}

// ParseCoordinate parses one decimal coordinate or radius.
func ParseCoordinate(s string) (float64, error) {
	return parseCoord(s)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
