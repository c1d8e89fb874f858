// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import "fmt"

// radius is true for rows whose table.column lies within meters of center.
// Coordinates are interpolated as literals, so every number is validated
// and re-formatted before it reaches SQL text.
type radius struct {
	center Point
	meters float64
	table  string
	column string
}

func (r radius) fragment(d Dialect) (string, []any, error) {
	target, err := qualified(r.table, r.column)
	if err != nil {
		return "", nil, err
	}
	if err := r.center.validate(); err != nil {
		return "", nil, err
	}
	if !finite(r.meters) || r.meters <= 0 {
		return "", nil, fmt.Errorf("%w: radius must be a positive number of meters", ErrMalformedValue)
	}
	return d.WithinRadius(r.center, r.meters, target), nil, nil
}

// polygon is true for rows whose table.column lies inside poly.
type polygon struct {
	poly   Polygon
	table  string
	column string
}

func (p polygon) fragment(d Dialect) (string, []any, error) {
	if err := p.poly.validate(); err != nil {
		return "", nil, err
	}
	target, err := qualified(p.table, p.column)
	if err != nil {
		return "", nil, err
	}
	return d.WithinPolygon(p.poly, target), nil, nil
}

func qualified(table, column string) (string, error) {
	if err := checkIdentifier("table", table); err != nil {
		return "", err
	}
	if err := checkIdentifier("column", column); err != nil {
		return "", err
	}
	if t, err := ColumnType(column); err != nil {
		return "", err
	} else if t != TypeGeometry {
		return "", fmt.Errorf("%w: column %s is not a geometry", ErrMalformedValue, column)
	}
	return table + "." + column, nil
}

// WithinRadiusOf restricts the selection to rows whose table.column lies
// within meters of center. It replaces any earlier WHERE condition.
func (b SelectBuilder) WithinRadiusOf(center Point, meters float64, table, column string) SelectBuilder {
	b.where = radius{center: center, meters: meters, table: table, column: column}
	return b
}

// WithinPoly restricts the selection to rows whose table.column lies inside
// poly. It replaces any earlier WHERE condition.
func (b SelectBuilder) WithinPoly(poly Polygon, table, column string) SelectBuilder {
	b.where = polygon{poly: poly, table: table, column: column}
	return b
}

// Aliases used by PolygonImageSearch.
const (
	matchesAlias = "matches"
	imagesAlias  = "images"
)

// PolygonImageSearch finds gallery images taken inside poly. The location
// match is nested as a subquery, joined to gallery on the image id, and the
// join is nested again so only the centroid coordinates and URL are
// projected. Raw geometry never reaches the result rows.
//
//	SELECT <centroid lon> AS lon,<centroid lat> AS lat,images.url FROM (
//	    SELECT matches.id,matches.location,gallery.url FROM (
//	        SELECT id,location FROM location WHERE <polygon containment>
//	    ) AS matches INNER JOIN gallery ON matches.id = gallery.id
//	) AS images
func PolygonImageSearch(poly Polygon) SelectBuilder {
	matches := Select("id", "location").
		From("location").
		WithinPoly(poly, "location", "location")

	joined := Select(matchesAlias+".id", matchesAlias+".location", "gallery.url").
		FromSubquery(matches, matchesAlias).
		InnerJoin("gallery").On(matchesAlias + ".id").Equals("gallery.id")

	return Project(
		CentroidLon(imagesAlias+".location", "lon"),
		CentroidLat(imagesAlias+".location", "lat"),
		Col(imagesAlias+".url"),
	).FromSubquery(joined, imagesAlias)
}
