// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import (
	"fmt"
	"strings"
)

type projectionKind int

const (
	projColumn projectionKind = iota
	projPointLon
	projPointLat
	projCentroidLon
	projCentroidLat
)

// Projection is one entry of a SELECT list.
type Projection struct {
	kind   projectionKind
	column string
	alias  string
}

// Col projects a column as is. "*" is allowed.
func Col(name string) Projection { return Projection{kind: projColumn, column: name} }

// PointLon projects the longitude of a point column under alias.
func PointLon(column, alias string) Projection {
	return Projection{kind: projPointLon, column: column, alias: alias}
}

// PointLat projects the latitude of a point column under alias.
func PointLat(column, alias string) Projection {
	return Projection{kind: projPointLat, column: column, alias: alias}
}

// CentroidLon projects the WGS 84 centroid longitude of a geometry column.
func CentroidLon(column, alias string) Projection {
	return Projection{kind: projCentroidLon, column: column, alias: alias}
}

// CentroidLat projects the WGS 84 centroid latitude of a geometry column.
func CentroidLat(column, alias string) Projection {
	return Projection{kind: projCentroidLat, column: column, alias: alias}
}

func (p Projection) render(d Dialect) (string, error) {
	if p.kind == projColumn && p.column == "*" {
		return "*", nil
	}
	if err := checkIdentifier("column", p.column); err != nil {
		return "", err
	}
	var expr string
	switch p.kind {
	case projColumn:
		return p.column, nil
	case projPointLon:
		expr = d.PointX(p.column)
	case projPointLat:
		expr = d.PointY(p.column)
	case projCentroidLon:
		expr = d.CentroidX(p.column)
	case projCentroidLat:
		expr = d.CentroidY(p.column)
	default:
		return "", fmt.Errorf("%w: unknown projection", ErrMalformedValue)
	}
	if err := checkIdentifier("alias", p.alias); err != nil {
		return "", err
	}
	return expr + " AS " + p.alias, nil
}

// SelectColumns is a SELECT list waiting for its source.
type SelectColumns struct {
	columns []Projection
}

// Select starts a SELECT of plain columns.
func Select(columns ...string) SelectColumns {
	cols := make([]Projection, len(columns))
	for i, c := range columns {
		cols[i] = Col(c)
	}
	return SelectColumns{columns: cols}
}

// Project starts a SELECT of arbitrary projections.
func Project(columns ...Projection) SelectColumns {
	return SelectColumns{columns: append([]Projection(nil), columns...)}
}

// From selects from a table.
func (s SelectColumns) From(table string) SelectBuilder {
	return SelectBuilder{columns: s.columns, table: table}
}

// FromSubquery selects from a nested select named alias.
func (s SelectColumns) FromSubquery(sub SelectBuilder, alias string) SelectBuilder {
	return SelectBuilder{columns: s.columns, sub: &sub, table: alias}
}

type join struct {
	kind  string
	table string
	left  string
	right string
}

// SelectBuilder is an immutable SELECT statement. Every method returns a
// modified copy, so a builder may be reused and rendered any number of times.
type SelectBuilder struct {
	columns []Projection
	table   string
	sub     *SelectBuilder
	joins   []join
	where   predicate
}

// SelectCondition is a SELECT waiting for the value of its WHERE column.
type SelectCondition struct {
	b      SelectBuilder
	column string
}

// Where starts the "<column> = ?" condition. It replaces any earlier WHERE
// condition once Is is called.
func (b SelectBuilder) Where(column string) SelectCondition {
	return SelectCondition{b: b, column: column}
}

// Is completes the WHERE condition with v.
func (c SelectCondition) Is(v Value) SelectBuilder {
	b := c.b
	b.where = equality{column: c.column, value: v}
	return b
}

// JoinClause is a join waiting for its ON attribute.
type JoinClause struct {
	b    SelectBuilder
	kind string
	tbl  string
}

// JoinCondition is a join waiting for the attribute ON must equal.
type JoinCondition struct {
	JoinClause
	left string
}

// Join adds "JOIN table".
func (b SelectBuilder) Join(table string) JoinClause {
	return JoinClause{b: b, kind: "JOIN", tbl: table}
}

// InnerJoin adds "INNER JOIN table".
func (b SelectBuilder) InnerJoin(table string) JoinClause {
	return JoinClause{b: b, kind: "INNER JOIN", tbl: table}
}

// On names the left side of the join condition.
func (j JoinClause) On(attr string) JoinCondition {
	return JoinCondition{JoinClause: j, left: attr}
}

// Equals completes the join with "ON <left> = <attr>".
func (j JoinCondition) Equals(attr string) SelectBuilder {
	b := j.b
	b.joins = append(b.joins[:len(b.joins):len(b.joins)], join{kind: j.kind, table: j.tbl, left: j.left, right: attr})
	return b
}

// Render produces SELECT <cols> FROM <source>[ <joins>][ WHERE <predicate>].
func (b SelectBuilder) Render(d Dialect) (Statement, error) {
	var sb strings.Builder
	args, err := b.render(d, &sb, nil)
	if err != nil {
		return Statement{}, err
	}
	table := b.table
	if b.sub != nil {
		table = b.innermostTable()
	}
	return Statement{SQL: sb.String(), Args: args, Op: "SELECT", Table: table}, nil
}

func (b SelectBuilder) render(d Dialect, sb *strings.Builder, args []any) ([]any, error) {
	if len(b.columns) == 0 {
		return nil, fmt.Errorf("%w: select needs at least one column", ErrMissingParameter)
	}
	if err := checkIdentifier("table", b.table); err != nil {
		return nil, err
	}

	cols := make([]string, len(b.columns))
	for i, c := range b.columns {
		s, err := c.render(d)
		if err != nil {
			return nil, err
		}
		cols[i] = s
	}

	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(cols, ","))
	sb.WriteString(" FROM ")
	if b.sub != nil {
		sb.WriteByte('(')
		var err error
		if args, err = b.sub.render(d, sb, args); err != nil {
			return nil, err
		}
		sb.WriteString(") AS ")
	}
	sb.WriteString(b.table)

	for _, j := range b.joins {
		for _, name := range []string{j.table, j.left, j.right} {
			if err := checkIdentifier("join attribute", name); err != nil {
				return nil, err
			}
		}
		sb.WriteByte(' ')
		sb.WriteString(j.kind)
		sb.WriteByte(' ')
		sb.WriteString(j.table)
		sb.WriteString(" ON ")
		sb.WriteString(j.left)
		sb.WriteString(" = ")
		sb.WriteString(j.right)
	}

	return writeWhere(d, sb, b.where, args)
}

func (b SelectBuilder) innermostTable() string {
	for b.sub != nil {
		b = *b.sub
	}
	return b.table
}
