// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import "strings"

// DeleteBuilder is a DELETE waiting for its table.
type DeleteBuilder struct{}

// Delete starts a DELETE.
func Delete() DeleteBuilder { return DeleteBuilder{} }

// From names the table rows are deleted from. Without a Where the statement
// deletes every row.
func (DeleteBuilder) From(table string) DeleteStatement {
	return DeleteStatement{table: table}
}

// DeleteStatement is a complete DELETE, optionally narrowed by Where.
type DeleteStatement struct {
	table string
	where predicate
}

// DeleteCondition is a DELETE waiting for the value of its WHERE column.
type DeleteCondition struct {
	s      DeleteStatement
	column string
}

// Where starts the "<column> = ?" condition.
func (s DeleteStatement) Where(column string) DeleteCondition {
	return DeleteCondition{s: s, column: column}
}

// Is completes the WHERE condition with v.
func (c DeleteCondition) Is(v Value) DeleteStatement {
	s := c.s
	s.where = equality{column: c.column, value: v}
	return s
}

// Render produces DELETE FROM <table>[ WHERE <col> = ?].
func (s DeleteStatement) Render(d Dialect) (Statement, error) {
	if err := checkIdentifier("table", s.table); err != nil {
		return Statement{}, err
	}
	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(s.table)
	args, err := writeWhere(d, &sb, s.where, nil)
	if err != nil {
		return Statement{}, err
	}
	return Statement{SQL: sb.String(), Args: args, Op: "DELETE", Table: s.table}, nil
}
