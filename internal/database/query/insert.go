// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import (
	"fmt"
	"strings"
)

// InsertColumns is an INSERT waiting for its values.
type InsertColumns struct {
	table   string
	columns []string
}

// Insert starts an INSERT into table with an explicit column list.
func Insert(table string, columns ...string) InsertColumns {
	return InsertColumns{table: table, columns: append([]string(nil), columns...)}
}

// Values supplies one value per column, in column order.
func (c InsertColumns) Values(values ...Value) InsertStatement {
	return InsertStatement{InsertColumns: c, values: append([]Value(nil), values...)}
}

// InsertStatement is a complete single-row INSERT.
type InsertStatement struct {
	InsertColumns
	values    []Value
	returning string
}

// Returning appends "RETURNING column" so the caller can read back a
// generated key.
func (s InsertStatement) Returning(column string) InsertStatement {
	s.returning = column
	return s
}

// Render produces INSERT INTO <table> (<cols>) VALUES (<placeholders>).
func (s InsertStatement) Render(d Dialect) (Statement, error) {
	if err := checkIdentifier("table", s.table); err != nil {
		return Statement{}, err
	}
	if len(s.columns) == 0 || len(s.columns) != len(s.values) {
		return Statement{}, fmt.Errorf("%w: insert into %s has %d columns and %d values",
			ErrMissingParameter, s.table, len(s.columns), len(s.values))
	}

	marks := make([]string, len(s.values))
	args := make([]any, len(s.values))
	for i, col := range s.columns {
		if err := checkIdentifier("column", col); err != nil {
			return Statement{}, err
		}
		if err := checkValue(col, s.values[i]); err != nil {
			return Statement{}, err
		}
		marks[i] = placeholder(d, s.values[i])
		args[i] = s.values[i].Arg()
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(s.table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(s.columns, ","))
	sb.WriteString(") VALUES (")
	sb.WriteString(strings.Join(marks, ","))
	sb.WriteByte(')')
	if s.returning != "" {
		if err := checkIdentifier("column", s.returning); err != nil {
			return Statement{}, err
		}
		sb.WriteString(" RETURNING ")
		sb.WriteString(s.returning)
	}
	return Statement{SQL: sb.String(), Args: args, Op: "INSERT", Table: s.table}, nil
}
