// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import "strings"

// UpdateBuilder is an UPDATE waiting for its SET column.
//
// The grammar is enforced by the types: Set returns a value that only has
// To, To returns a value that only has Where, and Where returns a value that
// only has Is. The SET value is therefore always bound before the WHERE value.
type UpdateBuilder struct {
	table string
}

// Update starts an UPDATE of table.
func Update(table string) UpdateBuilder {
	return UpdateBuilder{table: table}
}

// UpdateSet is an UPDATE waiting for the SET value.
type UpdateSet struct {
	table  string
	column string
}

// Set names the column to assign.
func (b UpdateBuilder) Set(column string) UpdateSet {
	return UpdateSet{table: b.table, column: column}
}

// UpdateAssignment is an UPDATE with its SET clause, waiting for WHERE.
type UpdateAssignment struct {
	table  string
	column string
	value  Value
}

// To sets the value assigned to the SET column.
func (s UpdateSet) To(v Value) UpdateAssignment {
	return UpdateAssignment{table: s.table, column: s.column, value: v}
}

// UpdateCondition is an UPDATE waiting for the WHERE value.
type UpdateCondition struct {
	a      UpdateAssignment
	column string
}

// Where names the column the WHERE condition compares.
func (a UpdateAssignment) Where(column string) UpdateCondition {
	return UpdateCondition{a: a, column: column}
}

// Is completes the statement.
func (c UpdateCondition) Is(v Value) UpdateStatement {
	return UpdateStatement{set: c.a, where: equality{column: c.column, value: v}}
}

// UpdateStatement is a complete UPDATE.
type UpdateStatement struct {
	set   UpdateAssignment
	where equality
}

// Render produces UPDATE <table> SET <col> = ? WHERE <col> = ? with the SET
// value bound first and the WHERE value second.
func (s UpdateStatement) Render(d Dialect) (Statement, error) {
	if err := checkIdentifier("table", s.set.table); err != nil {
		return Statement{}, err
	}
	assign, setArgs, err := equality{column: s.set.column, value: s.set.value}.fragment(d)
	if err != nil {
		return Statement{}, err
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(s.set.table)
	sb.WriteString(" SET ")
	sb.WriteString(assign)
	args, err := writeWhere(d, &sb, s.where, setArgs)
	if err != nil {
		return Statement{}, err
	}
	return Statement{SQL: sb.String(), Args: args, Op: "UPDATE", Table: s.set.table}, nil
}
