// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import (
	"fmt"
	"regexp"
	"strings"
)

// Statement is rendered SQL text plus its bind values in placeholder order.
type Statement struct {
	SQL  string
	Args []any

	// Op and Table label the statement for logs and metrics.
	Op    string
	Table string
}

// Renderer is implemented by every finished statement value.
type Renderer interface {
	Render(d Dialect) (Statement, error)
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// checkIdentifier rejects anything but a plain or table-qualified name.
// Identifiers cannot be bound, so this is what keeps caller text out of SQL.
func checkIdentifier(kind, name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: invalid %s %q", ErrMalformedValue, kind, name)
	}
	return nil
}

// IsIdentifier reports whether name is usable as a table or column name.
func IsIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// predicate is the single WHERE condition a statement may carry. It returns
// its SQL fragment and binds only after every input has been validated.
type predicate interface {
	fragment(d Dialect) (string, []any, error)
}

// equality is "<column> = ?".
type equality struct {
	column string
	value  Value
}

func (e equality) fragment(d Dialect) (string, []any, error) {
	if err := checkIdentifier("column", e.column); err != nil {
		return "", nil, err
	}
	if err := checkValue(e.column, e.value); err != nil {
		return "", nil, err
	}
	return e.column + " = " + placeholder(d, e.value), []any{e.value.Arg()}, nil
}

func placeholder(d Dialect, v Value) string {
	if v.Type() == TypeGeometry {
		return d.GeometryParam()
	}
	return "?"
}

// writeWhere appends " WHERE <predicate>" when p is set.
func writeWhere(d Dialect, sb *strings.Builder, p predicate, args []any) ([]any, error) {
	if p == nil {
		return args, nil
	}
	frag, binds, err := p.fragment(d)
	if err != nil {
		return nil, err
	}
	sb.WriteString(" WHERE ")
	sb.WriteString(frag)
	return append(args, binds...), nil
}
