// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tomtom215/geoquest/internal/database/query"
)

// selectColumns splits the {columns} path segment on "&".
func selectColumns(segment string) []string {
	var cols []string
	for _, c := range strings.Split(segment, "&") {
		if c = strings.TrimSpace(c); c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}

// buildSelect turns /select parameters into a statement. where and join are
// mutually exclusive; asking for both is rejected before any statement
// exists.
func buildSelect(columns []string, p query.Params) (query.SelectBuilder, error) {
	from, err := p.Require("from")
	if err != nil {
		return query.SelectBuilder{}, err
	}
	where, hasWhere := p.Lookup("where")
	join, hasJoin := p.Lookup("join")
	if hasWhere && hasJoin {
		return query.SelectBuilder{}, fmt.Errorf("%w: where and join cannot be combined", query.ErrMalformedValue)
	}

	req := SelectRequest{From: from, Join: join}
	named := make([]string, 0, len(columns))
	for _, c := range columns {
		if c != "*" {
			named = append(named, c)
		}
	}
	req.Columns = strings.Join(named, ",")

	stmt := query.Select(columns...).From(from)

	switch {
	case hasWhere:
		v, err := query.Bind(p, where, query.SelectorIs)
		if err != nil {
			return query.SelectBuilder{}, err
		}
		stmt = stmt.Where(where).Is(v)
	case hasJoin:
		if req.On, err = p.Require("on"); err != nil {
			return query.SelectBuilder{}, err
		}
		if req.Equals, err = p.Require("equals"); err != nil {
			return query.SelectBuilder{}, err
		}
		stmt = stmt.Join(join).On(req.On).Equals(req.Equals)
	}

	if err := validateRequest(&req); err != nil {
		return query.SelectBuilder{}, err
	}
	return stmt, nil
}

// Select handles GET /select/{columns}.
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	columns := selectColumns(pathParam(r, "columns"))
	if len(columns) == 0 {
		respondError(w, r, fmt.Errorf("%w: column list", query.ErrMissingParameter))
		return
	}

	stmt, err := buildSelect(columns, queryParams(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	rows, err := h.store.Query(r.Context(), stmt)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondRows(w, r, rows)
}

// buildUpdate turns /update parameters into a statement. All four
// parameters are required.
func buildUpdate(table string, p query.Params) (query.UpdateStatement, error) {
	set, err := p.Require("set")
	if err != nil {
		return query.UpdateStatement{}, err
	}
	where, err := p.Require("where")
	if err != nil {
		return query.UpdateStatement{}, err
	}
	if err := validateRequest(&UpdateRequest{Table: table, Set: set, Where: where}); err != nil {
		return query.UpdateStatement{}, err
	}

	to, err := query.Bind(p, set, query.SelectorTo)
	if err != nil {
		return query.UpdateStatement{}, err
	}
	is, err := query.Bind(p, where, query.SelectorIs)
	if err != nil {
		return query.UpdateStatement{}, err
	}
	return query.Update(table).Set(set).To(to).Where(where).Is(is), nil
}

// Update handles GET /update/{table}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	stmt, err := buildUpdate(pathParam(r, "table"), queryParams(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.store.Exec(r.Context(), stmt); err != nil {
		respondError(w, r, err)
		return
	}
	respondSuccess(w)
}

// buildDelete turns /delete parameters into a statement. The from
// parameter takes precedence over the path segment.
func buildDelete(pathTable string, p query.Params) (query.DeleteStatement, error) {
	table := pathTable
	if from, ok := p.Lookup("from"); ok {
		table = from
	}
	if table == "" {
		return query.DeleteStatement{}, fmt.Errorf("%w: from", query.ErrMissingParameter)
	}

	stmt := query.Delete().From(table)
	if where, ok := p.Lookup("where"); ok {
		is, err := query.Bind(p, where, query.SelectorIs)
		if err != nil {
			return query.DeleteStatement{}, err
		}
		stmt = stmt.Where(where).Is(is)
	}
	return stmt, nil
}

// Delete handles GET /delete[/{table}].
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	stmt, err := buildDelete(pathParam(r, "table"), queryParams(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.store.Exec(r.Context(), stmt); err != nil {
		respondError(w, r, err)
		return
	}
	respondSuccess(w)
}
