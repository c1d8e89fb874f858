// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tomtom215/geoquest/internal/database/query"
	"github.com/tomtom215/geoquest/internal/logging"
	"github.com/tomtom215/geoquest/internal/metrics"
)

// ensureContext applies the query timeout when the caller set no deadline.
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok || db.cfg.QueryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, db.cfg.QueryTimeout)
}

// withConn checks one connection out of the pool for the duration of fn and
// returns it on every path.
func (db *DB) withConn(ctx context.Context, fn func(*sqlx.Conn) error) error {
	conn, err := db.conn.Connx(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer closeQuietly(conn)
	return fn(conn)
}

// render turns a builder value into driver-ready SQL.
func (db *DB) render(r query.Renderer) (query.Statement, error) {
	stmt, err := r.Render(db.dialect)
	if err != nil {
		return stmt, err
	}
	stmt.SQL = db.conn.Rebind(stmt.SQL)
	return stmt, nil
}

// run executes fn for stmt through the breaker on a scoped connection and
// records the outcome. Every error it returns wraps ErrDatabase, except an
// empty single-row lookup which wraps ErrNotFound.
func (db *DB) run(ctx context.Context, stmt query.Statement, fn func(context.Context, *sqlx.Conn) error) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	label := metricTable(stmt.Table)
	start := time.Now()
	err := db.breaker.execute(func() error {
		return db.withConn(ctx, func(conn *sqlx.Conn) error {
			return fn(ctx, conn)
		})
	})
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery(stmt.Op, label, time.Since(start), nil)
		return fmt.Errorf("%w: %s %s: %w", ErrNotFound, stmt.Op, stmt.Table, err)
	}
	metrics.RecordDBQuery(stmt.Op, label, time.Since(start), err)

	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("op", stmt.Op).
			Str("table", stmt.Table).
			Str("sql", stmt.SQL).
			Msg("Statement failed")
		return fmt.Errorf("%w: %s %s: %w", ErrDatabase, stmt.Op, stmt.Table, err)
	}
	return nil
}

// Query renders and executes a select, materializing every row.
// Builder errors are returned unwrapped so callers can classify them.
func (db *DB) Query(ctx context.Context, r query.Renderer) (Records, error) {
	stmt, err := db.render(r)
	if err != nil {
		return nil, err
	}

	var records Records
	err = db.run(ctx, stmt, func(ctx context.Context, conn *sqlx.Conn) error {
		rows, err := conn.QueryxContext(ctx, stmt.SQL, stmt.Args...)
		if err != nil {
			return err
		}
		defer closeQuietly(rows)
		records, err = scanRecords(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Exec renders and executes an update, delete or insert. The affected row
// count is not reported.
func (db *DB) Exec(ctx context.Context, r query.Renderer) error {
	stmt, err := db.render(r)
	if err != nil {
		return err
	}
	return db.run(ctx, stmt, func(ctx context.Context, conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, stmt.SQL, stmt.Args...)
		return err
	})
}

// insertReturningID executes an INSERT ... RETURNING id.
func (db *DB) insertReturningID(ctx context.Context, r query.InsertStatement) (int64, error) {
	stmt, err := db.render(r.Returning("id"))
	if err != nil {
		return 0, err
	}

	var id int64
	err = db.run(ctx, stmt, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.QueryRowxContext(ctx, stmt.SQL, stmt.Args...).Scan(&id)
	})
	return id, err
}

// get scans a single row into dest through sqlx struct mapping.
func (db *DB) get(ctx context.Context, dest any, r query.Renderer) error {
	stmt, err := db.render(r)
	if err != nil {
		return err
	}
	return db.run(ctx, stmt, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.GetContext(ctx, dest, stmt.SQL, stmt.Args...)
	})
}

// selectInto scans every row into the slice pointed to by dest.
func (db *DB) selectInto(ctx context.Context, dest any, r query.Renderer) error {
	stmt, err := db.render(r)
	if err != nil {
		return err
	}
	return db.run(ctx, stmt, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, dest, stmt.SQL, stmt.Args...)
	})
}
