package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// singletonID is the fixed primary key shared by every unkeyed singleton
// table. The CHECK(id = 1) constraint in the schema makes a second row
// impossible.
const singletonID = 1

// getOrCreate is the lazy default-materialization protocol shared by all
// singleton content sections. It reads the current row, and if none exists
// inserts the default payload and re-reads. The insert uses ON CONFLICT DO
// NOTHING, so two callers racing through the read-miss both land on the one
// row that survives; neither ever observes a duplicate-key error.
func getOrCreate[T any](ctx context.Context, q sqlx.ExtContext, dest *T, selectQ string, selectArgs []any, insertQ string, insertArgs []any) error {
	err := sqlx.GetContext(ctx, q, dest, selectQ, selectArgs...)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read singleton row: %w", err)
	}

	if _, err := q.ExecContext(ctx, insertQ, insertArgs...); err != nil {
		return fmt.Errorf("insert default row: %w", err)
	}

	// Re-read whichever row won the insert.
	if err := sqlx.GetContext(ctx, q, dest, selectQ, selectArgs...); err != nil {
		return fmt.Errorf("reread singleton row: %w", err)
	}
	return nil
}

// patchField pairs a column name with its new value for a partial update.
type patchField struct {
	col string
	val any
}

// setClause renders the SET fragment and bind args for the given fields.
func setClause(fields []patchField) (string, []any) {
	parts := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, f := range fields {
		parts[i] = f.col + " = ?"
		args[i] = f.val
	}
	return strings.Join(parts, ", "), args
}

// updateSingleton applies a partial update inside a transaction using the
// upsert-first policy: the default row is materialized if absent, then only
// the supplied fields are written. On any failure the transaction rolls
// back and no partial state is retained.
func updateSingleton[T any](ctx context.Context, db *sqlx.DB, dest *T, selectQ string, selectArgs []any, insertQ string, insertArgs []any, table, whereClause string, whereArgs []any, fields []patchField) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := getOrCreate(ctx, tx, dest, selectQ, selectArgs, insertQ, insertArgs); err != nil {
		return err
	}

	if len(fields) > 0 {
		set, args := setClause(fields)
		q := "UPDATE " + table + " SET " + set + " WHERE " + whereClause
		if _, err := tx.ExecContext(ctx, q, append(args, whereArgs...)...); err != nil {
			return fmt.Errorf("update %s: %w", table, err)
		}
		if err := sqlx.GetContext(ctx, tx, dest, selectQ, selectArgs...); err != nil {
			return fmt.Errorf("reread %s: %w", table, err)
		}
	}

	return tx.Commit()
}
