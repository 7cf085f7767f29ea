package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// WithTx runs fn inside a transaction scoped to one request.  The
// transaction is committed when fn returns nil and rolled back otherwise,
// including when fn panics, so the connection always goes back to the pool.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// insertID executes an INSERT written with ? placeholders and returns the
// generated id.  PostgreSQL has no LastInsertId, so there the statement is
// extended with RETURNING id.
func insertID(ctx context.Context, tx *sqlx.Tx, query string, args ...any) (int64, error) {
	if tx.DriverName() == "pgx" {
		var id int64
		if err := tx.QueryRowxContext(ctx, tx.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}
	res, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// exists reports whether table has a row with the given id.
func exists(ctx context.Context, tx *sqlx.Tx, table string, id int64) (bool, error) {
	var n int
	q := tx.Rebind("SELECT COUNT(*) FROM " + table + " WHERE id = ?")
	if err := tx.GetContext(ctx, &n, q, id); err != nil {
		return false, err
	}
	return n > 0, nil
}

// likePattern turns a search term into a case-insensitive substring
// pattern.  LIKE wildcards in the term are escaped with '!' so they match
// literally; the queries declare ESCAPE '!'.
func likePattern(term string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}
