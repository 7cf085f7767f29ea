// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios: a missing
// row becomes a 404 page, while a constraint violation is reported as a
// failed submission.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrVenueNotFound is returned when a venue lookup matches no row.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist lookup matches no row.
var ErrArtistNotFound = errors.New("artist not found")

// ErrConflict is returned when a write violates a unique or foreign key
// constraint, for example booking the same artist at the same venue and
// time twice, or booking a venue that does not exist.
var ErrConflict = errors.New("conflict")

// constraintError maps driver specific constraint violations onto
// ErrConflict and leaves every other error untouched.
func constraintError(err error) error {
	if err == nil {
		return nil
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1062, 1452: // duplicate entry, foreign key
			return errors.Join(ErrConflict, err)
		}
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.Code == sqlite3.ErrConstraint {
		return errors.Join(ErrConflict, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23503": // unique_violation, foreign_key_violation
			return errors.Join(ErrConflict, err)
		}
	}
	return err
}
