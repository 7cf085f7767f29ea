// Package database opens the SQL connection pool and owns the schema
// migrations for the three supported drivers.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

// Supported database/sql driver names.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// sqliteUnicode is go-sqlite3 with lower() replaced by strings.ToLower.
// The built-in lower() folds ASCII letters only.
const sqliteUnicode = "sqlite3_fyyur"

func init() {
	sql.Register(sqliteUnicode, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", strings.ToLower, true)
		},
	})
}

// Options describes how to reach the database.  URL, when set, is passed to
// the driver untouched; otherwise a DSN is assembled from the other fields.
type Options struct {
	Driver string
	URL    string
	User   string
	Pass   string
	Host   string
	Port   string
	Name   string
	Path   string // sqlite file, or ":memory:"
}

// DSN builds the driver specific connection string.
func (o Options) DSN() (string, error) {
	if o.URL != "" {
		return o.URL, nil
	}
	switch o.Driver {
	case DriverMySQL:
		auth := o.User
		if o.Pass != "" {
			auth = fmt.Sprintf("%s:%s", o.User, o.Pass)
		}
		port := o.Port
		if port == "" {
			port = "3306"
		}
		// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
		return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			auth, o.Host, port, o.Name), nil
	case DriverPostgres:
		port := o.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			o.Host, port, o.User, o.Pass, o.Name), nil
	case DriverSQLite:
		return o.Path + "?_foreign_keys=on&_busy_timeout=5000", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", o.Driver)
	}
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, o Options) (*sqlx.DB, error) {
	dsn, err := o.DSN()
	if err != nil {
		return nil, err
	}
	db, err := open(o.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", o.Driver, err)
	}

	if o.Driver == DriverSQLite {
		// sqlite allows a single writer, and an in-memory database lives
		// exactly as long as its one connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", o.Driver, err)
	}
	return db, nil
}

// open keeps the sqlx driver name at o.Driver so bind vars and migration
// dialects resolve the same way for the wrapped sqlite driver.
func open(driver, dsn string) (*sqlx.DB, error) {
	if driver != DriverSQLite {
		return sqlx.Open(driver, dsn)
	}
	db, err := sql.Open(sqliteUnicode, dsn)
	if err != nil {
		return nil, err
	}
	return sqlx.NewDb(db, DriverSQLite), nil
}
