package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations
var migrationFS embed.FS

// Migration is one versioned schema change with its forward and backward
// scripts.
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// ErrNoMigration is returned by Down when nothing has been applied yet.
var ErrNoMigration = errors.New("no applied migration")

func dialectDir(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return "migrations/sqlite", nil
	case DriverMySQL:
		return "migrations/mysql", nil
	case DriverPostgres:
		return "migrations/postgres", nil
	}
	return "", fmt.Errorf("no migrations for driver %q", driver)
}

// LoadMigrations reads the embedded scripts for driver, ordered by version.
// Files are named NNNN_name.up.sql and NNNN_name.down.sql.
func LoadMigrations(driver string) ([]Migration, error) {
	dir, err := dialectDir(driver)
	if err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(migrationFS, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	byVersion := map[int]*Migration{}
	for _, e := range entries {
		file := e.Name()
		var direction string
		switch {
		case strings.HasSuffix(file, ".up.sql"):
			direction = "up"
		case strings.HasSuffix(file, ".down.sql"):
			direction = "down"
		default:
			continue
		}
		base := strings.TrimSuffix(file, "."+direction+".sql")
		num, name, ok := strings.Cut(base, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s: missing name", file)
		}
		version, err := strconv.Atoi(num)
		if err != nil {
			return nil, fmt.Errorf("migration %s: bad version: %w", file, err)
		}
		body, err := fs.ReadFile(migrationFS, path.Join(dir, file))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		m, ok := byVersion[version]
		if !ok {
			m = &Migration{Version: version, Name: name}
			byVersion[version] = m
		}
		if direction == "up" {
			m.Up = string(body)
		} else {
			m.Down = string(body)
		}
	}

	out := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.Up == "" || m.Down == "" {
			return nil, fmt.Errorf("migration %04d_%s: up and down scripts are both required", m.Version, m.Name)
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// Migrator applies and reverts migrations, recording progress in the
// schema_migrations table.
type Migrator struct {
	db         *sqlx.DB
	migrations []Migration
}

// NewMigrator loads the scripts matching the driver of db.
func NewMigrator(db *sqlx.DB) (*Migrator, error) {
	ms, err := LoadMigrations(db.DriverName())
	if err != nil {
		return nil, err
	}
	return &Migrator{db: db, migrations: ms}, nil
}

func (m *Migrator) ensureTable(ctx context.Context) error {
	const q = `CREATE TABLE IF NOT EXISTS schema_migrations (
		version BIGINT NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	)`
	if _, err := m.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	return nil
}

// Applied returns the versions already recorded, ascending.
func (m *Migrator) Applied(ctx context.Context) ([]int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return nil, err
	}
	var versions []int
	if err := m.db.SelectContext(ctx, &versions, `SELECT version FROM schema_migrations ORDER BY version`); err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	return versions, nil
}

// Up applies every pending migration in order and returns how many ran.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	applied, err := m.Applied(ctx)
	if err != nil {
		return 0, err
	}
	done := make(map[int]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	n := 0
	for _, mig := range m.migrations {
		if done[mig.Version] {
			continue
		}
		record := m.db.Rebind(`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`)
		if err := m.run(ctx, mig.Up, record, mig.Version, mig.Name); err != nil {
			return n, fmt.Errorf("migration %04d_%s up: %w", mig.Version, mig.Name, err)
		}
		n++
	}
	return n, nil
}

// Down reverts the most recently applied migration.
func (m *Migrator) Down(ctx context.Context) (Migration, error) {
	applied, err := m.Applied(ctx)
	if err != nil {
		return Migration{}, err
	}
	if len(applied) == 0 {
		return Migration{}, ErrNoMigration
	}
	latest := applied[len(applied)-1]
	for _, mig := range m.migrations {
		if mig.Version != latest {
			continue
		}
		record := m.db.Rebind(`DELETE FROM schema_migrations WHERE version = ?`)
		if err := m.run(ctx, mig.Down, record, mig.Version); err != nil {
			return Migration{}, fmt.Errorf("migration %04d_%s down: %w", mig.Version, mig.Name, err)
		}
		return mig, nil
	}
	return Migration{}, fmt.Errorf("applied migration %04d has no script", latest)
}

// run executes script statement by statement followed by the bookkeeping
// query, all inside one transaction.  MySQL commits DDL implicitly, so there
// a failure midway can leave a partially applied script behind.
func (m *Migrator) run(ctx context.Context, script, record string, args ...any) (err error) {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	for _, stmt := range SplitStatements(script) {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	if _, err = tx.ExecContext(ctx, record, args...); err != nil {
		return err
	}
	return tx.Commit()
}

// SplitStatements breaks a script into single statements on semicolons that
// end a line.  The scripts contain no semicolons inside literals.
func SplitStatements(script string) []string {
	var out []string
	var cur strings.Builder
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		cur.WriteString(line)
		cur.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSuffix(strings.TrimSpace(cur.String()), ";")
			out = append(out, stmt)
			cur.Reset()
		}
	}
	if rest := strings.TrimSpace(cur.String()); rest != "" {
		out = append(out, rest)
	}
	return out
}
