package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	mdb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrations embed.FS

// Migrate applies every pending migration for the driver and returns the
// resulting schema version.
func Migrate(db *sql.DB, driver Driver) (uint, error) {
	var (
		target mdb.Driver
		dir    string
		err    error
	)

	switch driver {
	case SQLite:
		dir = "migrations/sqlite"
		target, err = sqlite.WithInstance(db, &sqlite.Config{})
	case Postgres:
		dir = "migrations/postgres"
		target, err = pgx.WithInstance(db, &pgx.Config{})
	default:
		return 0, fmt.Errorf("unsupported database driver %q", driver)
	}

	if err != nil {
		return 0, fmt.Errorf("creating migration driver: %w", err)
	}

	src, err := iofs.New(migrations, dir)
	if err != nil {
		return 0, fmt.Errorf("loading migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, string(driver), target)
	if err != nil {
		return 0, fmt.Errorf("creating migrator: %w", err)
	}
	// m.Close is not called: it would close db, which the caller owns.

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("applying migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}

	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}

	return version, nil
}
