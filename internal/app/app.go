// Package app wires configuration, storage and services for the entrypoints.
package app

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MrJamesThe3rd/manchego/internal/config"
	"github.com/MrJamesThe3rd/manchego/internal/database"
	"github.com/MrJamesThe3rd/manchego/internal/importer"
	"github.com/MrJamesThe3rd/manchego/internal/ledger"
	"github.com/MrJamesThe3rd/manchego/internal/ledger/store"
)

type App struct {
	Config   *config.Config
	DB       *sql.DB
	Driver   database.Driver
	Ledger   *ledger.Service
	Importer *importer.Service
}

// OpenDB connects to the configured database and applies pending
// migrations. SQLite parent directories are created on demand.
func OpenDB(cfg *config.Config) (*sql.DB, database.Driver, error) {
	driver, dsn, err := cfg.DataSourceName()
	if err != nil {
		return nil, "", err
	}

	if driver == database.SQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath()), 0o755); err != nil {
			return nil, "", fmt.Errorf("creating database dir: %w", err)
		}
	}

	db, err := database.Open(driver, dsn)
	if err != nil {
		return nil, "", err
	}

	if _, err := database.Migrate(db, driver); err != nil {
		db.Close()
		return nil, "", err
	}

	return db, driver, nil
}

func Open(cfg *config.Config, log *slog.Logger) (*App, error) {
	db, driver, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	var (
		ledgerService   = ledger.NewService(store.New(db, driver))
		importerService = importer.NewService(ledgerService, cfg.Importer(), log)
	)

	return &App{
		Config:   cfg,
		DB:       db,
		Driver:   driver,
		Ledger:   ledgerService,
		Importer: importerService,
	}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}
