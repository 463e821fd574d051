package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/MrJamesThe3rd/manchego/internal/database"
	"github.com/MrJamesThe3rd/manchego/internal/importer"
)

var environments = []string{"dev", "stage", "prod"}

type Config struct {
	App struct {
		Env      string `envconfig:"MANCHEGO_ENV" default:"dev"`
		DataRoot string `envconfig:"DATA_ROOT" default:"data"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"text"`
	}

	Import struct {
		RawDir      string `envconfig:"TRANSACTIONS_RAW_DIR"`
		BackupDir   string `envconfig:"TRANSACTIONS_BACKUP_RAW_DIR"`
		ImportedDir string `envconfig:"TRANSACTIONS_IMPORTED_DIR"`
		Prefix      string `envconfig:"IMPORT_FILE_PREFIX" default:"CIBC"`
		Extension   string `envconfig:"IMPORT_FILE_EXT" default:".csv"`
	}

	DB struct {
		Driver   string `envconfig:"DB_DRIVER" default:"sqlite"`
		Path     string `envconfig:"DB_PATH"`
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"manchego"`
	}

	Server struct {
		Port           int           `envconfig:"PORT" default:"8080"`
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		JWTSecret      string        `envconfig:"API_JWT_SECRET"`
		AllowedOrigins []string      `envconfig:"API_ALLOWED_ORIGINS" default:"*"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if !slices.Contains(environments, cfg.App.Env) {
		slog.Warn("invalid MANCHEGO_ENV, defaulting to dev", "value", cfg.App.Env)
		cfg.App.Env = "dev"
	}

	return &cfg, nil
}

func (c *Config) DatasetsRoot() string {
	return filepath.Join(c.App.DataRoot, "datasets")
}

func (c *Config) LogsRoot() string {
	return filepath.Join(c.App.DataRoot, "logs")
}

// AuditLogPath is where CLI command events are appended.
func (c *Config) AuditLogPath() string {
	return filepath.Join(c.LogsRoot(), "cli", "commands.log")
}

func (c *Config) ImportDirs() importer.Dirs {
	base := filepath.Join(c.DatasetsRoot(), "transactions")

	return importer.Dirs{
		Raw:      orDefault(c.Import.RawDir, filepath.Join(base, "raw")),
		Backup:   orDefault(c.Import.BackupDir, filepath.Join(base, "backup_raw")),
		Imported: orDefault(c.Import.ImportedDir, filepath.Join(base, "imported")),
	}
}

func (c *Config) Importer() importer.Config {
	return importer.Config{
		Dirs:      c.ImportDirs(),
		Prefix:    c.Import.Prefix,
		Extension: c.Import.Extension,
	}
}

// DatabasePath is the SQLite file for the current environment.
func (c *Config) DatabasePath() string {
	return orDefault(c.DB.Path, filepath.Join("db", fmt.Sprintf("manchego_%s.db", c.App.Env)))
}

func (c *Config) Driver() (database.Driver, error) {
	return database.ParseDriver(c.DB.Driver)
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// DataSourceName returns the DSN for the configured driver.
func (c *Config) DataSourceName() (database.Driver, string, error) {
	driver, err := c.Driver()
	if err != nil {
		return "", "", err
	}

	if driver == database.Postgres {
		return driver, c.ConnectionString(), nil
	}

	return driver, database.SQLiteDSN(c.DatabasePath()), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
