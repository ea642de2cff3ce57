// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"fastfitbeat/internal/config"
	"fastfitbeat/internal/db/migrations"
	"fastfitbeat/internal/logging"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

// Repository is the process-wide handle to the local store. It is opened
// once at startup, shared by every service, and closed at shutdown.
type Repository struct {
	DB      *sql.DB
	Cache   *cache.Cache
	Builder squirrel.StatementBuilderType // SQL Query Builder
}

// NewRepository opens (or creates) the SQLite database at the configured
// path. Schema creation is a separate step, see EnsureSchemaBootstrapped.
func NewRepository(cfg *config.Config) (*Repository, error) {
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The driver is safe for concurrent use, but SQLite writes serialize on
	// a single connection anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON; PRAGMA busy_timeout = 5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set pragmas: %w", err)
	}

	return &Repository{
		DB:      db,
		Cache:   cache.New(5*time.Minute, 10*time.Minute),
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Close closes the underlying database handle.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// configureGoose points goose at the embedded migration files.
func configureGoose() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// EnsureSchemaBootstrapped migrates a fresh database to the latest schema
// version. A database that has been migrated before (the goose version
// table exists) is left alone so that upgrades run through the explicit
// migrate command.
func (s *Repository) EnsureSchemaBootstrapped() error {
	var name string
	err := s.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&name)
	if err == nil {
		// Existing database, nothing to bootstrap.
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to inspect schema state: %w", err)
	}

	logging.Log.Info("Fresh database detected, applying initial schema...")
	if err := configureGoose(); err != nil {
		return err
	}
	if err := goose.Up(s.DB, "."); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return nil
}

// ValidateSchema verifies that the database is at the latest known schema
// version and refuses to serve otherwise.
func (s *Repository) ValidateSchema() error {
	if err := configureGoose(); err != nil {
		return err
	}

	current, err := goose.GetDBVersion(s.DB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	latest, err := latestMigrationVersion()
	if err != nil {
		return err
	}

	if current < latest {
		return fmt.Errorf("database schema is outdated (have v%d, want v%d): run 'fastfitbeat migrate up'", current, latest)
	}
	return nil
}

// MigrateUp migrates the database to the most recent version.
func (s *Repository) MigrateUp() error {
	if err := configureGoose(); err != nil {
		return err
	}
	return goose.Up(s.DB, ".")
}

// MigrateDown rolls the database back by one version.
func (s *Repository) MigrateDown() error {
	if err := configureGoose(); err != nil {
		return err
	}
	return goose.Down(s.DB, ".")
}

// MigrationStatus dumps the migration status for the current database.
func (s *Repository) MigrationStatus() error {
	if err := configureGoose(); err != nil {
		return err
	}
	return goose.Status(s.DB, ".")
}

// latestMigrationVersion returns the highest numeric prefix among the
// embedded migration files.
func latestMigrationVersion() (int64, error) {
	entries, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return 0, fmt.Errorf("failed to list embedded migrations: %w", err)
	}

	var latest int64
	for _, name := range entries {
		prefix, _, found := strings.Cut(name, "_")
		if !found {
			continue
		}
		v, err := strconv.ParseInt(prefix, 10, 64)
		if err != nil {
			continue
		}
		if v > latest {
			latest = v
		}
	}
	if latest == 0 {
		return 0, fmt.Errorf("no embedded migrations found")
	}
	return latest, nil
}

// nowMillis is the single clock used for record timestamps. Tests may
// override it for deterministic ordering.
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}
