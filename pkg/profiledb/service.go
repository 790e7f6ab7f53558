// ProfileDB archives generated load profiles in SQLite so other
// tools can read past profiles without parsing the CSV files.
// Only the profile builder writes to it.
package profiledb

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/NotCoffee418/dbmigrator"
	"github.com/NotCoffee418/esm_load_profile/pkg/pathing"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// ErrArchiveTooNew is returned for an archive migrated by a newer build.
var ErrArchiveTooNew = errors.New("archive schema is newer than this build")

// Open opens (or creates) the archive at dbPath and applies migrations.
func Open(dbPath string) (*sql.DB, error) {
	if err := pathing.EnsureDir(filepath.Dir(dbPath)); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// Verify connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	// dbmigrator exits the process on a newer schema, so refuse those first
	if err = checkSchemaVersion(db); err != nil {
		db.Close()
		return nil, err
	}

	// Apply migrations
	dbmigrator.SetDatabaseType(dbmigrator.SQLite)
	<-dbmigrator.MigrateUpCh(
		db,
		migrationFS,
		"migrations",
	)

	return db, nil
}

// checkSchemaVersion fails when the archive holds migrations we don't ship.
func checkSchemaVersion(db *sql.DB) error {
	available, err := highestAvailableMigration()
	if err != nil {
		return err
	}

	var tableCount int
	err = db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'migrations'",
	).Scan(&tableCount)
	if err != nil {
		return err
	}
	if tableCount == 0 {
		// Fresh archive
		return nil
	}

	var installed sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM migrations").Scan(&installed); err != nil {
		return fmt.Errorf("failed to read archive schema version: %w", err)
	}
	if installed.Valid && installed.Int64 > int64(available) {
		return fmt.Errorf("%w: installed version %d, highest available %d",
			ErrArchiveTooNew, installed.Int64, available)
	}
	return nil
}

// highestAvailableMigration reads the version prefix of the embedded migration files.
func highestAvailableMigration() (int, error) {
	files, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		return 0, err
	}

	highest := 0
	for _, f := range files {
		prefix, _, _ := strings.Cut(f.Name(), "_")
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return 0, fmt.Errorf("migration %s has no numeric version prefix", f.Name())
		}
		if version > highest {
			highest = version
		}
	}
	return highest, nil
}
