package db

import (
	"database/sql"
	"fmt"
)

// All contains the ordered list of migrations to apply.
var All = []string{
	`CREATE TABLE runs (
		id                 TEXT PRIMARY KEY,
		started_at         DATETIME NOT NULL DEFAULT (datetime('now')),
		finished_at        DATETIME,
		status             TEXT NOT NULL DEFAULT 'running',
		error              TEXT NOT NULL DEFAULT '',
		features_passed    INTEGER NOT NULL DEFAULT 0,
		features_failed    INTEGER NOT NULL DEFAULT 0,
		scenarios_passed   INTEGER NOT NULL DEFAULT 0,
		scenarios_failed   INTEGER NOT NULL DEFAULT 0,
		scenarios_skipped  INTEGER NOT NULL DEFAULT 0,
		steps_passed       INTEGER NOT NULL DEFAULT 0,
		steps_failed       INTEGER NOT NULL DEFAULT 0,
		steps_skipped      INTEGER NOT NULL DEFAULT 0,
		steps_missing      INTEGER NOT NULL DEFAULT 0,
		steps_pending      INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE step_results (
		id        INTEGER PRIMARY KEY,
		run_id    TEXT NOT NULL REFERENCES runs(id),
		position  INTEGER NOT NULL,
		feature   TEXT NOT NULL,
		scenario  TEXT NOT NULL,
		step      TEXT NOT NULL,
		status    TEXT NOT NULL,
		error     TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX step_results_run ON step_results(run_id, position)`,
}

// Migrate brings the schema up to the last entry of All. Each migration runs
// in its own transaction together with the version bump.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}
	if _, err := db.Exec(`INSERT INTO schema_version (version)
		SELECT 0 WHERE NOT EXISTS (SELECT 1 FROM schema_version)`); err != nil {
		return fmt.Errorf("initializing schema version: %w", err)
	}

	var current int
	if err := db.QueryRow(`SELECT version FROM schema_version`).Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := current; i < len(All); i++ {
		if err := apply(db, i+1, All[i]); err != nil {
			return err
		}
	}
	return nil
}

func apply(db *sql.DB, version int, stmt string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning migration %d: %w", version, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(stmt); err != nil {
		return fmt.Errorf("migration %d failed: %w", version, err)
	}
	if _, err := tx.Exec(`UPDATE schema_version SET version = ?`, version); err != nil {
		return fmt.Errorf("updating schema version to %d: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration %d: %w", version, err)
	}
	return nil
}
