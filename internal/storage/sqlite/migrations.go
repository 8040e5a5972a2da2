// Package sqlite - database migrations
package sqlite

import (
	"database/sql"
	"fmt"
)

// migration is a single idempotent schema change, run in order after
// the base schema on every open.
type migration struct {
	name string
	fn   func(*sql.DB) error
}

var migrationsList = []migration{
	{"word_form_tag_column", migrateWordFormTagColumn},
	{"metadata_table", migrateMetadataTable},
}

func runMigrations(db *sql.DB) error {
	for _, m := range migrationsList {
		if err := m.fn(db); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.name, err)
		}
	}
	return nil
}

// migrateWordFormTagColumn adds the tag column to word_forms for
// databases created before grammatical tags were stored.
func migrateWordFormTagColumn(db *sql.DB) error {
	exists, err := columnExists(db, "word_forms", "tag")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = db.Exec(`ALTER TABLE word_forms ADD COLUMN tag TEXT NOT NULL DEFAULT ''`)
	return err
}

// migrateMetadataTable backfills the metadata table on databases
// created by early builds that only had the content tables.
func migrateMetadataTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS metadata (
		  key TEXT PRIMARY KEY,
		  value TEXT NOT NULL
		);
	`)
	return err
}

func columnExists(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name, typ string
			notnull   int
			dflt      sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &typ, &notnull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
