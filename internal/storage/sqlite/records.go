package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lexistack/lexibuild/internal/storage"
	"github.com/lexistack/lexibuild/internal/types"
)

// SaveRecord persists one DictionaryRecord atomically, upserting by
// the (lemma, part_of_speech) natural key. Existing word forms,
// entries, definitions, synonyms, and antonyms for the key are
// replaced wholesale; a failure mid-write rolls back everything.
func (s *Store) SaveRecord(ctx context.Context, record *types.DictionaryRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid record: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO lemmas (lemma, part_of_speech) VALUES (?, ?)
		ON CONFLICT(lemma, part_of_speech)
		DO UPDATE SET updated_at = CURRENT_TIMESTAMP`,
		record.Lemma, string(record.POS))
	if err != nil {
		return fmt.Errorf("upserting lemma %s: %w", record.Lemma, err)
	}

	var lemmaID int64
	err = tx.QueryRowContext(ctx,
		`SELECT lemma_id FROM lemmas WHERE lemma = ? AND part_of_speech = ?`,
		record.Lemma, string(record.POS)).Scan(&lemmaID)
	if err != nil {
		return fmt.Errorf("resolving lemma id: %w", err)
	}

	// Replace, don't append: deleting entries cascades to definitions,
	// synonyms, and antonyms.
	if _, err := tx.ExecContext(ctx, `DELETE FROM word_forms WHERE lemma_id = ?`, lemmaID); err != nil {
		return fmt.Errorf("clearing word forms: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE lemma_id = ?`, lemmaID); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}

	for i, wf := range record.WordForms {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO word_forms (lemma_id, form, tag, position) VALUES (?, ?, ?, ?)`,
			lemmaID, wf.Form, wf.Tag, i)
		if err != nil {
			return fmt.Errorf("inserting word form %q: %w", wf.Form, err)
		}
	}

	for i, entry := range record.Entries {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO entries (lemma_id, part_of_speech, position) VALUES (?, ?, ?)`,
			lemmaID, string(entry.PartOfSpeech), i)
		if err != nil {
			return fmt.Errorf("inserting entry %d: %w", i, err)
		}
		entryID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("resolving entry id: %w", err)
		}

		if err := insertOrdered(ctx, tx, "definitions", "definition", entryID, entry.Definitions); err != nil {
			return err
		}
		if err := insertOrdered(ctx, tx, "synonyms", "synonym", entryID, entry.Synonyms); err != nil {
			return err
		}
		if err := insertOrdered(ctx, tx, "antonyms", "antonym", entryID, entry.Antonyms); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing record %s: %w", record.Lemma, err)
	}
	return nil
}

func insertOrdered(ctx context.Context, tx *sql.Tx, table, column string, entryID int64, values []string) error {
	stmt := fmt.Sprintf("INSERT INTO %s (entry_id, %s, position) VALUES (?, ?, ?)", table, column)
	for i, v := range values {
		if _, err := tx.ExecContext(ctx, stmt, entryID, v, i); err != nil {
			return fmt.Errorf("inserting into %s: %w", table, err)
		}
	}
	return nil
}

// GetRecord loads the full DictionaryRecord for a (lemma, pos) key,
// or storage.ErrNotFound.
func (s *Store) GetRecord(ctx context.Context, lemma string, pos types.PartOfSpeech) (*types.DictionaryRecord, error) {
	var lemmaID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT lemma_id FROM lemmas WHERE lemma = ? AND part_of_speech = ?`,
		lemma, string(pos)).Scan(&lemmaID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("looking up lemma: %w", err)
	}

	record := &types.DictionaryRecord{Lemma: lemma, POS: pos}

	rows, err := s.db.QueryContext(ctx,
		`SELECT form, tag FROM word_forms WHERE lemma_id = ? ORDER BY position`, lemmaID)
	if err != nil {
		return nil, fmt.Errorf("loading word forms: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var wf types.WordForm
		if err := rows.Scan(&wf.Form, &wf.Tag); err != nil {
			return nil, fmt.Errorf("scanning word form: %w", err)
		}
		record.WordForms = append(record.WordForms, wf)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entryRows, err := s.db.QueryContext(ctx,
		`SELECT entry_id, part_of_speech FROM entries WHERE lemma_id = ? ORDER BY position`, lemmaID)
	if err != nil {
		return nil, fmt.Errorf("loading entries: %w", err)
	}
	defer entryRows.Close()

	type entryKey struct {
		id  int64
		pos types.PartOfSpeech
	}
	var keys []entryKey
	for entryRows.Next() {
		var k entryKey
		var rawPOS string
		if err := entryRows.Scan(&k.id, &rawPOS); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		k.pos = types.PartOfSpeech(rawPOS)
		keys = append(keys, k)
	}
	if err := entryRows.Err(); err != nil {
		return nil, err
	}

	for _, k := range keys {
		entry := types.Entry{PartOfSpeech: k.pos}
		var err error
		if entry.Definitions, err = s.loadOrdered(ctx, "definitions", "definition", k.id); err != nil {
			return nil, err
		}
		if entry.Synonyms, err = s.loadOrdered(ctx, "synonyms", "synonym", k.id); err != nil {
			return nil, err
		}
		if entry.Antonyms, err = s.loadOrdered(ctx, "antonyms", "antonym", k.id); err != nil {
			return nil, err
		}
		record.Entries = append(record.Entries, entry)
	}

	return record, nil
}

func (s *Store) loadOrdered(ctx context.Context, table, column string, entryID int64) ([]string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE entry_id = ? ORDER BY position", column, table)
	rows, err := s.db.QueryContext(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", table, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ListLemmas returns every stored (lemma, pos) key in insertion order.
func (s *Store) ListLemmas(ctx context.Context) ([]types.LemmaEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT lemma, part_of_speech FROM lemmas ORDER BY lemma_id`)
	if err != nil {
		return nil, fmt.Errorf("listing lemmas: %w", err)
	}
	defer rows.Close()

	var entries []types.LemmaEntry
	for rows.Next() {
		var e types.LemmaEntry
		var rawPOS string
		if err := rows.Scan(&e.Lemma, &rawPOS); err != nil {
			return nil, fmt.Errorf("scanning lemma: %w", err)
		}
		e.POS = types.PartOfSpeech(rawPOS)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Stats counts the rows in every content table.
func (s *Store) Stats(ctx context.Context) (*storage.Stats, error) {
	stats := &storage.Stats{}
	for _, c := range []struct {
		table string
		dest  *int
	}{
		{"lemmas", &stats.Lemmas},
		{"word_forms", &stats.WordForms},
		{"entries", &stats.Entries},
		{"definitions", &stats.Definitions},
		{"synonyms", &stats.Synonyms},
		{"antonyms", &stats.Antonyms},
	} {
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", c.table)
		if err := s.db.QueryRowContext(ctx, query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("counting %s: %w", c.table, err)
		}
	}
	return stats, nil
}

// SetMetadata stores an internal key/value pair.
func (s *Store) SetMetadata(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO metadata (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("setting metadata %s: %w", key, err)
	}
	return nil
}

// GetMetadata returns the value for key, or empty string if unset.
func (s *Store) GetMetadata(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting metadata %s: %w", key, err)
	}
	return value, nil
}
