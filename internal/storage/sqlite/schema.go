package sqlite

const schema = `
-- Lemmas table: one row per (lemma, part_of_speech) input pair
CREATE TABLE IF NOT EXISTS lemmas (
    lemma_id INTEGER PRIMARY KEY,
    lemma TEXT NOT NULL,
    part_of_speech TEXT NOT NULL CHECK(length(part_of_speech) = 1),
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(lemma, part_of_speech)
);

CREATE INDEX IF NOT EXISTS idx_lemmas_lemma ON lemmas(lemma);

-- Word forms: inflected surface forms of a lemma
CREATE TABLE IF NOT EXISTS word_forms (
    form_id INTEGER PRIMARY KEY,
    lemma_id INTEGER NOT NULL,
    form TEXT NOT NULL,
    tag TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL,
    FOREIGN KEY (lemma_id) REFERENCES lemmas(lemma_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_word_forms_lemma ON word_forms(lemma_id);
CREATE INDEX IF NOT EXISTS idx_word_forms_form ON word_forms(form);

-- Entries: sense groups reported by the model, ordered by common usage
CREATE TABLE IF NOT EXISTS entries (
    entry_id INTEGER PRIMARY KEY,
    lemma_id INTEGER NOT NULL,
    part_of_speech TEXT NOT NULL CHECK(length(part_of_speech) = 1),
    position INTEGER NOT NULL,
    FOREIGN KEY (lemma_id) REFERENCES lemmas(lemma_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_entries_lemma ON entries(lemma_id);

-- Definitions per entry
CREATE TABLE IF NOT EXISTS definitions (
    definition_id INTEGER PRIMARY KEY,
    entry_id INTEGER NOT NULL,
    definition TEXT NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (entry_id) REFERENCES entries(entry_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_definitions_entry ON definitions(entry_id);

-- Synonyms per entry (word strings, not foreign keys into lemmas)
CREATE TABLE IF NOT EXISTS synonyms (
    synonym_id INTEGER PRIMARY KEY,
    entry_id INTEGER NOT NULL,
    synonym TEXT NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (entry_id) REFERENCES entries(entry_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_synonyms_entry ON synonyms(entry_id);

-- Antonyms per entry
CREATE TABLE IF NOT EXISTS antonyms (
    antonym_id INTEGER PRIMARY KEY,
    entry_id INTEGER NOT NULL,
    antonym TEXT NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (entry_id) REFERENCES entries(entry_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_antonyms_entry ON antonyms(entry_id);

-- Metadata table (for storing internal state like the last run summary)
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`
