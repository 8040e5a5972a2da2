// Package storage defines the interface for dictionary storage backends.
package storage

import (
	"context"
	"errors"

	"github.com/lexistack/lexibuild/internal/types"
)

// ErrNotFound is returned when no record exists for a (lemma, pos) key.
var ErrNotFound = errors.New("record not found")

// Stats summarizes the contents of a dictionary database.
type Stats struct {
	Lemmas      int
	WordForms   int
	Entries     int
	Definitions int
	Synonyms    int
	Antonyms    int
}

// Store is the interface for dictionary storage backends.
//
// SaveRecord is atomic and upserts by the (lemma, part_of_speech)
// natural key: re-saving a record replaces its word forms, entries,
// and synonym/antonym sets rather than duplicating them.
type Store interface {
	SaveRecord(ctx context.Context, record *types.DictionaryRecord) error
	GetRecord(ctx context.Context, lemma string, pos types.PartOfSpeech) (*types.DictionaryRecord, error)
	ListLemmas(ctx context.Context) ([]types.LemmaEntry, error)
	Stats(ctx context.Context) (*Stats, error)

	// Metadata holds internal key/value state, e.g. the last run summary.
	SetMetadata(ctx context.Context, key, value string) error
	GetMetadata(ctx context.Context, key string) (string, error)

	Close() error
}
