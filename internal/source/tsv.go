// Package source loads the lemma word list that drives a build.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lexistack/lexibuild/internal/types"
)

// DefaultLimit is how many lemmas a build processes unless overridden.
const DefaultLimit = 100

// RowError reports a malformed input row. Line is 1-based and counts
// every line in the file, including a header if present.
type RowError struct {
	Line   int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("input row %d: %s", e.Line, e.Reason)
}

// Load reads lemma/part-of-speech pairs from a tab-separated file.
//
// Each row must carry a lemma and a one-letter code; both fields are
// trimmed and lowercased. A first row made of column labels (e.g.
// "lemma<TAB>pos") is skipped. Any malformed row fails the whole load
// with a *RowError; nothing is returned.
//
// The result preserves file order and is truncated to at most limit
// entries. limit <= 0 yields an empty slice.
func Load(path string, limit int) ([]types.LemmaEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	return readAll(f, limit)
}

func readAll(r io.Reader, limit int) ([]types.LemmaEntry, error) {
	if limit <= 0 {
		return []types.LemmaEntry{}, nil
	}

	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var entries []types.LemmaEntry
	line := 0
	for len(entries) < limit {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, &RowError{Line: line, Reason: err.Error()}
		}

		// Blank separator lines are tolerated.
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) < 2 {
			return nil, &RowError{Line: line, Reason: "expected lemma<TAB>part-of-speech"}
		}

		lemma := strings.ToLower(strings.TrimSpace(record[0]))
		rawPOS := record[1]

		pos, err := types.ParsePartOfSpeech(rawPOS)
		if err != nil {
			if line == 1 && isHeaderRow(lemma, rawPOS) {
				continue
			}
			return nil, &RowError{Line: line, Reason: err.Error()}
		}
		if lemma == "" {
			return nil, &RowError{Line: line, Reason: "empty lemma"}
		}

		entries = append(entries, types.LemmaEntry{Lemma: lemma, POS: pos})
	}

	if entries == nil {
		entries = []types.LemmaEntry{}
	}
	return entries, nil
}

// isHeaderRow reports whether a first row carries column labels rather
// than data, e.g. "lemma<TAB>pos". A malformed first data row must not
// pass for a header; it fails the load like any other bad row.
func isHeaderRow(first, second string) bool {
	switch strings.ToLower(strings.TrimSpace(second)) {
	case "pos", "part_of_speech", "part-of-speech", "code", "tag":
		return true
	}
	return first == "lemma" || first == "word"
}
