// Package types defines the core domain model for lexibuild: lemmas,
// part-of-speech codes, and the dictionary records built from model
// responses.
package types

import (
	"fmt"
	"strings"
)

// PartOfSpeech is a one-letter word-class code from the simplified
// tagset used by frequency word lists (BNC-style).
type PartOfSpeech string

const (
	POSArticle      PartOfSpeech = "a"
	POSAbbreviation PartOfSpeech = "b"
	POSConjunction  PartOfSpeech = "c"
	POSDeterminer   PartOfSpeech = "d"
	POSExistential  PartOfSpeech = "e"
	POSForeign      PartOfSpeech = "f"
	POSGenitive     PartOfSpeech = "g"
	POSPreposition  PartOfSpeech = "i"
	POSAdjective    PartOfSpeech = "j"
	POSNumber       PartOfSpeech = "m"
	POSNoun         PartOfSpeech = "n"
	POSLetter       PartOfSpeech = "o"
	POSPronoun      PartOfSpeech = "p"
	POSAdverb       PartOfSpeech = "r"
	POSInfinitive   PartOfSpeech = "t"
	POSInterjection PartOfSpeech = "u"
	POSVerb         PartOfSpeech = "v"
	POSNegative     PartOfSpeech = "x"
)

// allPOS lists every code in legend order. Order matters: the prompt
// legend and test fixtures rely on it being stable.
var allPOS = []PartOfSpeech{
	POSArticle, POSAbbreviation, POSConjunction, POSDeterminer,
	POSExistential, POSForeign, POSGenitive, POSPreposition,
	POSAdjective, POSNumber, POSNoun, POSLetter,
	POSPronoun, POSAdverb, POSInfinitive, POSInterjection,
	POSVerb, POSNegative,
}

var posNames = map[PartOfSpeech]string{
	POSArticle:      "article",
	POSAbbreviation: "abbreviation",
	POSConjunction:  "conjunction",
	POSDeterminer:   "determiner",
	POSExistential:  "existential there",
	POSForeign:      "foreign word",
	POSGenitive:     "genitive marker",
	POSPreposition:  "preposition",
	POSAdjective:    "adjective",
	POSNumber:       "number",
	POSNoun:         "noun",
	POSLetter:       "letter of the alphabet",
	POSPronoun:      "pronoun",
	POSAdverb:       "adverb",
	POSInfinitive:   "infinitive marker",
	POSInterjection: "interjection",
	POSVerb:         "verb",
	POSNegative:     "negative particle",
}

// AllPartsOfSpeech returns every valid code in legend order.
func AllPartsOfSpeech() []PartOfSpeech {
	out := make([]PartOfSpeech, len(allPOS))
	copy(out, allPOS)
	return out
}

// Valid reports whether p is one of the known one-letter codes.
func (p PartOfSpeech) Valid() bool {
	_, ok := posNames[p]
	return ok
}

// Describe returns the human-readable word class for p, or "unknown".
func (p PartOfSpeech) Describe() string {
	if name, ok := posNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePartOfSpeech normalizes and validates a raw code from input.
func ParsePartOfSpeech(raw string) (PartOfSpeech, error) {
	p := PartOfSpeech(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown part-of-speech code %q", raw)
	}
	return p, nil
}

// LemmaEntry is one row of the input word list: a lemma paired with
// its primary part of speech. Immutable once loaded.
type LemmaEntry struct {
	Lemma string
	POS   PartOfSpeech
}

// Key returns the natural key string used in logs and error messages.
func (e LemmaEntry) Key() string {
	return e.Lemma + "/" + string(e.POS)
}

// WordForm is an inflected surface form of a lemma together with a
// free-text tag describing its grammatical role (e.g. "past tense").
type WordForm struct {
	Form string
	Tag  string
}

// Entry is one sense group reported by the model: a part of speech
// with its definitions, synonyms, and antonyms. Slice order follows
// the model's common-usage ordering and is preserved end to end.
type Entry struct {
	PartOfSpeech PartOfSpeech
	Definitions  []string
	Synonyms     []string
	Antonyms     []string
}

// DictionaryRecord aggregates everything known about one lemma. It is
// the unit returned by a single enrichment call and persisted
// atomically by the storage layer.
type DictionaryRecord struct {
	Lemma     string
	POS       PartOfSpeech
	WordForms []WordForm
	Entries   []Entry
}

// Validate checks the record invariants: a non-empty lemma with a
// valid code, at least one entry, and every entry carrying a valid
// code and at least one definition. Word forms may be empty; many
// word classes do not inflect.
func (r *DictionaryRecord) Validate() error {
	if strings.TrimSpace(r.Lemma) == "" {
		return fmt.Errorf("record has empty lemma")
	}
	if !r.POS.Valid() {
		return fmt.Errorf("record %q: invalid part-of-speech code %q", r.Lemma, r.POS)
	}
	if len(r.Entries) == 0 {
		return fmt.Errorf("record %q: no entries", r.Lemma)
	}
	for i, entry := range r.Entries {
		if !entry.PartOfSpeech.Valid() {
			return fmt.Errorf("record %q: entry %d has invalid part-of-speech code %q", r.Lemma, i, entry.PartOfSpeech)
		}
		if len(entry.Definitions) == 0 {
			return fmt.Errorf("record %q: entry %d (%s) has no definitions", r.Lemma, i, entry.PartOfSpeech.Describe())
		}
	}
	for i, wf := range r.WordForms {
		if strings.TrimSpace(wf.Form) == "" {
			return fmt.Errorf("record %q: word form %d is empty", r.Lemma, i)
		}
	}
	return nil
}
