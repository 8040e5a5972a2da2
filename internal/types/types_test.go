package types

import (
	"strings"
	"testing"
)

func TestPartOfSpeechValid(t *testing.T) {
	for _, p := range AllPartsOfSpeech() {
		if !p.Valid() {
			t.Errorf("code %q should be valid", p)
		}
		if p.Describe() == "unknown" {
			t.Errorf("code %q should have a description", p)
		}
	}

	// "z" in particular is outside the alphabet; word lists sometimes
	// carry it for stray single letters and those rows must be rejected.
	for _, raw := range []string{"z", "z9", "q", "", "nn", "N "} {
		if PartOfSpeech(raw).Valid() {
			t.Errorf("code %q should be invalid", raw)
		}
	}
}

func TestAllPartsOfSpeechCount(t *testing.T) {
	if got := len(AllPartsOfSpeech()); got != 18 {
		t.Fatalf("expected 18 codes, got %d", got)
	}
}

func TestParsePartOfSpeech(t *testing.T) {
	p, err := ParsePartOfSpeech(" V ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != POSVerb {
		t.Errorf("expected %q, got %q", POSVerb, p)
	}

	if _, err := ParsePartOfSpeech("q"); err == nil {
		t.Error("expected error for unknown code")
	}
}

func validRecord() *DictionaryRecord {
	return &DictionaryRecord{
		Lemma: "run",
		POS:   POSVerb,
		WordForms: []WordForm{
			{Form: "runs", Tag: "third-person singular"},
			{Form: "ran", Tag: "past tense"},
		},
		Entries: []Entry{
			{
				PartOfSpeech: POSVerb,
				Definitions:  []string{"move at a speed faster than a walk"},
				Synonyms:     []string{"sprint", "dash"},
				Antonyms:     []string{"walk"},
			},
		},
	}
}

func TestDictionaryRecordValidate(t *testing.T) {
	if err := validRecord().Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}
}

func TestDictionaryRecordValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DictionaryRecord)
		wantMsg string
	}{
		{
			name:    "empty lemma",
			mutate:  func(r *DictionaryRecord) { r.Lemma = "  " },
			wantMsg: "empty lemma",
		},
		{
			name:    "bad record pos",
			mutate:  func(r *DictionaryRecord) { r.POS = "q" },
			wantMsg: "invalid part-of-speech",
		},
		{
			name:    "no entries",
			mutate:  func(r *DictionaryRecord) { r.Entries = nil },
			wantMsg: "no entries",
		},
		{
			name:    "entry without definitions",
			mutate:  func(r *DictionaryRecord) { r.Entries[0].Definitions = nil },
			wantMsg: "no definitions",
		},
		{
			name:    "bad entry pos",
			mutate:  func(r *DictionaryRecord) { r.Entries[0].PartOfSpeech = "qq" },
			wantMsg: "invalid part-of-speech",
		},
		{
			name:    "blank word form",
			mutate:  func(r *DictionaryRecord) { r.WordForms[0].Form = "" },
			wantMsg: "word form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(rec)
			err := rec.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLemmaEntryKey(t *testing.T) {
	e := LemmaEntry{Lemma: "happy", POS: POSAdjective}
	if got := e.Key(); got != "happy/j" {
		t.Errorf("expected happy/j, got %q", got)
	}
}
