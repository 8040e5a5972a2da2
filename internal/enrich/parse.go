package enrich

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lexistack/lexibuild/internal/types"
)

type responsePayload struct {
	Lemma     string            `json:"lemma"`
	WordForms []wordFormPayload `json:"word_forms"`
	Entries   []entryPayload    `json:"entries"`
}

type wordFormPayload struct {
	Form string `json:"form"`
	Tag  string `json:"tag"`
}

// UnmarshalJSON tolerates bare strings in the word_forms array;
// smaller models sometimes drop the {"form", "tag"} wrapper.
func (w *wordFormPayload) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		w.Form = s
		w.Tag = ""
		return nil
	}
	type plain wordFormPayload
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*w = wordFormPayload(p)
	return nil
}

type entryPayload struct {
	PartOfSpeech string   `json:"part_of_speech"`
	Definitions  []string `json:"definitions"`
	Synonyms     []string `json:"synonyms"`
	Antonyms     []string `json:"antonyms"`
}

// parseResponse decodes and validates one model response into a
// DictionaryRecord. Any shape or invariant violation is an error; the
// caller treats those as transient and retries.
func parseResponse(entry types.LemmaEntry, raw string) (*types.DictionaryRecord, error) {
	cleaned := cleanJSON(raw)

	var payload responsePayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("decoding model response: %w", err)
	}

	if !strings.EqualFold(strings.TrimSpace(payload.Lemma), entry.Lemma) {
		return nil, fmt.Errorf("response lemma %q does not match input %q", payload.Lemma, entry.Lemma)
	}

	record := &types.DictionaryRecord{
		Lemma: entry.Lemma,
		POS:   entry.POS,
	}

	for _, wf := range payload.WordForms {
		form := strings.TrimSpace(wf.Form)
		if form == "" {
			continue
		}
		record.WordForms = append(record.WordForms, types.WordForm{
			Form: form,
			Tag:  strings.TrimSpace(wf.Tag),
		})
	}

	for i, e := range payload.Entries {
		pos, err := types.ParsePartOfSpeech(e.PartOfSpeech)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		record.Entries = append(record.Entries, types.Entry{
			PartOfSpeech: pos,
			Definitions:  trimAll(e.Definitions),
			Synonyms:     trimAll(e.Synonyms),
			Antonyms:     trimAll(e.Antonyms),
		})
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// cleanJSON strips markdown code fences some models wrap around JSON
// output despite instructions.
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
