package enrich

import (
	"strings"
	"text/template"

	"github.com/lexistack/lexibuild/internal/types"
)

var promptTemplate = template.Must(template.New("lookup").Parse(lookupPromptTemplate))

type promptData struct {
	Lemma  string
	POS    string
	Legend string
}

// renderPrompt produces the lookup prompt for one lemma. The prompt is
// deterministic: same entry, same bytes.
func renderPrompt(entry types.LemmaEntry) (string, error) {
	var b strings.Builder
	data := promptData{
		Lemma:  entry.Lemma,
		POS:    string(entry.POS),
		Legend: posLegend(),
	}
	if err := promptTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// posLegend lists every code with its word class, one per line, in the
// fixed legend order.
func posLegend() string {
	var b strings.Builder
	for i, p := range types.AllPartsOfSpeech() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(p))
		b.WriteString(": ")
		b.WriteString(p.Describe())
	}
	return b.String()
}

const lookupPromptTemplate = `You are a lexicographer's assistant that reports word forms, definitions, synonyms, and antonyms as JSON.

Provide the word forms, definitions, synonyms, and antonyms for the lemma "{{.Lemma}}" with its primary part of speech code "{{.POS}}". Use these one-letter codes for parts of speech:
{{.Legend}}

Respond with ONLY a JSON object conforming to this schema, no prose and no markdown fences:
{
  "lemma": "string",
  "word_forms": [
    {"form": "string", "tag": "string describing the grammatical role"}
  ],
  "entries": [
    {
      "part_of_speech": "single-letter-code",
      "definitions": ["string"],
      "synonyms": ["string"],
      "antonyms": ["string"]
    }
  ]
}

Include every inflected form of the lemma in "word_forms" (e.g. for "run": "run", "runs", "running", "ran"), each with a short grammatical tag. Order entries by common usage, listing "{{.POS}}" first when applicable; within each entry, order definitions, synonyms, and antonyms by common usage. Use empty arrays when a list does not apply, but every entry must carry at least one definition.`
