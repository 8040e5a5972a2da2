package pipeline

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lexistack/lexibuild/internal/storage"
	"github.com/lexistack/lexibuild/internal/storage/sqlite"
	"github.com/lexistack/lexibuild/internal/types"
)

type fakeEnricher struct {
	calls []types.LemmaEntry
	fail  map[string]error
	hook  func(entry types.LemmaEntry)
}

func (f *fakeEnricher) Lookup(ctx context.Context, entry types.LemmaEntry) (*types.DictionaryRecord, error) {
	f.calls = append(f.calls, entry)
	if f.hook != nil {
		f.hook(entry)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := f.fail[entry.Lemma]; ok {
		return nil, err
	}
	return &types.DictionaryRecord{
		Lemma: entry.Lemma,
		POS:   entry.POS,
		WordForms: []types.WordForm{
			{Form: entry.Lemma + "s", Tag: "plural"},
		},
		Entries: []types.Entry{
			{
				PartOfSpeech: entry.POS,
				Definitions:  []string{"a definition of " + entry.Lemma},
				Synonyms:     []string{"syn-" + entry.Lemma},
			},
		},
	}, nil
}

func newRunner(t *testing.T) (*Runner, *fakeEnricher, storage.Store, *bytes.Buffer) {
	t.Helper()

	store := newTestStore(t)
	enricher := &fakeEnricher{fail: map[string]error{}}
	var out bytes.Buffer
	return &Runner{Enricher: enricher, Store: store, Out: &out}, enricher, store, &out
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(context.Background(), t.TempDir()+"/pipeline.db")
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func batch(lemmas ...string) []types.LemmaEntry {
	var entries []types.LemmaEntry
	for _, l := range lemmas {
		entries = append(entries, types.LemmaEntry{Lemma: l, POS: types.POSNoun})
	}
	return entries
}

func TestRunPersistsAll(t *testing.T) {
	runner, enricher, store, out := newRunner(t)
	ctx := context.Background()

	summary, err := runner.Run(ctx, batch("house", "tree", "river"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.Processed != 3 || summary.Failed != 0 || summary.Skipped != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if len(enricher.calls) != 3 {
		t.Errorf("expected 3 lookups, got %d", len(enricher.calls))
	}
	if enricher.calls[0].Lemma != "house" {
		t.Errorf("entries should be processed in order, got %v first", enricher.calls[0])
	}

	rec, err := store.GetRecord(ctx, "tree", types.POSNoun)
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if len(rec.Entries) != 1 {
		t.Errorf("expected 1 entry for tree, got %d", len(rec.Entries))
	}

	if !strings.Contains(out.String(), "3 persisted, 0 failed") {
		t.Errorf("summary line missing from output: %q", out.String())
	}
}

func TestRunContinuesPastFailures(t *testing.T) {
	runner, enricher, store, out := newRunner(t)
	enricher.fail["tree"] = errors.New("model unavailable")
	ctx := context.Background()

	summary, err := runner.Run(ctx, batch("house", "tree", "river"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.Processed != 2 || summary.Failed != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if len(summary.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(summary.Results))
	}
	if summary.Results[1].State != StateFailed {
		t.Errorf("tree should be failed: %+v", summary.Results[1])
	}
	if summary.Results[2].State != StatePersisted {
		t.Errorf("batch should continue past a failure: %+v", summary.Results[2])
	}

	if _, err := store.GetRecord(ctx, "river", types.POSNoun); err != nil {
		t.Errorf("river should be persisted despite tree failing: %v", err)
	}
	if _, err := store.GetRecord(ctx, "tree", types.POSNoun); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("tree should not be persisted, got %v", err)
	}

	if !strings.Contains(out.String(), "model unavailable") {
		t.Errorf("failure reason should be logged: %q", out.String())
	}
}

func TestRunStopsOnCancellation(t *testing.T) {
	runner, enricher, store, _ := newRunner(t)
	ctx, cancel := context.WithCancel(context.Background())

	// Cancel while the second lemma is being enriched.
	enricher.hook = func(entry types.LemmaEntry) {
		if entry.Lemma == "tree" {
			cancel()
		}
	}

	summary, err := runner.Run(ctx, batch("house", "tree", "river"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if summary.Processed != 1 {
		t.Errorf("expected 1 persisted before interrupt, got %d", summary.Processed)
	}
	if summary.Failed != 0 {
		t.Errorf("interrupt should not count as failure: %+v", summary)
	}
	if summary.Skipped != 2 {
		t.Errorf("expected 2 skipped, got %d", summary.Skipped)
	}

	if _, err := store.GetRecord(context.Background(), "house", types.POSNoun); err != nil {
		t.Errorf("completed work should stay committed: %v", err)
	}
	if _, err := store.GetRecord(context.Background(), "river", types.POSNoun); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("river should be left pending, got %v", err)
	}
}

func TestRerunProducesNoDuplicates(t *testing.T) {
	runner, _, store, _ := newRunner(t)
	ctx := context.Background()

	entries := batch("house", "tree")
	if _, err := runner.Run(ctx, entries); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if _, err := runner.Run(ctx, entries); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Lemmas != 2 {
		t.Errorf("re-run should not duplicate lemmas, got %d", stats.Lemmas)
	}
	if stats.Entries != 2 {
		t.Errorf("re-run should not duplicate entries, got %d", stats.Entries)
	}
}

func TestRunEmptyBatch(t *testing.T) {
	runner, _, _, out := newRunner(t)

	summary, err := runner.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Processed != 0 || summary.Failed != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if !strings.Contains(out.String(), "0 persisted") {
		t.Errorf("summary line should still print: %q", out.String())
	}
}

func TestRunPersistenceFailureIsIsolated(t *testing.T) {
	// Closing the store makes every SaveRecord fail while lookups succeed.
	brokenStore := newTestStore(t)
	brokenStore.Close()

	enricher := &fakeEnricher{fail: map[string]error{}}
	var out bytes.Buffer
	runner := &Runner{Enricher: enricher, Store: brokenStore, Out: &out}

	summary, err := runner.Run(context.Background(), batch("house"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Failed != 1 || summary.Processed != 0 {
		t.Errorf("persistence fault should be a per-lemma failure: %+v", summary)
	}
	if !strings.Contains(summary.Results[0].Err.Error(), "persistence") {
		t.Errorf("failure should be attributed to persistence: %v", summary.Results[0].Err)
	}
}
