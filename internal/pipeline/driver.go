// Package pipeline runs the sequential lemma enrichment batch:
// load → enrich → persist, one lemma at a time.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lexistack/lexibuild/internal/storage"
	"github.com/lexistack/lexibuild/internal/types"
	"github.com/lexistack/lexibuild/internal/ui"
)

// Enricher produces one DictionaryRecord per lemma. Implemented by
// enrich.Client; tests substitute fakes.
type Enricher interface {
	Lookup(ctx context.Context, entry types.LemmaEntry) (*types.DictionaryRecord, error)
}

// State tracks one lemma through the batch.
type State string

const (
	StatePending   State = "pending"
	StateEnriching State = "enriching"
	StatePersisted State = "persisted"
	StateFailed    State = "failed"
)

// Result is the terminal outcome for one lemma.
type Result struct {
	Entry types.LemmaEntry
	State State
	Err   error
}

// Summary aggregates a batch run. Skipped counts entries left pending
// by cancellation.
type Summary struct {
	Processed int
	Failed    int
	Skipped   int
	Results   []Result
}

// Runner drives the batch. Entries are processed strictly
// sequentially; a per-lemma failure is recorded and the batch
// continues, so one bad lemma never aborts the run.
type Runner struct {
	Enricher Enricher
	Store    storage.Store

	// Out receives per-lemma progress lines; defaults to stdout.
	Out io.Writer
	// Log, when set, mirrors progress into the persistent run log.
	Log *log.Logger
}

// Run processes every entry in order. Cancellation stops between
// lemmas: completed records stay committed and the remainder is
// counted as skipped. The returned error is non-nil only for
// cancellation; per-lemma failures live in the Summary.
func (r *Runner) Run(ctx context.Context, entries []types.LemmaEntry) (*Summary, error) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	summary := &Summary{}
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			summary.Skipped = len(entries) - i
			r.logf("run interrupted, %d lemmas left pending", summary.Skipped)
			return summary, err
		}

		fmt.Fprintf(out, "→ [%d/%d] %s (%s)\n", i+1, len(entries), entry.Lemma, entry.POS.Describe())

		result := r.processOne(ctx, entry)
		summary.Results = append(summary.Results, result)

		switch result.State {
		case StatePersisted:
			summary.Processed++
			fmt.Fprintf(out, "  %s persisted %s\n", ui.RenderPass("✓"), entry.Key())
			r.logf("persisted %s", entry.Key())
		case StateFailed:
			// Cancellation mid-lookup is an interrupt, not a lemma failure.
			if ctx.Err() != nil {
				summary.Results = summary.Results[:len(summary.Results)-1]
				summary.Skipped = len(entries) - i
				r.logf("run interrupted, %d lemmas left pending", summary.Skipped)
				return summary, ctx.Err()
			}
			summary.Failed++
			fmt.Fprintf(out, "  %s failed %s: %v\n", ui.RenderFail("✗"), entry.Key(), result.Err)
			r.logf("failed %s: %v", entry.Key(), result.Err)
		}
	}

	fmt.Fprintf(out, "Done: %d persisted, %d failed.\n", summary.Processed, summary.Failed)
	r.logf("run complete: %d persisted, %d failed", summary.Processed, summary.Failed)
	return summary, nil
}

func (r *Runner) processOne(ctx context.Context, entry types.LemmaEntry) Result {
	result := Result{Entry: entry, State: StateEnriching}

	record, err := r.Enricher.Lookup(ctx, entry)
	if err != nil {
		result.State = StateFailed
		result.Err = fmt.Errorf("enrichment: %w", err)
		return result
	}

	if err := r.Store.SaveRecord(ctx, record); err != nil {
		result.State = StateFailed
		result.Err = fmt.Errorf("persistence: %w", err)
		return result
	}

	result.State = StatePersisted
	return result
}

func (r *Runner) logf(format string, args ...interface{}) {
	if r.Log != nil {
		r.Log.Printf(format, args...)
	}
}
