package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/lexistack/lexibuild/internal/config"
	"github.com/lexistack/lexibuild/internal/enrich"
	"github.com/lexistack/lexibuild/internal/pipeline"
	"github.com/lexistack/lexibuild/internal/source"
	"github.com/lexistack/lexibuild/internal/storage/sqlite"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Enrich lemmas and persist them to the database",
	Long: `Read (lemma, part-of-speech) pairs from the input TSV, look each
one up with the language model, and save the results.

A lemma that fails enrichment or persistence is reported and skipped;
the batch continues. Re-running replaces previously stored records
in place, so interrupted runs can simply be restarted.

Examples:
  lexibuild build                            # lemmas.tsv -> dictionary.db
  lexibuild build --input nouns.tsv --limit 20
  lexibuild build --model claude-3-5-haiku-20241022
  lexibuild build --dry-run                  # list lemmas, no API calls
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := resolveString(cmd, "input")
		dbPath := resolveString(cmd, "db")
		model := resolveString(cmd, "model")
		logFile := resolveString(cmd, "log-file")
		limit := resolveInt(cmd, "limit")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		entries, err := source.Load(input, limit)
		if err != nil {
			return fmt.Errorf("loading %s: %w", input, err)
		}
		if len(entries) == 0 {
			fmt.Println("No lemmas to process.")
			return nil
		}

		if dryRun {
			fmt.Printf("Would process %d lemmas from %s into %s:\n", len(entries), input, dbPath)
			for _, e := range entries {
				fmt.Printf("  %s (%s)\n", e.Lemma, e.POS.Describe())
			}
			return nil
		}

		// Acquire exclusive lock to prevent concurrent builds against
		// the same database.
		lock := flock.New(dbPath + ".lock")
		locked, err := lock.TryLock()
		if err != nil {
			return fmt.Errorf("acquiring build lock: %w", err)
		}
		if !locked {
			return fmt.Errorf("another build is already writing to %s", dbPath)
		}
		defer func() { _ = lock.Unlock() }()

		client, err := enrich.NewClient(config.GetString("api-key"), model)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		store, err := sqlite.New(ctx, dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		var runLog *log.Logger
		if logFile != "" {
			runLog = log.New(&lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
			}, "", log.LstdFlags)
		}

		runner := &pipeline.Runner{
			Enricher: client,
			Store:    store,
			Out:      os.Stdout,
			Log:      runLog,
		}
		summary, runErr := runner.Run(ctx, entries)

		if summary.Processed > 0 {
			stamp := time.Now().UTC().Format(time.RFC3339)
			if err := store.SetMetadata(ctx, "last_run", stamp); err != nil {
				return fmt.Errorf("recording run timestamp: %w", err)
			}
		}
		if runErr != nil {
			return fmt.Errorf("build interrupted: %w", runErr)
		}

		// Per-lemma failures are reported in the summary; only setup
		// faults and interrupts make the command itself fail.
		return nil
	},
}

// resolveString returns the flag value when explicitly set, otherwise
// the config/env/default value for the same key.
func resolveString(cmd *cobra.Command, key string) string {
	if cmd.Flags().Changed(key) {
		v, _ := cmd.Flags().GetString(key)
		return v
	}
	return config.GetString(key)
}

func resolveInt(cmd *cobra.Command, key string) int {
	if cmd.Flags().Changed(key) {
		v, _ := cmd.Flags().GetInt(key)
		return v
	}
	return config.GetInt(key)
}

func init() {
	buildCmd.Flags().String("input", "lemmas.tsv", "TSV file of (lemma, part-of-speech) pairs")
	buildCmd.Flags().String("db", "dictionary.db", "SQLite database path")
	buildCmd.Flags().Int("limit", source.DefaultLimit, "maximum number of lemmas to process")
	buildCmd.Flags().String("model", "", "model to query (default "+enrich.DefaultModel+")")
	buildCmd.Flags().String("log-file", "", "append run progress to this rotating log file")
	buildCmd.Flags().Bool("dry-run", false, "list the lemmas that would be processed without calling the API")
	rootCmd.AddCommand(buildCmd)
}
