package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexistack/lexibuild/internal/storage"
	"github.com/lexistack/lexibuild/internal/storage/sqlite"
	"github.com/lexistack/lexibuild/internal/types"
	"github.com/lexistack/lexibuild/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <lemma> [pos]",
	Short: "Display a stored dictionary record",
	Long: `Display the stored word forms, definitions, synonyms, and antonyms
for a lemma. When the part-of-speech code is omitted and the lemma is
stored under several codes, every record is shown.

Examples:
  lexibuild show run      # all records for "run"
  lexibuild show run v    # only the verb record
`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lemma := args[0]
		ctx := cmd.Context()

		store, err := sqlite.New(ctx, resolveString(cmd, "db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		if len(args) == 2 {
			pos, err := types.ParsePartOfSpeech(args[1])
			if err != nil {
				return err
			}
			record, err := store.GetRecord(ctx, lemma, pos)
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("no record for %s/%s", lemma, pos)
			}
			if err != nil {
				return err
			}
			fmt.Println(ui.RenderRecord(record))
			return nil
		}

		keys, err := store.ListLemmas(ctx)
		if err != nil {
			return err
		}
		found := 0
		for _, key := range keys {
			if key.Lemma != lemma {
				continue
			}
			record, err := store.GetRecord(ctx, key.Lemma, key.POS)
			if err != nil {
				return err
			}
			fmt.Println(ui.RenderRecord(record))
			found++
		}
		if found == 0 {
			return fmt.Errorf("no records for %q", lemma)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().String("db", "dictionary.db", "SQLite database path")
	rootCmd.AddCommand(showCmd)
}
