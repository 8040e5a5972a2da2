package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexistack/lexibuild/internal/storage/sqlite"
	"github.com/lexistack/lexibuild/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database row counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dbPath := resolveString(cmd, "db")

		store, err := sqlite.New(ctx, dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		stats, err := store.Stats(ctx)
		if err != nil {
			return err
		}

		fmt.Println(ui.RenderStats(stats, store.Path(), ui.GetWidth()))

		if lastRun, err := store.GetMetadata(ctx, "last_run"); err == nil && lastRun != "" {
			fmt.Printf("Last build: %s\n", lastRun)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("db", "dictionary.db", "SQLite database path")
	rootCmd.AddCommand(statsCmd)
}
