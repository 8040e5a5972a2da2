// lexibuild builds an offline dictionary database from a list of
// lemmas by querying a language model and storing the results in
// SQLite.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lexistack/lexibuild/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "lexibuild",
	Short: "Build a dictionary database from a lemma list",
	Long: `lexibuild reads (lemma, part-of-speech) pairs from a TSV file,
queries a language model for each lemma's word forms, definitions,
synonyms, and antonyms, and persists the results to a SQLite database.

Configuration comes from flags, LEXI_* environment variables, or a
lexibuild.yaml file (current directory, then the user config
directory), in that order of precedence.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Initialize()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
