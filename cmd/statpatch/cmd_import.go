package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// importCmd replaces the player store from a canonical CSV feed.
var importCmd = &cobra.Command{
	Use:   "import <feed.csv>",
	Short: "Replace the player store from a canonical CSV feed",
	Long: `Import parses the feed and replaces the player store wholesale.
Records whose normalized name already exists keep their current ID, so
roster references stay valid across imports. Malformed rows are skipped
and reported; a feed with no importable rows is rejected before the
store is touched.

Required columns: name, team, position, price, breakeven.
Optional columns: avg, last3_avg, last5_avg, games, projected_score, status.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	env, err := buildEnv()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open feed: %w", err)
	}
	defer f.Close()

	report, err := env.importService.ImportCSV(cmd.Context(), f)
	if err != nil {
		return err
	}

	if err := printJSON(report); err != nil {
		return err
	}
	if report.Skipped > 0 {
		return fmt.Errorf("%d of %d rows skipped", report.Skipped, report.Total)
	}
	return nil
}
