package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aflsquad/statpatch/internal/infrastructure/repository/jsonstore"
	"github.com/aflsquad/statpatch/internal/usecase"
)

var verifyWorkers int

// verifyCmd dry-runs many correction files in parallel.
var verifyCmd = &cobra.Command{
	Use:   "verify <corrections.json>...",
	Short: "Dry-run correction files against the player store in parallel",
	Long: `Verify matches every file against the current player store without
writing anything, fanning the batches out across a worker pool. Use it
to vet a season's worth of correction files after a feed import.

The command exits non-zero when any batch has a correction that does
not resolve.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().IntVar(&verifyWorkers, "workers", 0, "Worker pool size (default: VERIFY_MAX_WORKERS)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	env, err := buildEnv()
	if err != nil {
		return err
	}

	batches := make([]usecase.CorrectionBatch, 0, len(args))
	for _, path := range args {
		corrections, err := jsonstore.LoadCorrections(path)
		if err != nil {
			return fmt.Errorf("load corrections %s: %w", path, err)
		}
		batches = append(batches, usecase.CorrectionBatch{
			Label:       filepath.Base(path),
			Corrections: corrections,
		})
	}

	workers := verifyWorkers
	if workers <= 0 {
		workers = env.cfg.VerifyMaxWorkers
	}

	result, err := env.reconcileService.Verify(cmd.Context(), usecase.VerifyInput{
		Batches:    batches,
		MaxWorkers: workers,
	})
	if err != nil {
		return err
	}

	if err := printJSON(result); err != nil {
		return err
	}
	if result.FlaggedCount > 0 {
		return fmt.Errorf("%d of %d batches flagged", result.FlaggedCount, result.BatchCount)
	}
	return nil
}
