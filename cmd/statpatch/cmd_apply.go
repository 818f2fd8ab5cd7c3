package main

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/aflsquad/statpatch/internal/infrastructure/repository/jsonstore"
	"github.com/aflsquad/statpatch/internal/usecase"
)

var (
	applyTarget string
	applyDryRun bool
)

// applyCmd runs one corrections file against the player or roster store.
var applyCmd = &cobra.Command{
	Use:   "apply <corrections.json>",
	Short: "Apply a corrections file to the player or roster store",
	Long: `Apply matches each correction in the file against the target store
and merges the matched fields in place. The target file is backed up
before anything is written.

Corrections that fail to match are reported and skipped; they never
abort the batch. The command exits non-zero when any correction in the
batch did not resolve.

Example:
  statpatch apply round12_fixes.json --target players
  statpatch apply late_mail.json --target roster --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyTarget, "target", "players", "Store to patch: players or roster")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Report what would change without writing")
}

func runApply(cmd *cobra.Command, args []string) error {
	env, err := buildEnv()
	if err != nil {
		return err
	}

	corrections, err := jsonstore.LoadCorrections(args[0])
	if err != nil {
		return fmt.Errorf("load corrections: %w", err)
	}

	ctx := cmd.Context()

	var report usecase.ReconcileReport
	switch applyTarget {
	case "players":
		report, err = env.reconcileService.ApplyToPlayers(ctx, corrections, applyDryRun)
	case "roster":
		report, err = env.reconcileService.ApplyToRoster(ctx, corrections, applyDryRun)
	default:
		return fmt.Errorf("unknown target %q: want players or roster", applyTarget)
	}
	if err != nil {
		return err
	}
	report.Label = args[0]

	if err := printJSON(report); err != nil {
		return err
	}
	if !report.Clean() {
		return fmt.Errorf("%d of %d corrections did not resolve", report.Total-report.Matched, report.Total)
	}
	return nil
}

func printJSON(v any) error {
	out, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	out = append(out, '\n')
	_, err = os.Stdout.Write(out)
	return err
}
