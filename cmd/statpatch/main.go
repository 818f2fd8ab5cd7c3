package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aflsquad/statpatch/internal/config"
	"github.com/aflsquad/statpatch/internal/domain/reconcile"
	"github.com/aflsquad/statpatch/internal/infrastructure/repository/jsonstore"
	"github.com/aflsquad/statpatch/internal/platform/id"
	"github.com/aflsquad/statpatch/internal/platform/logging"
	"github.com/aflsquad/statpatch/internal/usecase"
)

var (
	verbose    bool
	playerPath string
	rosterPath string
	aliasPath  string

	logger *logging.Logger
)

// rootCmd is the statpatch CLI entrypoint. Every subcommand operates on
// the JSON file stores directly, without the API server running.
var rootCmd = &cobra.Command{
	Use:   "statpatch",
	Short: "Patch, import and verify AFL Fantasy player data",
	Long: `statpatch maintains the local AFL Fantasy player and roster files.

Corrections are matched against player records by name, through alias,
exact and fuzzy lookup, and merged without ever touching a record's
identity or roster placement. Every write backs up the target file
first.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logging.LevelWarn
		if verbose {
			level = logging.LevelDebug
		}
		logger = logging.NewConsole(level)
		logging.SetDefault(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// cliEnv is the service graph a subcommand runs against.
type cliEnv struct {
	cfg              config.Config
	playerStore      *jsonstore.PlayerStore
	rosterStore      *jsonstore.RosterStore
	reconcileService *usecase.ReconcileService
	importService    *usecase.ImportService
}

func buildEnv() (cliEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return cliEnv{}, fmt.Errorf("load config: %w", err)
	}
	if playerPath != "" {
		cfg.PlayerStorePath = playerPath
	}
	if rosterPath != "" {
		cfg.RosterStorePath = rosterPath
	}
	if aliasPath != "" {
		cfg.AliasTablePath = aliasPath
	}

	aliases, err := jsonstore.LoadAliasTable(cfg.AliasTablePath)
	if err != nil {
		return cliEnv{}, fmt.Errorf("load alias table: %w", err)
	}

	playerStore := jsonstore.NewPlayerStore(cfg.PlayerStorePath, logger)
	rosterStore := jsonstore.NewRosterStore(cfg.RosterStorePath, logger)

	return cliEnv{
		cfg:              cfg,
		playerStore:      playerStore,
		rosterStore:      rosterStore,
		reconcileService: usecase.NewReconcileService(playerStore, rosterStore, reconcile.NewMatcher(aliases), nil, logger),
		importService:    usecase.NewImportService(playerStore, id.NewRandomGenerator(), logger),
	}, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&playerPath, "players", "", "Player store file (default: PLAYER_STORE_PATH)")
	rootCmd.PersistentFlags().StringVar(&rosterPath, "roster", "", "Roster file (default: ROSTER_STORE_PATH)")
	rootCmd.PersistentFlags().StringVar(&aliasPath, "aliases", "", "Alias table file (default: ALIAS_TABLE_PATH)")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
