package cmd

import (
	"fmt"

	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/amritasroy/gitvalue/internal/histstore"
	"github.com/amritasroy/gitvalue/internal/outwriter"
	"github.com/amritasroy/gitvalue/internal/parquet"
	"github.com/amritasroy/gitvalue/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads the minimal configuration needed for history
// operations. Unlike sharedSetup it never touches a git repository.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("history-backend")
	backend := schema.DatabaseBackend(backendStr)
	if _, ok := schema.ValidHistoryBackends[backend]; !ok {
		return fmt.Errorf("%w: unsupported history backend %q (valid: none, sqlite, mysql, postgresql)", contract.ErrInvalidOption, backendStr)
	}
	if backend == schema.NoneBackend {
		return fmt.Errorf("%w: history commands require --history-backend sqlite, mysql or postgresql", contract.ErrInvalidOption)
	}

	outputStr := viper.GetString("output")
	output := schema.OutputMode(outputStr)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("%w: unsupported output mode %q (valid: text, csv, json, parquet)", contract.ErrInvalidOption, outputStr)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = viper.GetString("history-db-connect")
	cfg.Output = output
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyCmd manages recorded analysis runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and export tracked analysis runs",
	Long: `Manage the analysis run history recorded by --history-backend.

When run tracking is enabled, every 'contributors' run stores:
- Run metadata (timestamp, configuration, duration)
- The finalized contributor scores of that run

Supported backends: SQLite, MySQL, PostgreSQL

Subcommands:
  show    - List all recorded analysis runs
  status  - Show tracking statistics and connection details
  export  - Export run history to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # List recorded runs from the default SQLite database
  gitvalue history show --history-backend sqlite

  # Export run history for DuckDB/pandas
  gitvalue history export --history-backend sqlite --output-file runs.parquet`,
}

// historyShowCmd lists all recorded runs.
var historyShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "List all recorded analysis runs",
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := histstore.Open(cfg)
		if err != nil {
			contract.LogFatal("Cannot open history store", err)
		}
		defer func() { _ = store.Close() }()

		runs, err := store.GetAllRuns()
		if err != nil {
			contract.LogFatal("Cannot read analysis runs", err)
		}
		if err := outwriter.PrintAnalysisRuns(runs, cfg); err != nil {
			contract.LogFatal("Cannot print analysis runs", err)
		}
	},
}

// historyStatusCmd shows tracking statistics.
var historyStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display run tracking statistics and connection details",
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := histstore.Open(cfg)
		if err != nil {
			contract.LogFatal("Cannot open history store", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Cannot get history status", err)
		}
		histstore.PrintHistoryStatus(status)
	},
}

// historyExportCmd exports run history to a Parquet file.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := historySetup(); err != nil {
			return err
		}
		if cfg.OutputFile == "" {
			return fmt.Errorf("%w: history export requires --output-file", contract.ErrInvalidOption)
		}
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		store, err := histstore.Open(cfg)
		if err != nil {
			contract.LogFatal("Cannot open history store", err)
		}
		defer func() { _ = store.Close() }()

		runs, err := store.GetAllRuns()
		if err != nil {
			contract.LogFatal("Cannot read analysis runs", err)
		}
		if err := parquet.WriteAnalysisRunsParquet(runs, cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot export analysis runs", err)
		}
		fmt.Printf("💾 Exported %d runs to %s\n", len(runs), cfg.OutputFile)
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run tracking store.

By default, migrates to the latest version. Use --target-version for
specific versions; 0 rolls back all migrations.

Examples:
  # Migrate to latest version (default)
  gitvalue history migrate --history-backend sqlite

  # Rollback everything
  gitvalue history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := histstore.Migrate(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
