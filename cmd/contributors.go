package cmd

import (
	"github.com/amritasroy/gitvalue/core"
	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/spf13/cobra"
)

// contributorsCmd performs the per-contributor scoring analysis.
var contributorsCmd = &cobra.Command{
	Use:   "contributors [repo-path]",
	Short: "Score contributors by quality, difficulty and value.",
	Long: `Analyze commit history and score each contributor from 0 to 100 on three axes:

- Quality: churn efficiency combined with commit message quality
- Difficulty: breadth of files, structural complexity and volume of changes
- Value: net contribution and commit frequency, adjusted by quality

Each contributor also gets a categorical work-style label (e.g. "High-impact
contributor", "Maintenance contributor") derived from their scores.

Examples:
  # Score the last month of the current repository
  gitvalue contributors

  # Score the last six months of another repository, sorted by quality
  gitvalue contributors /path/to/repo --months 6 --sort-by quality

  # Full history, detailed per-author breakdown
  gitvalue contributors --months 0 --format detailed

  # Export scores for tracking
  gitvalue contributors --output csv --output-file scores.csv
  gitvalue contributors --output parquet --output-file scores.parquet

  # Track runs in a local SQLite database
  gitvalue contributors --history-backend sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteContributors(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("Cannot run contributor analysis", err)
		}
	},
}
