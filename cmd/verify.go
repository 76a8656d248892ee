package cmd

import (
	"fmt"

	"github.com/amritasroy/gitvalue/core"
	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/amritasroy/gitvalue/schema"
	"github.com/spf13/cobra"
)

// verifyCmd checks commit messages against the changes they describe.
var verifyCmd = &cobra.Command{
	Use:   "verify [repo-path]",
	Short: "Check whether commit messages match their actual changes.",
	Long: `Compare each commit message against the content of its diff.

Keywords are extracted from the message (fix, feature, refactor, ...) and the
diff's added lines are classified into a primary change type. A match score
from 0 to 1 reflects how well they agree; scores below 0.4 raise a mismatch
warning. Each commit also gets an impact profile showing how much of the
change is logical code versus comments and print/debug output.

Examples:
  # Verify the last month of commits
  gitvalue verify

  # Verify with the model-backed impact analyzer
  gitvalue verify --semantic

  # Detailed per-commit breakdown, including impact profiles
  gitvalue verify --format detailed

  # Export findings for review
  gitvalue verify --output csv --output-file verify.csv`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, cmd, args); err != nil {
			return err
		}
		if cfg.Output == schema.ParquetOut {
			return fmt.Errorf("%w: parquet output is not supported for verify", contract.ErrInvalidOption)
		}
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteVerify(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("Cannot run commit verification", err)
		}
	},
}
