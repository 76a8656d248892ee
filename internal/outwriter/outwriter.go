// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"os"
	"time"

	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/amritasroy/gitvalue/internal/parquet"
	"github.com/amritasroy/gitvalue/schema"
	"golang.org/x/term"
)

// PrintContributorResults outputs scored contributor results, dispatching on
// the configured output mode.
func PrintContributorResults(results []schema.ContributorResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeContributorJSONResults(results, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeContributorCSVResults(results, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteContributorsParquet(results, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
	default:
		return writeContributorTextResults(results, cfg, duration)
	}
	return nil
}

// PrintVerificationResults outputs commit verification results, dispatching
// on the configured output mode. Parquet is not supported for verification
// and has already been rejected during validation for this command.
func PrintVerificationResults(results []schema.VerificationResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeVerificationJSONResults(results, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeVerificationCSVResults(results, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeVerificationTextResults(results, cfg, duration)
	}
	return nil
}

// timePeriodText renders the analysis window for headers and summaries.
func timePeriodText(months int) string {
	switch {
	case months == 0:
		return "(All Commits)"
	case months == 1:
		return "(Last 1 Month)"
	default:
		return fmt.Sprintf("(Last %d Months)", months)
	}
}

// getTerminalWidth resolves the table width, preferring the explicit
// override, then the detected terminal size, then a conservative default
// suitable for narrow terminals and CI.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80
	}
	return detectedWidth
}

// getMaxMessageWidth calculates how much room a commit message column gets
// once the fixed verification columns are accounted for.
func getMaxMessageWidth(cfg *contract.Config) int {
	// Hash + Score + Change + Keywords columns with borders and padding.
	available := getTerminalWidth(cfg) - 60
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}

// truncateText shortens s to maxWidth runes with an ellipsis suffix.
func truncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}

// scoreLabel picks the colored or plain tier label per config.
func scoreLabel(cfg *contract.Config, score float64) string {
	if cfg.UseColors {
		return contract.GetColorLabel(score)
	}
	return contract.GetPlainLabel(score)
}
