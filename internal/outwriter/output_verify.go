package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/amritasroy/gitvalue/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const shortHashLen = 8

// writeVerificationTextResults renders the human-readable verification view
// with a trailing mismatch recap.
func writeVerificationTextResults(results []schema.VerificationResult, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if len(results) == 0 {
			_, err := fmt.Fprintf(w, "ℹ️  No commits found %s.\n", timePeriodText(cfg.Months))
			return err
		}

		if cfg.Format == schema.DetailedFormat {
			if err := writeVerificationDetailed(w, results); err != nil {
				return err
			}
		} else {
			if err := writeVerificationTable(w, results, cfg); err != nil {
				return err
			}
		}

		mismatches := 0
		for i := range results {
			if results[i].Match.MismatchWarning != "" {
				mismatches++
			}
		}
		_, err := fmt.Fprintf(w, "\nChecked %d commits, %d mismatch warnings. Completed in %v\n",
			len(results), mismatches, duration.Round(time.Millisecond))
		return err
	}, "Wrote table")
}

// writeVerificationTable generates the compact verification grid.
func writeVerificationTable(w io.Writer, results []schema.VerificationResult, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "🔎 Commit Message Verification %s:\n\n", timePeriodText(cfg.Months)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Hash", "Author", "Message", "Keywords", "Change", "Match", "Warn"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	msgWidth := getMaxMessageWidth(cfg)
	var data [][]string
	for i := range results {
		r := &results[i]
		warn := ""
		if r.Match.MismatchWarning != "" {
			warn = "⚠️"
		}
		data = append(data, []string{
			shortHash(r.Hash),
			r.Author,
			truncateText(firstLine(r.Message), msgWidth),
			strings.Join(r.Match.DetectedKeywords, ","),
			r.Match.ActualChanges,
			fmt.Sprintf("%.2f", r.Match.MatchScore),
			warn,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeVerificationDetailed generates the per-commit breakdown view,
// including the impact profile of each commit's added lines.
func writeVerificationDetailed(w io.Writer, results []schema.VerificationResult) error {
	fmt.Fprintln(w, "🔎 Commit Message Verification - Detailed View:")
	fmt.Fprintln(w)

	for i := range results {
		r := &results[i]
		fmt.Fprintln(w, separatorLine)
		fmt.Fprintf(w, "%d. %s by %s\n", i+1, shortHash(r.Hash), r.Author)
		fmt.Fprintln(w, separatorLine)
		fmt.Fprintf(w, "  Message: %s\n", firstLine(r.Message))
		fmt.Fprintf(w, "  Detected Keywords: %s\n", strings.Join(r.Match.DetectedKeywords, ", "))
		fmt.Fprintf(w, "  Actual Changes: %s\n", r.Match.ActualChanges)
		fmt.Fprintf(w, "  Match Score: %.2f\n", r.Match.MatchScore)
		if r.Match.MismatchWarning != "" {
			fmt.Fprintf(w, "  ⚠️  %s\n", r.Match.MismatchWarning)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Impact Profile:")
		fmt.Fprintf(w, "     • Logical Impact: %.1f%%\n", r.Impact.LogicalImpact*100)
		fmt.Fprintf(w, "     • Comment Ratio: %.1f%%\n", r.Impact.CommentRatio*100)
		fmt.Fprintf(w, "     • Print/Debug Ratio: %.1f%%\n", r.Impact.PrintDebugRatio*100)
		fmt.Fprintf(w, "     • Meaningful Score: %.1f%%\n", r.Impact.MeaningfulScore*100)
		fmt.Fprintln(w)
	}
	return nil
}

// writeVerificationCSVResults writes verification results in CSV format.
func writeVerificationCSVResults(results []schema.VerificationResult, cfg *contract.Config) error {
	header := []string{
		"hash",
		"author",
		"message",
		"detected_keywords",
		"actual_changes",
		"match_score",
		"mismatch_warning",
		"logical_impact",
		"comment_ratio",
		"print_debug_ratio",
		"meaningful_score",
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for i := range results {
				r := &results[i]
				rec := []string{
					r.Hash,
					r.Author,
					firstLine(r.Message),
					strings.Join(r.Match.DetectedKeywords, "|"),
					r.Match.ActualChanges,
					fmt.Sprintf("%.3f", r.Match.MatchScore),
					r.Match.MismatchWarning,
					fmt.Sprintf("%.3f", r.Impact.LogicalImpact),
					fmt.Sprintf("%.3f", r.Impact.CommentRatio),
					fmt.Sprintf("%.3f", r.Impact.PrintDebugRatio),
					fmt.Sprintf("%.3f", r.Impact.MeaningfulScore),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeVerificationJSONResults writes verification results in JSON format.
func writeVerificationJSONResults(results []schema.VerificationResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, results)
	}, "Wrote JSON")
}

// shortHash abbreviates a full commit hash for display.
func shortHash(hash string) string {
	if len(hash) > shortHashLen {
		return hash[:shortHashLen]
	}
	return hash
}

// firstLine returns the subject line of a commit message.
func firstLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		return message[:idx]
	}
	return message
}
