package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/amritasroy/gitvalue/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeContributorTextResults renders the human-readable view, either the
// compact table or the detailed per-author breakdown, plus the summary.
func writeContributorTextResults(results []schema.ContributorResult, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if len(results) == 0 {
			period := timePeriodText(cfg.Months)
			if cfg.Months == 0 {
				_, err := fmt.Fprintln(w, "ℹ️  No commits found in the repository.")
				return err
			}
			_, err := fmt.Fprintf(w, "ℹ️  No commits found %s.\n", period)
			return err
		}

		if cfg.Format == schema.DetailedFormat {
			if err := writeContributorDetailed(w, results, cfg); err != nil {
				return err
			}
		} else {
			if err := writeContributorTable(w, results, cfg); err != nil {
				return err
			}
		}
		return writeContributorSummary(w, results, cfg, duration)
	}, "Wrote table")
}

// writeContributorTable generates the compact grid view.
func writeContributorTable(w io.Writer, results []schema.ContributorResult, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "📊 Contributors %s:\n\n", timePeriodText(cfg.Months)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Author", "Commits", "Lines +", "Lines -", "Files", "Quality", "Difficulty", "Value", "Label", "Work Style"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, r := range results {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			r.Author,
			strconv.Itoa(r.CommitCount),
			strconv.Itoa(r.LinesAdded),
			strconv.Itoa(r.LinesDeleted),
			strconv.Itoa(r.FilesModified),
			fmt.Sprintf("%.1f", r.QualityScore),
			fmt.Sprintf("%.1f", r.DifficultyScore),
			fmt.Sprintf("%.1f", r.ValueScore),
			scoreLabel(cfg, r.ValueScore),
			r.WorkStyle,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeContributorDetailed generates the per-author breakdown view.
func writeContributorDetailed(w io.Writer, results []schema.ContributorResult, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "👥 Contributors %s - Detailed View:\n\n", timePeriodText(cfg.Months)); err != nil {
		return err
	}

	for i := range results {
		r := &results[i]
		fmt.Fprintln(w, separatorLine)
		fmt.Fprintf(w, "%d. %s\n", i+1, r.Author)
		fmt.Fprintln(w, separatorLine)
		fmt.Fprintln(w, "  📈 Activity Metrics:")
		fmt.Fprintf(w, "     • Commits: %d\n", r.CommitCount)
		fmt.Fprintf(w, "     • Lines Added: %d\n", r.LinesAdded)
		fmt.Fprintf(w, "     • Lines Deleted: %d\n", r.LinesDeleted)
		fmt.Fprintf(w, "     • Files Modified: %d\n", r.FilesModified)
		fmt.Fprintf(w, "     • Net Contribution: %d lines\n", r.NetLines())
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  🎯 Performance Scores:")
		fmt.Fprintf(w, "     • Quality Score: %.2f/100\n", r.QualityScore)
		fmt.Fprintf(w, "     • Difficulty Score: %.2f/100\n", r.DifficultyScore)
		fmt.Fprintf(w, "     • Value Score: %.2f/100 [%s]\n", r.ValueScore, scoreLabel(cfg, r.ValueScore))
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  💼 Work Style: %s\n", r.WorkStyle)
		fmt.Fprintln(w)
	}
	return nil
}

const separatorLine = "================================================================================"

// writeContributorSummary appends the repository-wide totals block.
func writeContributorSummary(w io.Writer, results []schema.ContributorResult, cfg *contract.Config, duration time.Duration) error {
	s := schema.Summarize(results)

	fmt.Fprintln(w)
	fmt.Fprintln(w, separatorLine)
	fmt.Fprintf(w, "📋 OVERALL SUMMARY %s\n", timePeriodText(cfg.Months))
	fmt.Fprintln(w, separatorLine)
	fmt.Fprintf(w, "  Total Contributors: %d\n", s.Contributors)
	fmt.Fprintf(w, "  Total Commits: %d\n", s.TotalCommits)
	fmt.Fprintf(w, "  Total Lines Added: %d\n", s.LinesAdded)
	fmt.Fprintf(w, "  Total Lines Deleted: %d\n", s.LinesDeleted)
	fmt.Fprintf(w, "  Net Change: %d lines\n", s.LinesAdded-s.LinesDeleted)
	fmt.Fprintf(w, "  Total Files Modified: %d\n", s.FilesModified)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Average Quality Score: %.2f/100\n", s.AvgQuality)
	fmt.Fprintf(w, "  Average Difficulty Score: %.2f/100\n", s.AvgDifficulty)
	fmt.Fprintf(w, "  Average Value Score: %.2f/100\n", s.AvgValue)
	fmt.Fprintln(w, separatorLine)
	_, err := fmt.Fprintf(w, "Analysis completed in %v. History backend: %s\n", duration.Round(time.Millisecond), cfg.HistoryBackend)
	return err
}

// writeContributorCSVResults writes the scored results in CSV format.
func writeContributorCSVResults(results []schema.ContributorResult, cfg *contract.Config) error {
	header := []string{
		"rank",
		"author",
		"commits",
		"lines_added",
		"lines_deleted",
		"files_modified",
		"complexity_score",
		"quality_score",
		"difficulty_score",
		"value_score",
		"label",
		"work_style",
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for i, r := range results {
				rec := []string{
					strconv.Itoa(i + 1),
					r.Author,
					strconv.Itoa(r.CommitCount),
					strconv.Itoa(r.LinesAdded),
					strconv.Itoa(r.LinesDeleted),
					strconv.Itoa(r.FilesModified),
					strconv.Itoa(r.ComplexityScore),
					fmt.Sprintf("%.2f", r.QualityScore),
					fmt.Sprintf("%.2f", r.DifficultyScore),
					fmt.Sprintf("%.2f", r.ValueScore),
					contract.GetPlainLabel(r.ValueScore),
					r.WorkStyle,
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeContributorJSONResults writes the scored results in JSON format.
func writeContributorJSONResults(results []schema.ContributorResult, cfg *contract.Config) error {
	type jsonContributorResult struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.ContributorResult
	}

	output := make([]jsonContributorResult, len(results))
	for i, r := range results {
		output[i] = jsonContributorResult{
			Rank:              i + 1,
			Label:             contract.GetPlainLabel(r.ValueScore),
			ContributorResult: r,
		}
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, output)
	}, "Wrote JSON")
}
