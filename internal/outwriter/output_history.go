package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/amritasroy/gitvalue/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintAnalysisRuns prints tracked analysis runs in the configured output mode.
func PrintAnalysisRuns(runs []schema.AnalysisRunRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, runs)
		}, "Saved analysis runs")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisRunsTable(w, runs)
		}, "Saved analysis runs")
	}
}

func writeAnalysisRunsTable(w io.Writer, runs []schema.AnalysisRunRecord) error {
	if len(runs) == 0 {
		fmt.Fprintln(w, "ℹ️  No analysis runs recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "📋 ANALYSIS RUN HISTORY (%d runs)\n\n", len(runs))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Run ID", "Started", "Duration", "Contributors", "Config"})

	var data [][]string
	for _, run := range runs {
		duration := "-"
		if run.RunDurationMs != nil {
			duration = fmt.Sprintf("%dms", *run.RunDurationMs)
		}
		data = append(data, []string{
			strconv.FormatInt(run.RunID, 10),
			run.StartTime.Format("2006-01-02 15:04:05"),
			duration,
			strconv.Itoa(run.TotalContributors),
			truncateText(run.ConfigParams, 50),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
