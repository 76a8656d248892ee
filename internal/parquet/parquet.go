// Package parquet provides data structures and functions for exporting
// contributor analysis data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/amritasroy/gitvalue/schema"
	"github.com/parquet-go/parquet-go"
)

// ContributorRow is one scored contributor as exported to Parquet.
// This struct mirrors the gitvalue_contributor_scores database table.
type ContributorRow struct {
	// Rank is the 1-based position after sorting
	Rank int32 `parquet:"rank,snappy"`

	// Author is the contributor display name used as the aggregation key
	Author string `parquet:"author,snappy"`

	// CommitCount is the number of commits in the analysis window
	CommitCount int32 `parquet:"commit_count,snappy"`

	// LinesAdded and LinesDeleted are the raw line totals
	LinesAdded   int32 `parquet:"lines_added,snappy"`
	LinesDeleted int32 `parquet:"lines_deleted,snappy"`

	// FilesModified is the total file-touch count across commits
	FilesModified int32 `parquet:"files_modified,snappy"`

	// ComplexityScore is the accumulated complexity increment total
	ComplexityScore int32 `parquet:"complexity_score,snappy"`

	// QualityScore, DifficultyScore and ValueScore are the 0-100 scores
	QualityScore    float64 `parquet:"quality_score,snappy"`
	DifficultyScore float64 `parquet:"difficulty_score,snappy"`
	ValueScore      float64 `parquet:"value_score,snappy"`

	// WorkStyle is the categorical label derived from the scores
	WorkStyle string `parquet:"work_style,snappy"`

	// Label is the value tier derived from ValueScore
	Label string `parquet:"label,snappy"`
}

// AnalysisRun represents a single tracked analysis run with metadata.
// This struct mirrors the gitvalue_analysis_runs database table.
type AnalysisRun struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the analysis began (TIMESTAMP, nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the analysis completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the analysis run in milliseconds (nullable)
	RunDurationMs *int64 `parquet:"run_duration_ms,optional,snappy"`

	// TotalContributors is the number of contributors scored in this run
	TotalContributors int32 `parquet:"total_contributors,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// WriteContributorsParquet writes scored contributor results to a Parquet
// file. Rows are written in the order given, with 1-based ranks.
func WriteContributorsParquet(results []schema.ContributorResult, outputPath string) error {
	rows := make([]ContributorRow, len(results))
	for i, r := range results {
		rows[i] = ContributorRow{
			Rank:            int32(i + 1),
			Author:          r.Author,
			CommitCount:     int32(r.CommitCount),
			LinesAdded:      int32(r.LinesAdded),
			LinesDeleted:    int32(r.LinesDeleted),
			FilesModified:   int32(r.FilesModified),
			ComplexityScore: int32(r.ComplexityScore),
			QualityScore:    r.QualityScore,
			DifficultyScore: r.DifficultyScore,
			ValueScore:      r.ValueScore,
			WorkStyle:       r.WorkStyle,
			Label:           contract.GetPlainLabel(r.ValueScore),
		}
	}
	return writeParquet(rows, outputPath)
}

// WriteAnalysisRunsParquet writes tracked analysis runs to a Parquet file.
func WriteAnalysisRunsParquet(runs []schema.AnalysisRunRecord, outputPath string) error {
	rows := make([]AnalysisRun, len(runs))
	for i, r := range runs {
		row := AnalysisRun{
			RunID:             r.RunID,
			StartTime:         r.StartTime,
			EndTime:           r.EndTime,
			RunDurationMs:     r.RunDurationMs,
			TotalContributors: int32(r.TotalContributors),
		}
		if r.ConfigParams != "" {
			params := r.ConfigParams
			row.ConfigParams = &params
		}
		rows[i] = row
	}
	return writeParquet(rows, outputPath)
}

// writeParquet writes rows to outputPath, inferring the schema from the row
// struct tags.
func writeParquet[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
