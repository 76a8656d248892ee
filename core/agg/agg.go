// Package agg has aggregation logic for per-commit stats and per-author totals.
package agg

import (
	"strings"

	"github.com/amritasroy/gitvalue/schema"
)

// Complexity increments per file. Small, focused commits (1-3 files) earn an
// extra point per file; the file count is fixed before per-file iteration,
// matching the reference behavior.
const (
	coreLanguageWeight   = 2
	structuredDataWeight = 1
	focusedCommitBonus   = 1
	focusedCommitMax     = 3
)

// defaultMessageQuality is the defensive average for an author whose quality
// list came up empty; it should not occur when commit_count > 0.
const defaultMessageQuality = 0.5

// ExtractCommitStats converts one commit's diff set into raw counts.
// A commit whose diff could not be computed yields all-zero stats; one
// malformed commit must never poison the whole report.
func ExtractCommitStats(commit *schema.CommitRecord) schema.CommitStats {
	if commit.DiffErr != nil {
		return schema.CommitStats{}
	}

	stats := schema.CommitStats{FilesModified: len(commit.Diffs)}

	for i := range commit.Diffs {
		d := &commit.Diffs[i]
		stats.LinesAdded += countAddedLines(d.Added)
		stats.LinesDeleted += d.Removed

		if _, ok := schema.CoreLanguageExts[d.Ext]; ok {
			stats.ComplexityScore += coreLanguageWeight
		} else if _, ok := schema.StructuredDataExts[d.Ext]; ok {
			stats.ComplexityScore += structuredDataWeight
		}

		if stats.FilesModified >= 1 && stats.FilesModified <= focusedCommitMax {
			stats.ComplexityScore += focusedCommitBonus
		}
	}

	return stats
}

// countAddedLines counts added lines by the diff marker convention,
// ignoring file-header lines.
func countAddedLines(added string) int {
	if added == "" {
		return 0
	}
	count := 0
	for _, line := range strings.Split(added, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			count++
		}
	}
	return count
}

// accumulator collects one author's running totals during the aggregation
// pass. It is owned exclusively by the Aggregator; the message-quality list
// is consumed and discarded at finalization.
type accumulator struct {
	commitCount      int
	linesAdded       int
	linesDeleted     int
	filesModified    int
	complexityScore  int
	messageQualities []float64
}

// AuthorTotals pairs an author's display name with their finalized totals.
type AuthorTotals struct {
	Author string
	Stats  schema.AuthorStats
}

// Aggregator accumulates commit stats per author across a single analysis
// pass. Authors are keyed by exact display-name equality; no identity
// merging across name variants is attempted (a known limitation). Insertion
// order is preserved so pre-sort output is stable.
type Aggregator struct {
	order []string
	accs  map[string]*accumulator
}

// NewAggregator creates an empty aggregator for one analysis pass.
func NewAggregator() *Aggregator {
	return &Aggregator{accs: make(map[string]*accumulator)}
}

// AddCommit folds one commit's stats and message quality into the author's
// accumulator, creating it on first sight.
func (a *Aggregator) AddCommit(author string, stats schema.CommitStats, messageQuality float64) {
	acc, ok := a.accs[author]
	if !ok {
		acc = &accumulator{}
		a.accs[author] = acc
		a.order = append(a.order, author)
	}

	acc.commitCount++
	acc.linesAdded += stats.LinesAdded
	acc.linesDeleted += stats.LinesDeleted
	acc.filesModified += stats.FilesModified
	acc.complexityScore += stats.ComplexityScore
	acc.messageQualities = append(acc.messageQualities, messageQuality)
}

// Len returns the number of distinct authors seen so far.
func (a *Aggregator) Len() int {
	return len(a.order)
}

// Finalize averages each author's message qualities and returns totals in
// insertion order. It is called exactly once, at the end of the pass.
func (a *Aggregator) Finalize() []AuthorTotals {
	totals := make([]AuthorTotals, 0, len(a.order))
	for _, author := range a.order {
		acc := a.accs[author]
		totals = append(totals, AuthorTotals{
			Author: author,
			Stats: schema.AuthorStats{
				CommitCount:       acc.commitCount,
				LinesAdded:        acc.linesAdded,
				LinesDeleted:      acc.linesDeleted,
				FilesModified:     acc.filesModified,
				ComplexityScore:   acc.complexityScore,
				AvgMessageQuality: meanQuality(acc.messageQualities),
			},
		})
		acc.messageQualities = nil
	}
	return totals
}

func meanQuality(qualities []float64) float64 {
	if len(qualities) == 0 {
		return defaultMessageQuality
	}
	var sum float64
	for _, q := range qualities {
		sum += q
	}
	return sum / float64(len(qualities))
}
