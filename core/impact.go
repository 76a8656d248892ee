package core

import (
	"context"
	"strings"

	"github.com/amritasroy/gitvalue/schema"
)

// Meaningful-score weights. Logical code is the primary signal of real work,
// comments have secondary value, and logging is weakly discounted but not
// zeroed since some logging is legitimate production code.
const (
	weightLogical = 0.8
	weightComment = 0.15
	weightLog     = 0.05
)

// ImpactAnalyzer scores the semantic impact of a diff's added lines.
// The heuristic implementation is always available; a semantic variant may
// be selected at construction and falls back to the heuristic on failure.
type ImpactAnalyzer interface {
	AnalyzeImpact(ctx context.Context, diffText string) schema.ImpactProfile
}

// HeuristicAnalyzer derives an ImpactProfile from line-level classification.
type HeuristicAnalyzer struct{}

var _ ImpactAnalyzer = &HeuristicAnalyzer{} // Compile-time check

// NewHeuristicAnalyzer creates the default, always-available analyzer.
func NewHeuristicAnalyzer() *HeuristicAnalyzer {
	return &HeuristicAnalyzer{}
}

// AnalyzeImpact classifies every added line of the diff and converts the
// counts into ratio metrics. All ratios are zero when the diff has no
// classifiable added lines.
func (a *HeuristicAnalyzer) AnalyzeImpact(_ context.Context, diffText string) schema.ImpactProfile {
	if diffText == "" {
		return schema.ImpactProfile{}
	}

	var comments, logs, logicals int
	for _, line := range extractAddedLines(diffText) {
		switch ClassifyLine(line) {
		case CommentLine:
			comments++
		case LogLine:
			logs++
		case LogicalLine:
			logicals++
		}
	}

	total := comments + logs + logicals
	if total == 0 {
		return schema.ImpactProfile{}
	}

	commentRatio := float64(comments) / float64(total)
	logRatio := float64(logs) / float64(total)
	logicalRatio := float64(logicals) / float64(total)

	return schema.ImpactProfile{
		LogicalImpact:   round3(logicalRatio),
		CommentRatio:    round3(commentRatio),
		PrintDebugRatio: round3(logRatio),
		MeaningfulScore: round3(logicalRatio*weightLogical + commentRatio*weightComment + logRatio*weightLog),
	}
}

// extractAddedLines returns the added lines of a unified diff, with the
// leading '+' marker stripped. File-header lines ("+++") are skipped.
func extractAddedLines(diffText string) []string {
	var added []string
	for _, line := range strings.Split(diffText, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			added = append(added, line[1:])
		}
	}
	return added
}
