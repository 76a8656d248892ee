package core

import (
	"github.com/amritasroy/gitvalue/schema"
)

// Difficulty term caps. Difficulty can reach 100 only when all three caps
// are hit simultaneously.
const (
	maxFilesScore      = 40.0
	maxComplexityScore = 40.0
	maxLinesScore      = 20.0
)

// Value term caps and the difficulty bonus threshold.
const (
	maxContributionScore = 30.0
	maxFrequencyScore    = 30.0
	difficultyBonusBar   = 50.0
	difficultyBonus      = 1.2
)

// QualityScore rates an author's accumulated totals in [0,100].
// The churn ratio rewards balanced additions/deletions (refactor-like work);
// pure addition or pure deletion scores near zero on that term. Message
// quality carries the larger weight.
func QualityScore(s *schema.AuthorStats) float64 {
	if s.CommitCount == 0 {
		return 0.0
	}

	totalChanges := s.LinesAdded + s.LinesDeleted
	churnRatio := 1.0
	if totalChanges > 0 {
		net := s.LinesAdded - s.LinesDeleted
		if net < 0 {
			net = -net
		}
		churnRatio = 1.0 - float64(net)/float64(totalChanges)
	}

	return round2(churnRatio*40 + s.AvgMessageQuality*60)
}

// DifficultyScore rates scope and complexity of an author's changes in
// [0,100], from per-commit averages of files touched, complexity and lines
// changed, each term separately capped.
func DifficultyScore(s *schema.AuthorStats) float64 {
	if s.CommitCount == 0 {
		return 0.0
	}
	commits := float64(s.CommitCount)

	avgFiles := float64(s.FilesModified) / commits
	filesScore := min(avgFiles*10, maxFilesScore)

	avgComplexity := float64(s.ComplexityScore) / commits
	complexityScore := min(avgComplexity*10, maxComplexityScore)

	avgLines := float64(s.LinesAdded+s.LinesDeleted) / commits
	linesScore := min(avgLines/10, maxLinesScore)

	return round2(filesScore + complexityScore + linesScore)
}

// ValueScore rates net impact vs effort in [0,100]. Deletion-heavy
// contributors score zero on the contribution term, never negative. Work
// above the difficulty bar earns a 1.2x bonus.
func ValueScore(s *schema.AuthorStats, quality, difficulty float64) float64 {
	if s.CommitCount == 0 {
		return 0.0
	}

	netLines := float64(s.LinesAdded - s.LinesDeleted)
	contributionScore := clamp(netLines/100, 0, maxContributionScore)

	frequencyScore := min(float64(s.CommitCount)*2, maxFrequencyScore)

	qualityFactor := 0.5
	if quality > 0 {
		qualityFactor = quality / 100
	}

	value := (contributionScore + frequencyScore) * (0.5 + qualityFactor*0.5)
	if difficulty > difficultyBonusBar {
		value *= difficultyBonus
	}

	return round2(min(value, 100))
}

// WorkStyle picks a categorical label from the score pattern. First match
// wins; "Balanced contributor" is the always-reachable default.
func WorkStyle(s *schema.AuthorStats, quality, difficulty, value float64) string {
	switch {
	case quality > 70 && value > 60:
		return schema.StyleHighImpact
	case difficulty > 60 && quality > 50:
		return schema.StyleComplexSolver
	case s.CommitCount > 20 && quality > 60:
		return schema.StyleConsistent
	case s.CommitCount > 15 && value < 40:
		return schema.StyleHighActivity
	case quality > 60 && s.CommitCount < 10:
		return schema.StyleQualityFocused
	case difficulty < 30 && s.CommitCount > 10:
		return schema.StyleMaintenance
	default:
		return schema.StyleBalanced
	}
}

// ScoreContributor converts an author's accumulated totals into the
// finalized, scored result. Scores are recomputed wholesale from the totals;
// they are never incrementally patched.
func ScoreContributor(author string, s schema.AuthorStats) schema.ContributorResult {
	quality := QualityScore(&s)
	difficulty := DifficultyScore(&s)
	value := ValueScore(&s, quality, difficulty)

	return schema.ContributorResult{
		Author:          author,
		CommitCount:     s.CommitCount,
		LinesAdded:      s.LinesAdded,
		LinesDeleted:    s.LinesDeleted,
		FilesModified:   s.FilesModified,
		ComplexityScore: s.ComplexityScore,
		QualityScore:    quality,
		DifficultyScore: difficulty,
		ValueScore:      value,
		WorkStyle:       WorkStyle(&s, quality, difficulty, value),
	}
}
