package schema

import "sort"

// SortContributors orders results by the given key, descending.
// The sort is stable, so entries with equal keys keep their aggregation
// (insertion) order. Ties are otherwise undefined for audit purposes.
func SortContributors(results []ContributorResult, key SortKey) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := &results[i], &results[j]
		switch key {
		case SortByQuality:
			return a.QualityScore > b.QualityScore
		case SortByDifficulty:
			return a.DifficultyScore > b.DifficultyScore
		case SortByCommits:
			return a.CommitCount > b.CommitCount
		default: // SortByValue
			return a.ValueScore > b.ValueScore
		}
	})
}

// SummaryStats holds repository-wide totals over all contributors.
type SummaryStats struct {
	Contributors  int
	TotalCommits  int
	LinesAdded    int
	LinesDeleted  int
	FilesModified int
	AvgQuality    float64
	AvgDifficulty float64
	AvgValue      float64
}

// Summarize computes repository-wide totals and score averages.
func Summarize(results []ContributorResult) SummaryStats {
	s := SummaryStats{Contributors: len(results)}
	if len(results) == 0 {
		return s
	}
	for i := range results {
		r := &results[i]
		s.TotalCommits += r.CommitCount
		s.LinesAdded += r.LinesAdded
		s.LinesDeleted += r.LinesDeleted
		s.FilesModified += r.FilesModified
		s.AvgQuality += r.QualityScore
		s.AvgDifficulty += r.DifficultyScore
		s.AvgValue += r.ValueScore
	}
	n := float64(len(results))
	s.AvgQuality /= n
	s.AvgDifficulty /= n
	s.AvgValue /= n
	return s
}
