package agg

import (
	"errors"
	"testing"

	"github.com/amritasroy/gitvalue/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractCommitStats checks line counting and complexity weighting.
func TestExtractCommitStats(t *testing.T) {
	tests := []struct {
		name     string
		commit   schema.CommitRecord
		expected schema.CommitStats
	}{
		{
			name:     "empty commit",
			commit:   schema.CommitRecord{},
			expected: schema.CommitStats{},
		},
		{
			name: "diff error degrades to zero",
			commit: schema.CommitRecord{
				DiffErr: errors.New("patch is not valid UTF-8"),
				Diffs:   []schema.FileDiff{schema.NewFileDiff("a.go", "+x", 0)},
			},
			expected: schema.CommitStats{},
		},
		{
			name: "focused commit with core and structured files",
			commit: schema.CommitRecord{
				Diffs: []schema.FileDiff{
					schema.NewFileDiff("main.go", "+x := 1\n+y := 2", 1),
					schema.NewFileDiff("config.yaml", "+debug: true", 0),
				},
			},
			expected: schema.CommitStats{
				LinesAdded:    3,
				LinesDeleted:  1,
				FilesModified: 2,
				// go(2) + yaml(1) + focused bonus per file(2)
				ComplexityScore: 5,
			},
		},
		{
			name: "wide commit earns no focus bonus",
			commit: schema.CommitRecord{
				Diffs: []schema.FileDiff{
					schema.NewFileDiff("a.go", "+a", 0),
					schema.NewFileDiff("b.go", "+b", 0),
					schema.NewFileDiff("c.go", "+c", 0),
					schema.NewFileDiff("d.go", "+d", 0),
				},
			},
			expected: schema.CommitStats{
				LinesAdded:      4,
				FilesModified:   4,
				ComplexityScore: 8, // 4 core files, no bonus
			},
		},
		{
			name: "unweighted extension",
			commit: schema.CommitRecord{
				Diffs: []schema.FileDiff{
					schema.NewFileDiff("notes.txt", "+remember this", 0),
				},
			},
			expected: schema.CommitStats{
				LinesAdded:      1,
				FilesModified:   1,
				ComplexityScore: 1, // focus bonus only
			},
		},
		{
			name: "file headers are not added lines",
			commit: schema.CommitRecord{
				Diffs: []schema.FileDiff{
					schema.NewFileDiff("a.go", "+++ b/a.go\n+real line", 0),
				},
			},
			expected: schema.CommitStats{
				LinesAdded:      1,
				FilesModified:   1,
				ComplexityScore: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractCommitStats(&tt.commit))
		})
	}
}

// TestAggregator checks accumulation, insertion order and quality averaging.
func TestAggregator(t *testing.T) {
	a := NewAggregator()
	assert.Equal(t, 0, a.Len())

	a.AddCommit("Alice", schema.CommitStats{LinesAdded: 10, LinesDeleted: 5, FilesModified: 2, ComplexityScore: 4}, 0.8)
	a.AddCommit("Bob", schema.CommitStats{LinesAdded: 3, FilesModified: 1, ComplexityScore: 2}, 0.6)
	a.AddCommit("Alice", schema.CommitStats{LinesAdded: 20, LinesDeleted: 15, FilesModified: 3, ComplexityScore: 6}, 0.4)

	assert.Equal(t, 2, a.Len())

	totals := a.Finalize()
	require.Len(t, totals, 2)

	// Insertion order is preserved.
	assert.Equal(t, "Alice", totals[0].Author)
	assert.Equal(t, "Bob", totals[1].Author)

	alice := totals[0].Stats
	assert.Equal(t, 2, alice.CommitCount)
	assert.Equal(t, 30, alice.LinesAdded)
	assert.Equal(t, 20, alice.LinesDeleted)
	assert.Equal(t, 5, alice.FilesModified)
	assert.Equal(t, 10, alice.ComplexityScore)
	assert.InDelta(t, 0.6, alice.AvgMessageQuality, 0.001)

	bob := totals[1].Stats
	assert.Equal(t, 1, bob.CommitCount)
	assert.InDelta(t, 0.6, bob.AvgMessageQuality, 0.001)
}

// TestCountAddedLines checks the diff marker convention.
func TestCountAddedLines(t *testing.T) {
	tests := []struct {
		name     string
		added    string
		expected int
	}{
		{"empty", "", 0},
		{"single line", "+x", 1},
		{"multiple lines", "+a\n+b\n+c", 3},
		{"header skipped", "+++ b/f.go\n+a", 1},
		{"unmarked lines ignored", "context\n+a\nmore", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, countAddedLines(tt.added))
		})
	}
}
