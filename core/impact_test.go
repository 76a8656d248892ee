package core

import (
	"context"
	"testing"

	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/amritasroy/gitvalue/schema"
	"github.com/stretchr/testify/assert"
)

// TestAnalyzeImpactHeuristic checks the ratio arithmetic on a mixed diff.
func TestAnalyzeImpactHeuristic(t *testing.T) {
	analyzer := NewHeuristicAnalyzer()

	// Two logical lines, one comment, one log line.
	diff := "+total = a + b\n" +
		"+# running total\n" +
		"+print(total)\n" +
		"+return total"

	profile := analyzer.AnalyzeImpact(context.Background(), diff)

	assert.InDelta(t, 0.5, profile.LogicalImpact, 0.001)
	assert.InDelta(t, 0.25, profile.CommentRatio, 0.001)
	assert.InDelta(t, 0.25, profile.PrintDebugRatio, 0.001)
	// 0.5*0.8 + 0.25*0.15 + 0.25*0.05
	assert.InDelta(t, 0.45, profile.MeaningfulScore, 0.001)
}

// TestAnalyzeImpactEdgeCases covers empty and unclassifiable diffs.
func TestAnalyzeImpactEdgeCases(t *testing.T) {
	analyzer := NewHeuristicAnalyzer()
	ctx := context.Background()

	t.Run("empty diff", func(t *testing.T) {
		assert.Equal(t, schema.ImpactProfile{}, analyzer.AnalyzeImpact(ctx, ""))
	})

	t.Run("no added lines", func(t *testing.T) {
		assert.Equal(t, schema.ImpactProfile{}, analyzer.AnalyzeImpact(ctx, "-gone = 1\n context line"))
	})

	t.Run("only unclassifiable lines", func(t *testing.T) {
		// Lone braces are non-blank but carry no word characters.
		assert.Equal(t, schema.ImpactProfile{}, analyzer.AnalyzeImpact(ctx, "+}\n+);"))
	})

	t.Run("comment-only diff", func(t *testing.T) {
		profile := analyzer.AnalyzeImpact(ctx, "+# a note\n+# another note")
		assert.InDelta(t, 0.0, profile.LogicalImpact, 0.001)
		assert.InDelta(t, 1.0, profile.CommentRatio, 0.001)
		assert.InDelta(t, 0.15, profile.MeaningfulScore, 0.001)
	})

	t.Run("log-only diff", func(t *testing.T) {
		profile := analyzer.AnalyzeImpact(ctx, "+print(x)\n+console.log(y)")
		assert.InDelta(t, 1.0, profile.PrintDebugRatio, 0.001)
		assert.InDelta(t, 0.0, profile.LogicalImpact, 0.001)
		assert.InDelta(t, 0.05, profile.MeaningfulScore, 0.001)
	})

	t.Run("file headers are not added lines", func(t *testing.T) {
		assert.Equal(t, schema.ImpactProfile{}, analyzer.AnalyzeImpact(ctx, "+++ b/main.go"))
	})
}

// TestAnalyzeImpactPartition confirms the three ratios partition the
// classified lines.
func TestAnalyzeImpactPartition(t *testing.T) {
	analyzer := NewHeuristicAnalyzer()

	diff := "+x = 1\n+// note\n+logger.debug(x)\n+y = x * 2\n+# more notes"
	profile := analyzer.AnalyzeImpact(context.Background(), diff)

	sum := profile.LogicalImpact + profile.CommentRatio + profile.PrintDebugRatio
	assert.InDelta(t, 1.0, sum, 0.01)
}

// TestNewImpactAnalyzer checks analyzer selection and the heuristic fallback.
func TestNewImpactAnalyzer(t *testing.T) {
	t.Run("default is heuristic", func(t *testing.T) {
		cfg := &contract.Config{}
		_, ok := NewImpactAnalyzer(cfg).(*HeuristicAnalyzer)
		assert.True(t, ok)
	})

	t.Run("semantic without key falls back to heuristic", func(t *testing.T) {
		cfg := &contract.Config{Semantic: true}
		_, ok := NewImpactAnalyzer(cfg).(*HeuristicAnalyzer)
		assert.True(t, ok)
	})

	t.Run("semantic with key", func(t *testing.T) {
		cfg := &contract.Config{Semantic: true, OpenAIKey: "test-key"}
		_, ok := NewImpactAnalyzer(cfg).(*SemanticAnalyzer)
		assert.True(t, ok)
	})
}

// TestCombineDiffText checks path headers and added-line ordering.
func TestCombineDiffText(t *testing.T) {
	commit := &schema.CommitRecord{
		Hash: "abc123",
		Diffs: []schema.FileDiff{
			schema.NewFileDiff("main.go", "+x := 1\n+y := 2", 0),
			schema.NewFileDiff("util_test.go", "+assertEqual(x, y)", 1),
		},
	}

	combined := CombineDiffText(commit)

	assert.Contains(t, combined, "+++ b/main.go")
	assert.Contains(t, combined, "+++ b/util_test.go")
	assert.Contains(t, combined, "+x := 1")
	assert.Contains(t, combined, "+assertEqual(x, y)")
}

// TestCombineDiffTextEmpty confirms empty and failed commits combine to nothing.
func TestCombineDiffTextEmpty(t *testing.T) {
	assert.Empty(t, CombineDiffText(&schema.CommitRecord{}))
}
