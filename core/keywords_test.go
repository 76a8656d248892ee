package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractKeywords checks category detection, ordering and the unknown
// fallback.
func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected []string
	}{
		{
			name:     "single fix",
			message:  "Fix crash on startup",
			expected: []string{"fix"},
		},
		{
			name:     "case insensitive",
			message:  "FIXED THE PARSER",
			expected: []string{"fix"},
		},
		{
			name:     "multiple categories in table order",
			message:  "Add tests for the fix",
			expected: []string{"fix", "feature", "test"},
		},
		{
			name:     "substring variants",
			message:  "refactoring the session layer",
			expected: []string{"refactor"},
		},
		{
			name:     "docs and style",
			message:  "Update documentation formatting",
			expected: []string{"update", "docs", "style"},
		},
		{
			name:     "no match yields unknown",
			message:  "wip",
			expected: []string{"unknown"},
		},
		{
			name:     "empty message yields unknown",
			message:  "",
			expected: []string{"unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractKeywords(tt.message))
		})
	}
}

// TestScoreMessage checks the exact bonus arithmetic.
func TestScoreMessage(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected float64
	}{
		{
			name:     "empty message",
			message:  "",
			expected: 0.0,
		},
		{
			name:    "short meaningful message",
			message: "Fix login bug",
			// 0.5 base + 0.1 length + 0.2 keyword + 0.1 not-merge
			expected: 0.9,
		},
		{
			name:    "ideal length meaningful message",
			message: "Implement retry logic for transient network failures",
			// 0.5 + 0.2 + 0.2 + 0.1, capped at 1.0
			expected: 1.0,
		},
		{
			name:    "terse message",
			message: "wip",
			// 0.5 base + 0.1 not-merge
			expected: 0.6,
		},
		{
			name:    "merge commit loses the prefix bonus",
			message: "Merge branch 'main' into develop",
			// 0.5 + 0.2 length, no keyword, no prefix bonus
			expected: 0.7,
		},
		{
			name:    "overlong message drops to the lesser length bonus",
			message: "chore: " + string(make([]byte, 200)),
			// 0.5 base + 0.1 length + 0.1 not-merge; NUL padding has no keywords
			expected: 0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ScoreMessage(tt.message), 0.001)
		})
	}
}
