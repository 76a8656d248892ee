package core

import "strings"

// keywordCategory maps one semantic category to its message synonyms.
// Order matters: detected categories are reported in table order.
type keywordCategory struct {
	category string
	variants []string
}

// keywordCategories is process-wide immutable configuration, loaded once and
// shared across repeated analyses.
var keywordCategories = []keywordCategory{
	{"fix", []string{"fix", "fixed", "fixes", "bugfix", "hotfix"}},
	{"feature", []string{"feature", "add", "added", "implement", "implements", "implemented"}},
	{"refactor", []string{"refactor", "refactored", "refactoring", "restructure"}},
	{"update", []string{"update", "updated", "upgrade", "upgraded"}},
	{"remove", []string{"remove", "removed", "delete", "deleted"}},
	{"test", []string{"test", "testing", "tests"}},
	{"docs", []string{"doc", "docs", "documentation", "comment", "comments"}},
	{"style", []string{"style", "format", "formatting"}},
	{"optimize", []string{"optimize", "optimized", "performance", "improve", "improved"}},
}

// meaningfulKeywords indicate substantive work in a commit message.
var meaningfulKeywords = []string{
	"fix", "add", "update", "implement", "refactor",
	"improve", "optimize", "feature", "bug", "issue",
}

// ExtractKeywords maps a free-text message to its semantic categories.
// A category appears at most once, in table order, when any of its synonym
// variants occurs as a case-insensitive substring. Messages that match
// nothing yield exactly ["unknown"].
func ExtractKeywords(message string) []string {
	lower := strings.ToLower(message)

	var found []string
	for _, kc := range keywordCategories {
		for _, v := range kc.variants {
			if strings.Contains(lower, v) {
				found = append(found, kc.category)
				break
			}
		}
	}

	if len(found) == 0 {
		return []string{"unknown"}
	}
	return found
}

// ScoreMessage rates a commit message's quality in [0,1].
// Empty messages score exactly 0. Otherwise the base score of 0.5 earns
// bonuses for reasonable length, meaningful-work keywords, and not being a
// merge commit, capped at 1.0.
func ScoreMessage(message string) float64 {
	if message == "" {
		return 0.0
	}

	score := 0.5

	switch n := len(message); {
	case n >= 20 && n <= 200:
		score += 0.2
	case n > 10:
		score += 0.1
	}

	lower := strings.ToLower(message)
	for _, kw := range meaningfulKeywords {
		if strings.Contains(lower, kw) {
			score += 0.2
			break
		}
	}

	if !strings.HasPrefix(lower, "merge") {
		score += 0.1
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}
