package core

import (
	"fmt"
	"strings"

	"github.com/amritasroy/gitvalue/schema"
)

// mismatchThreshold is the match score below which a warning is raised.
const mismatchThreshold = 0.4

// semanticMatches maps a message keyword to change types considered adjacent
// enough for partial credit. Process-wide immutable configuration.
// "fix" and "optimize" are message categories that never resolve as primary
// change types; their entries keep the table symmetric with the keyword set.
var semanticMatches = map[string][]schema.ChangeType{
	"fix":      {schema.UpdateChange, schema.RefactorChange},
	"feature":  {schema.UpdateChange, schema.RefactorChange},
	"update":   {"fix", schema.FeatureChange, "optimize"},
	"refactor": {schema.UpdateChange, "optimize"},
	"test":     {schema.FeatureChange},
	"docs":     {},
}

// VerifyMessage scores how well a commit message predicts the diff's actual
// change type. Empty inputs yield a neutral result with no warning.
func VerifyMessage(message, diffText string) schema.MatchResult {
	if message == "" || diffText == "" {
		return schema.MatchResult{
			MatchScore:       0.5,
			DetectedKeywords: []string{},
			ActualChanges:    "No changes detected",
		}
	}

	keywords := ExtractKeywords(message)
	change := ClassifyChangeType(diffText)
	score := matchScore(keywords, change.PrimaryType)

	result := schema.MatchResult{
		MatchScore:       round3(score),
		DetectedKeywords: keywords,
		ActualChanges:    string(change.PrimaryType),
	}
	if result.MatchScore < mismatchThreshold {
		result.MismatchWarning = fmt.Sprintf(
			"Commit message suggests '%s' but changes appear to be %s",
			strings.Join(keywords, ", "), change.PrimaryType)
	}
	return result
}

// matchScore applies the fixed rule cascade: exact containment, semantic
// adjacency, partial credit for ambiguous messages, then no match.
func matchScore(keywords []string, primary schema.ChangeType) float64 {
	for _, kw := range keywords {
		if kw == string(primary) {
			return 1.0
		}
	}

	for _, kw := range keywords {
		for _, adjacent := range semanticMatches[kw] {
			if adjacent == primary {
				return 0.7
			}
		}
	}

	if len(keywords) > 1 {
		return 0.5
	}
	return 0.3
}
