package core

import (
	"strings"

	"github.com/amritasroy/gitvalue/schema"
)

// ClassifyChangeType resolves a diff's added lines to one primary change
// category. Priority is deliberate: structural additions outrank everything,
// tests outrank plain logic, comment-only changes are distinguished from
// changed logic, and generic logic outranks bare import additions.
func ClassifyChangeType(diffText string) schema.ChangeTypeResult {
	var result schema.ChangeTypeResult

	for _, line := range extractAddedLines(diffText) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.Contains(trimmed, "def ") || strings.Contains(trimmed, "func ") || strings.Contains(trimmed, "function ") {
			result.HasFunctionDef = true
		}
		if strings.Contains(trimmed, "class ") {
			result.HasClassDef = true
		}
		if strings.Contains(trimmed, "import ") || strings.Contains(trimmed, "from ") {
			result.HasImport = true
		}

		switch ClassifyLine(trimmed) {
		case CommentLine:
			result.HasComments = true
		case LogicalLine:
			result.HasLogic = true
		}

		lower := strings.ToLower(trimmed)
		if strings.Contains(lower, "test") || strings.Contains(lower, "assert") {
			result.HasTests = true
		}
	}

	result.PrimaryType = resolvePrimaryType(&result)
	return result
}

// resolvePrimaryType applies the strict priority cascade; first match wins.
func resolvePrimaryType(r *schema.ChangeTypeResult) schema.ChangeType {
	switch {
	case r.HasClassDef || r.HasFunctionDef:
		return schema.FeatureChange
	case r.HasTests:
		return schema.TestChange
	case r.HasComments && !r.HasLogic:
		return schema.DocsChange
	case r.HasLogic:
		return schema.UpdateChange
	case r.HasImport:
		return schema.RefactorChange
	default:
		return schema.UnknownChange
	}
}
