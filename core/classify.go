package core

import (
	"regexp"
	"strings"
)

// LineClass is the category a single added source line resolves to.
type LineClass int

// All line classes. BlankLine and OtherLine are excluded from every
// ratio denominator; only the middle three are "classifiable".
const (
	BlankLine LineClass = iota
	CommentLine
	LogLine
	LogicalLine
	OtherLine // non-blank but carries no word characters (e.g. lone braces)
)

// commentPatterns match comment openers across common languages. This is
// deliberately pattern-based rather than a parser, so multi-line string
// literals can be misclassified as comments.
var commentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*#`),    // Python, Ruby, Shell
	regexp.MustCompile(`^\s*//`),   // Go, JavaScript, Java, C++, C#
	regexp.MustCompile(`^\s*/\*`),  // Block comment start
	regexp.MustCompile(`^\s*\*`),   // Block comment continuation or end
	regexp.MustCompile(`^\s*<!--`), // HTML, XML
	regexp.MustCompile(`^\s*"""`),  // Python docstring
	regexp.MustCompile(`^\s*'''`),  // Python docstring
}

// logPatterns match call sites of common output/logging APIs.
var logPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bprint\s*\(`),
	regexp.MustCompile(`(?i)\bconsole\.log\s*\(`),
	regexp.MustCompile(`(?i)\bconsole\.(debug|info|warn|error)\s*\(`),
	regexp.MustCompile(`(?i)\blogger\.`),
	regexp.MustCompile(`(?i)\blogging\.`),
	regexp.MustCompile(`(?i)\blog\.`),
	regexp.MustCompile(`(?i)\bSystem\.out\.print`),
	regexp.MustCompile(`(?i)\bSystem\.err\.print`),
	regexp.MustCompile(`(?i)\bfprintf\s*\(`),
	regexp.MustCompile(`(?i)\bprintf\s*\(`),
	regexp.MustCompile(`(?i)\bcout\s*<<`),
	regexp.MustCompile(`(?i)\bcerr\s*<<`),
}

// structuralPatterns match the shapes of functional code: definitions,
// control flow, assignments, calls, error handling, async markers.
var structuralPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bdef\s+\w+`),
	regexp.MustCompile(`\bfunc\s+\w+`),
	regexp.MustCompile(`\bfunction\s+\w+`),
	regexp.MustCompile(`\bclass\s+\w+`),
	regexp.MustCompile(`\bif\s+`),
	regexp.MustCompile(`\belse\s*:`),
	regexp.MustCompile(`\bfor\s+`),
	regexp.MustCompile(`\bwhile\s+`),
	regexp.MustCompile(`\breturn\s+`),
	regexp.MustCompile(`\bimport\s+`),
	regexp.MustCompile(`\bfrom\s+\w+\s+import`),
	regexp.MustCompile(`\w+\s*=\s*`),
	regexp.MustCompile(`\w+\s*\(`),
	regexp.MustCompile(`\.\w+\(`),
	regexp.MustCompile(`\bawait\s+`),
	regexp.MustCompile(`\basync\s+`),
	regexp.MustCompile(`\btry\s*:`),
	regexp.MustCompile(`\bexcept\s+`),
	regexp.MustCompile(`\bcatch\s*\(`),
	regexp.MustCompile(`\bthrow\s+`),
	regexp.MustCompile(`\braise\s+`),
}

// wordRunPattern is the fallback for logical code: any identifier-like run.
var wordRunPattern = regexp.MustCompile(`[a-zA-Z_]\w*`)

// ClassifyLine labels a single line of added source text. Comment and log
// checks run before the logical fallback, so a commented-out print statement
// is a comment, never a log line.
func ClassifyLine(line string) LineClass {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return BlankLine
	}
	if isComment(trimmed) {
		return CommentLine
	}
	if isPrintOrLog(trimmed) {
		return LogLine
	}
	if isLogical(trimmed) {
		return LogicalLine
	}
	return OtherLine
}

func isComment(trimmed string) bool {
	for _, p := range commentPatterns {
		if p.MatchString(trimmed) {
			return true
		}
	}
	return false
}

func isPrintOrLog(trimmed string) bool {
	for _, p := range logPatterns {
		if p.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// isLogical assumes comment and log checks already failed. In practice the
// word-run fallback makes almost every remaining non-blank line logical; the
// structural patterns mainly matter for change-type flags.
func isLogical(trimmed string) bool {
	for _, p := range structuralPatterns {
		if p.MatchString(trimmed) {
			return true
		}
	}
	return wordRunPattern.MatchString(trimmed)
}
