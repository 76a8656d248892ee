// Package schema has configs, models and global variables for all parts of gitvalue.
package schema

import (
	"path/filepath"
	"time"
)

// CommitRecord is one commit as materialized by the git client.
// It is a read-only input to the analysis pipeline; nothing mutates it after
// the client hands it over.
type CommitRecord struct {
	Hash      string     // Full commit hash
	Author    string     // Author display name, used verbatim as the aggregation key
	Timestamp time.Time  // Author timestamp
	Message   string     // Full commit message
	HasParent bool       // False for root commits (diffed against the empty tree)
	Diffs     []FileDiff // Per-file diffs, in patch order
	DiffErr   error      // Set when the patch could not be decoded; stats degrade to zero
}

// FileDiff is the per-file slice of a commit's patch.
type FileDiff struct {
	Path    string // Path of the file after the change
	Added   string // Raw added lines, '+' markers preserved, newline separated
	Removed int    // Count of removed lines
	Ext     string // File extension derived from Path, including the dot
}

// NewFileDiff builds a FileDiff and derives the extension from the path.
func NewFileDiff(path, added string, removed int) FileDiff {
	return FileDiff{
		Path:    path,
		Added:   added,
		Removed: removed,
		Ext:     filepath.Ext(path),
	}
}

// ImpactProfile holds ratio-based impact metrics for a diff's added lines.
// Each field is in [0,1]. The three ratios partition all classifiable lines,
// so they sum to 1 when any line was classified and are all 0 otherwise.
type ImpactProfile struct {
	LogicalImpact   float64 `json:"logical_impact"`
	CommentRatio    float64 `json:"comment_ratio"`
	PrintDebugRatio float64 `json:"print_debug_ratio"`
	MeaningfulScore float64 `json:"meaningful_score"`
}

// ChangeTypeResult describes what kind of change a diff's added lines represent.
// The boolean flags exist only to derive PrimaryType.
type ChangeTypeResult struct {
	PrimaryType    ChangeType
	HasFunctionDef bool
	HasClassDef    bool
	HasImport      bool
	HasLogic       bool
	HasComments    bool
	HasTests       bool
}

// MatchResult is the outcome of verifying a commit message against its diff.
type MatchResult struct {
	MatchScore       float64  `json:"match_score"`
	DetectedKeywords []string `json:"detected_keywords"`
	ActualChanges    string   `json:"actual_changes"`
	MismatchWarning  string   `json:"mismatch_warning,omitempty"` // Empty means no warning was raised
}

// CommitStats holds the raw counts extracted from a single commit.
type CommitStats struct {
	LinesAdded      int
	LinesDeleted    int
	FilesModified   int
	ComplexityScore int
}

// AuthorStats holds an author's accumulated totals once aggregation is done.
// It is the input to the scoring engine.
type AuthorStats struct {
	CommitCount       int
	LinesAdded        int
	LinesDeleted      int
	FilesModified     int
	ComplexityScore   int
	AvgMessageQuality float64
}

// ContributorResult is the finalized, scored record for one author.
// Scores are derived data; they are recomputed from the totals, never patched.
type ContributorResult struct {
	Author          string  `json:"author"`
	CommitCount     int     `json:"commit_count"`
	LinesAdded      int     `json:"lines_added"`
	LinesDeleted    int     `json:"lines_deleted"`
	FilesModified   int     `json:"files_modified"`
	ComplexityScore int     `json:"complexity_score"`
	QualityScore    float64 `json:"quality_score"`
	DifficultyScore float64 `json:"difficulty_score"`
	ValueScore      float64 `json:"value_score"`
	WorkStyle       string  `json:"work_style"`
}

// NetLines returns the author's net contribution in lines.
func (c *ContributorResult) NetLines() int {
	return c.LinesAdded - c.LinesDeleted
}

// VerificationResult pairs a commit with its message/diff match outcome and
// the impact profile of its added lines.
type VerificationResult struct {
	Hash    string        `json:"hash"`
	Author  string        `json:"author"`
	Message string        `json:"message"`
	Match   MatchResult   `json:"match"`
	Impact  ImpactProfile `json:"impact"`
}

// AnalysisRunRecord is one tracked analysis run from the history store.
type AnalysisRunRecord struct {
	RunID             int64      `json:"run_id"`
	StartTime         time.Time  `json:"start_time"`
	EndTime           *time.Time `json:"end_time"`
	RunDurationMs     *int64     `json:"run_duration_ms"`
	TotalContributors int        `json:"total_contributors"`
	ConfigParams      string     `json:"config_params"`
}

// HistoryStatus has status information about the history store.
type HistoryStatus struct {
	Backend    string           `json:"backend"`
	Connected  bool             `json:"connected"`
	TotalRuns  int64            `json:"total_runs"`
	LastRunID  int64            `json:"last_run_id"`
	LastRun    time.Time        `json:"last_run"`
	TableSizes map[string]int64 `json:"table_sizes"`
}
