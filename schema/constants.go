package schema

// Custom string types for type safety.
type (
	// ChangeType is the primary category a diff's added lines resolve to.
	ChangeType string

	// SortKey selects how contributor results are ordered.
	SortKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// ReportFormat selects between the compact table and the detailed view.
	ReportFormat string

	// DatabaseBackend represents the database backend for history tracking.
	DatabaseBackend string
)

// All change types a diff can resolve to, in resolution priority order.
const (
	FeatureChange  ChangeType = "feature"
	TestChange     ChangeType = "test"
	DocsChange     ChangeType = "docs"
	UpdateChange   ChangeType = "update"
	RefactorChange ChangeType = "refactor"
	UnknownChange  ChangeType = "unknown"
)

// All sort keys supported.
const (
	SortByValue      SortKey = "value" // default
	SortByQuality    SortKey = "quality"
	SortByDifficulty SortKey = "difficulty"
	SortByCommits    SortKey = "commits"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All report formats supported.
const (
	TableFormat    ReportFormat = "table" // default
	DetailedFormat ReportFormat = "detailed"
)

// All history backends supported.
const (
	NoneBackend       DatabaseBackend = "none" // default
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// Work style labels, checked in cascade order by the scoring engine.
const (
	StyleHighImpact     = "High-impact contributor"
	StyleComplexSolver  = "Complex problem solver"
	StyleConsistent     = "Consistent high-quality contributor"
	StyleHighActivity   = "High activity, focus on value"
	StyleQualityFocused = "Quality-focused contributor"
	StyleMaintenance    = "Maintenance contributor"
	StyleBalanced       = "Balanced contributor" // default, always reachable
)

// AllWorkStyles lists every label the scoring engine can produce.
var AllWorkStyles = []string{
	StyleHighImpact,
	StyleComplexSolver,
	StyleConsistent,
	StyleHighActivity,
	StyleQualityFocused,
	StyleMaintenance,
	StyleBalanced,
}

// ValidSortKeys lists all valid sort keys.
var ValidSortKeys = map[SortKey]struct{}{
	SortByValue:      {},
	SortByQuality:    {},
	SortByDifficulty: {},
	SortByCommits:    {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidReportFormats lists all valid report formats.
var ValidReportFormats = map[ReportFormat]struct{}{
	TableFormat:    {},
	DetailedFormat: {},
}

// ValidHistoryBackends lists all valid history backends.
var ValidHistoryBackends = map[DatabaseBackend]struct{}{
	NoneBackend:       {},
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// CoreLanguageExts are extensions that count as core-language files when
// scoring commit complexity (+2 per file).
var CoreLanguageExts = map[string]struct{}{
	".py":   {},
	".java": {},
	".cpp":  {},
	".c":    {},
	".js":   {},
	".ts":   {},
	".go":   {},
	".rs":   {},
}

// StructuredDataExts are configuration/markup extensions that count as
// structured-data files when scoring commit complexity (+1 per file).
var StructuredDataExts = map[string]struct{}{
	".json": {},
	".xml":  {},
	".yaml": {},
	".yml":  {},
	".toml": {},
}
