package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/amritasroy/gitvalue/schema"
)

// Default values for configuration.
const (
	DefaultMonths      = 1
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
)

// Config holds the runtime configuration for an analysis.
// This struct is the final, validated config; it is not mutated after
// ProcessAndValidate returns.
type Config struct {
	RepoPath   string
	Months     int // 0 means unbounded (entire history)
	SortBy     schema.SortKey
	Format     schema.ReportFormat
	Output     schema.OutputMode
	OutputFile string
	Limit      int

	Semantic      bool // Use the model-backed impact analyzer when available
	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseColors bool
	Width     int // Terminal width override (0 = auto-detect)
}

// CutoffTime returns the window start for the configured months, or the zero
// time when the window is unbounded.
func (c *Config) CutoffTime(now time.Time) time.Time {
	if c.Months == 0 {
		return time.Time{}
	}
	return now.AddDate(0, -c.Months, 0)
}

// Clone returns a shallow copy, used by callers that need per-request
// overrides without touching the base config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Months         int    `mapstructure:"months"`
	SortBy         string `mapstructure:"sort-by"`
	Format         string `mapstructure:"format"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Limit          int    `mapstructure:"limit"`
	Semantic       bool   `mapstructure:"semantic"`
	OpenAIKey      string `mapstructure:"openai-api-key"`
	OpenAIBaseURL  string `mapstructure:"openai-base-url"`
	OpenAIModel    string `mapstructure:"openai-model"`
	HistoryBackend string `mapstructure:"history-backend"`
	HistoryConnect string `mapstructure:"history-db-connect"`
	Color          string `mapstructure:"color"`
	Width          int    `mapstructure:"width"`
}

// ProcessAndValidate turns raw input into the final Config. Option errors
// wrap ErrInvalidOption and are rejected before any git work; the repository
// itself is then validated through the client, and those failures wrap
// ErrRepository.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if input.Months < 0 {
		return fmt.Errorf("%w: months must be >= 0, got %d (0 analyzes the entire history)", ErrInvalidOption, input.Months)
	}
	cfg.Months = input.Months

	sortBy := schema.SortKey(input.SortBy)
	if _, ok := schema.ValidSortKeys[sortBy]; !ok {
		return fmt.Errorf("%w: unsupported sort key %q (valid: value, quality, difficulty, commits)", ErrInvalidOption, input.SortBy)
	}
	cfg.SortBy = sortBy

	format := schema.ReportFormat(input.Format)
	if _, ok := schema.ValidReportFormats[format]; !ok {
		return fmt.Errorf("%w: unsupported format %q (valid: table, detailed)", ErrInvalidOption, input.Format)
	}
	cfg.Format = format

	output := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("%w: unsupported output mode %q (valid: text, csv, json, parquet)", ErrInvalidOption, input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	if output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("%w: parquet output requires --output-file", ErrInvalidOption)
	}

	switch {
	case input.Limit <= 0:
		cfg.Limit = DefaultResultLimit
	case input.Limit > MaxResultLimit:
		cfg.Limit = MaxResultLimit
	default:
		cfg.Limit = input.Limit
	}

	backend := schema.DatabaseBackend(input.HistoryBackend)
	if _, ok := schema.ValidHistoryBackends[backend]; !ok {
		return fmt.Errorf("%w: unsupported history backend %q (valid: none, sqlite, mysql, postgresql)", ErrInvalidOption, input.HistoryBackend)
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = input.HistoryConnect

	cfg.Semantic = input.Semantic
	cfg.OpenAIKey = input.OpenAIKey
	cfg.OpenAIBaseURL = input.OpenAIBaseURL
	cfg.OpenAIModel = input.OpenAIModel

	cfg.UseColors = input.Color != "no"
	cfg.Width = input.Width

	cfg.RepoPath = input.RepoPathStr
	if cfg.RepoPath == "" {
		cfg.RepoPath = "."
	}

	// Option validation passed; the repository check is the single fatal
	// gate before analysis.
	return client.ValidateRepository(ctx, cfg.RepoPath)
}
