// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"errors"
	"time"

	"github.com/amritasroy/gitvalue/schema"
)

// Error categories. Validation errors are rejected before any git work;
// repository errors are fatal and reported once before analysis begins.
var (
	ErrInvalidOption = errors.New("invalid option")
	ErrRepository    = errors.New("repository error")
)

// GitClient defines the necessary operations for commit-stream analysis.
// This allows the core logic to be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns its output. Its use should be
	// minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// ValidateRepository checks that repoPath is an openable, non-bare
	// repository. Failures wrap ErrRepository.
	ValidateRepository(ctx context.Context, repoPath string) error

	// IterCommits streams commits newest first, invoking fn for each record.
	// Iteration stops early when fn returns false; windowed callers use this
	// to stop at the first commit older than their cutoff instead of
	// scanning the whole history. Per-commit patch decode failures are
	// carried on the record (DiffErr), never returned from here.
	IterCommits(ctx context.Context, repoPath string, fn func(*schema.CommitRecord) bool) error
}

// HistoryStore tracks analysis runs and finalized contributor scores.
// Recording failures are warnings, never fatal to an analysis.
type HistoryStore interface {
	// BeginRun creates a new analysis run and returns its unique ID.
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data.
	EndRun(runID int64, endTime time.Time, totalContributors int) error

	// RecordContributor stores one finalized contributor result.
	RecordContributor(runID int64, result schema.ContributorResult) error

	// GetAllRuns retrieves all tracked analysis runs.
	GetAllRuns() ([]schema.AnalysisRunRecord, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection.
	Close() error
}
