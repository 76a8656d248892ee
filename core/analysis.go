package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amritasroy/gitvalue/core/agg"
	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/amritasroy/gitvalue/internal/histstore"
	"github.com/amritasroy/gitvalue/internal/outwriter"
	"github.com/amritasroy/gitvalue/internal/ui"
	"github.com/amritasroy/gitvalue/schema"
)

// NewImpactAnalyzer selects the impact analyzer for the run. The semantic
// analyzer is used only when requested and constructible; any construction
// failure degrades to the heuristic analyzer with a warning, never an abort.
func NewImpactAnalyzer(cfg *contract.Config) ImpactAnalyzer {
	if !cfg.Semantic {
		return NewHeuristicAnalyzer()
	}
	analyzer, err := NewSemanticAnalyzer(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	if err != nil {
		contract.LogWarn("Semantic analysis unavailable, using heuristics", err)
		return NewHeuristicAnalyzer()
	}
	return analyzer
}

// CombineDiffText reassembles a commit's per-file diffs into a single
// added-lines patch. File headers are kept only to preserve the raw patch
// shape; the line classifiers skip them like any other header.
func CombineDiffText(commit *schema.CommitRecord) string {
	var sb strings.Builder
	for _, d := range commit.Diffs {
		sb.WriteString("+++ b/")
		sb.WriteString(d.Path)
		sb.WriteByte('\n')
		if d.Added != "" {
			sb.WriteString(d.Added)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// AnalyzeContributors streams the repository's commits newest first,
// aggregates per-author totals inside the configured window and returns the
// scored, sorted, limit-capped contributor results. Authors with no commits
// in the window never appear in the output.
func AnalyzeContributors(ctx context.Context, cfg *contract.Config, client contract.GitClient, now time.Time) ([]schema.ContributorResult, error) {
	cutoff := cfg.CutoffTime(now)
	aggregator := agg.NewAggregator()

	err := client.IterCommits(ctx, cfg.RepoPath, func(commit *schema.CommitRecord) bool {
		// Commits arrive newest first, so the first one past the cutoff
		// ends the scan.
		if !cutoff.IsZero() && commit.Timestamp.Before(cutoff) {
			return false
		}
		stats := agg.ExtractCommitStats(commit)
		quality := ScoreMessage(commit.Message)
		aggregator.AddCommit(commit.Author, stats, quality)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("commit analysis failed: %w", err)
	}

	totals := aggregator.Finalize()
	results := make([]schema.ContributorResult, 0, len(totals))
	for _, t := range totals {
		results = append(results, ScoreContributor(t.Author, t.Stats))
	}

	schema.SortContributors(results, cfg.SortBy)
	if len(results) > cfg.Limit {
		results = results[:cfg.Limit]
	}
	return results, nil
}

// VerifyCommitStream checks each commit in the window (up to the result
// limit) for agreement between its message and its actual changes, and
// profiles the impact of its added lines.
func VerifyCommitStream(ctx context.Context, cfg *contract.Config, client contract.GitClient, analyzer ImpactAnalyzer, now time.Time) ([]schema.VerificationResult, error) {
	cutoff := cfg.CutoffTime(now)
	var results []schema.VerificationResult

	err := client.IterCommits(ctx, cfg.RepoPath, func(commit *schema.CommitRecord) bool {
		if !cutoff.IsZero() && commit.Timestamp.Before(cutoff) {
			return false
		}
		diffText := CombineDiffText(commit)
		results = append(results, schema.VerificationResult{
			Hash:    commit.Hash,
			Author:  commit.Author,
			Message: commit.Message,
			Match:   VerifyMessage(commit.Message, diffText),
			Impact:  analyzer.AnalyzeImpact(ctx, diffText),
		})
		return len(results) < cfg.Limit
	})
	if err != nil {
		return nil, fmt.Errorf("commit verification failed: %w", err)
	}
	return results, nil
}

// ExecuteContributors runs the contributor analysis end to end and prints
// the results. It is the entry point for the 'contributors' command.
func ExecuteContributors(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	store := openHistoryStore(cfg)
	if store != nil {
		defer func() { _ = store.Close() }()
	}
	return runContributorAnalysis(ctx, cfg, client, store)
}

// runContributorAnalysis performs the analysis, records the run in the
// store when one is provided, and prints the results. Tracking failures
// are warnings; the analysis itself always completes.
func runContributorAnalysis(ctx context.Context, cfg *contract.Config, client contract.GitClient, store contract.HistoryStore) error {
	start := time.Now()

	var runID int64
	if store != nil {
		var err error
		runID, err = store.BeginRun(start, map[string]any{
			"repo_path": cfg.RepoPath,
			"months":    cfg.Months,
			"sort_by":   string(cfg.SortBy),
			"limit":     cfg.Limit,
		})
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runID = 0
		}
	}

	spin := ui.NewSpinner("Analyzing commit history...")
	spin.Start()
	results, err := AnalyzeContributors(ctx, cfg, client, start)
	spin.Stop()
	if err != nil {
		return err
	}

	if store != nil && runID > 0 {
		for i := range results {
			if err := store.RecordContributor(runID, results[i]); err != nil {
				contract.LogWarn("Run tracking failed for "+results[i].Author, err)
			}
		}
		if err := store.EndRun(runID, time.Now(), len(results)); err != nil {
			contract.LogWarn("Run tracking finalization failed", err)
		}
	}

	duration := time.Since(start)
	return outwriter.PrintContributorResults(results, cfg, duration)
}

// ExecuteVerify runs message-vs-change verification and prints the results.
// It is the entry point for the 'verify' command.
func ExecuteVerify(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	start := time.Now()
	analyzer := NewImpactAnalyzer(cfg)

	spin := ui.NewSpinner("Verifying commit messages...")
	spin.Start()
	results, err := VerifyCommitStream(ctx, cfg, client, analyzer, start)
	spin.Stop()
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return outwriter.PrintVerificationResults(results, cfg, duration)
}

// openHistoryStore opens the configured history backend. Failures are
// warnings; the analysis proceeds untracked.
func openHistoryStore(cfg *contract.Config) contract.HistoryStore {
	if cfg.HistoryBackend == schema.NoneBackend {
		return nil
	}
	store, err := histstore.Open(cfg)
	if err != nil {
		contract.LogWarn("Run tracking unavailable", err)
		return nil
	}
	return store
}
