package histstore

import (
	"testing"
	"time"

	"github.com/amritasroy/gitvalue/internal/contract"
	"github.com/amritasroy/gitvalue/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryStore_NoneBackend(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// BeginRun should return 0 for NoneBackend
	runID, err := store.BeginRun(time.Now(), map[string]any{"test": "value"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	// Other operations should not error
	err = store.EndRun(1, time.Now(), 10)
	assert.NoError(t, err)

	err = store.RecordContributor(1, schema.ContributorResult{Author: "Alice"})
	assert.NoError(t, err)

	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.False(t, status.Connected)

	err = store.Close()
	assert.NoError(t, err)
}

func TestHistoryStore_UnsupportedBackend(t *testing.T) {
	store, err := NewHistoryStore("oracle", "")
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestHistoryStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Test BeginRun
	startTime := time.Now()
	configParams := map[string]any{
		"repo_path": "/test/repo",
		"months":    3,
		"sort_by":   "value",
	}
	runID, err := store.BeginRun(startTime, configParams)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	// Test RecordContributor
	result := schema.ContributorResult{
		Author:          "Alice",
		CommitCount:     12,
		LinesAdded:      340,
		LinesDeleted:    120,
		FilesModified:   25,
		ComplexityScore: 40,
		QualityScore:    82.5,
		DifficultyScore: 61.0,
		ValueScore:      70.25,
		WorkStyle:       schema.StyleHighImpact,
	}
	require.NoError(t, store.RecordContributor(runID, result))
	require.NoError(t, store.RecordContributor(runID, schema.ContributorResult{
		Author: "Bob", CommitCount: 3, WorkStyle: schema.StyleBalanced,
	}))

	// Test EndRun
	endTime := startTime.Add(1500 * time.Millisecond)
	require.NoError(t, store.EndRun(runID, endTime, 2))

	// Test GetAllRuns
	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, runID, run.RunID)
	assert.Equal(t, 2, run.TotalContributors)
	require.NotNil(t, run.EndTime)
	require.NotNil(t, run.RunDurationMs)
	assert.InDelta(t, 1500, float64(*run.RunDurationMs), 50)
	assert.Contains(t, run.ConfigParams, "/test/repo")

	// Test GetStatus
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, runID, status.LastRunID)
	assert.Equal(t, int64(1), status.TableSizes[analysisRunsTable])
	assert.Equal(t, int64(2), status.TableSizes[contributorScoresTable])
}

func TestHistoryStore_SQLiteMultipleRuns(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	first, err := store.BeginRun(time.Now(), map[string]any{"months": 1})
	require.NoError(t, err)
	second, err := store.BeginRun(time.Now(), map[string]any{"months": 6})
	require.NoError(t, err)
	assert.Greater(t, second, first)

	// The second run is never finished; its completion fields stay NULL.
	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Nil(t, runs[1].EndTime)
	assert.Nil(t, runs[1].RunDurationMs)
	assert.Equal(t, 0, runs[1].TotalContributors)
}

func TestHistoryStore_EndRunUnknownID(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	err = store.EndRun(9999, time.Now(), 1)
	assert.Error(t, err)
}

func TestOpenFromConfig(t *testing.T) {
	cfg := &contract.Config{HistoryBackend: schema.NoneBackend}
	store, err := Open(cfg)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
