package contract

import (
	"context"
	"testing"
	"time"

	"github.com/amritasroy/gitvalue/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes every option check.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		RepoPathStr:    "/test/repo",
		Months:         3,
		SortBy:         "value",
		Format:         "table",
		Output:         "text",
		Limit:          10,
		HistoryBackend: "none",
		Color:          "yes",
	}
}

// TestProcessAndValidate checks the full happy path populates the config.
func TestProcessAndValidate(t *testing.T) {
	mockClient := &MockGitClient{}
	mockClient.On("ValidateRepository", mock.Anything, "/test/repo").Return(nil)

	cfg := &Config{}
	err := ProcessAndValidate(context.Background(), cfg, mockClient, validInput())
	require.NoError(t, err)

	assert.Equal(t, "/test/repo", cfg.RepoPath)
	assert.Equal(t, 3, cfg.Months)
	assert.Equal(t, schema.SortByValue, cfg.SortBy)
	assert.Equal(t, schema.TableFormat, cfg.Format)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, 10, cfg.Limit)
	assert.Equal(t, schema.NoneBackend, cfg.HistoryBackend)
	assert.True(t, cfg.UseColors)

	mockClient.AssertExpectations(t)
}

// TestProcessAndValidateOptionErrors checks every option rejection wraps
// ErrInvalidOption and never reaches the repository check.
func TestProcessAndValidateOptionErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{
			name:   "negative months",
			mutate: func(in *ConfigRawInput) { in.Months = -1 },
		},
		{
			name:   "bad sort key",
			mutate: func(in *ConfigRawInput) { in.SortBy = "karma" },
		},
		{
			name:   "bad format",
			mutate: func(in *ConfigRawInput) { in.Format = "fancy" },
		},
		{
			name:   "bad output mode",
			mutate: func(in *ConfigRawInput) { in.Output = "xml" },
		},
		{
			name:   "parquet without output file",
			mutate: func(in *ConfigRawInput) { in.Output = "parquet"; in.OutputFile = "" },
		},
		{
			name:   "bad history backend",
			mutate: func(in *ConfigRawInput) { in.HistoryBackend = "oracle" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: validation must fail before any git work.
			mockClient := &MockGitClient{}

			input := validInput()
			tt.mutate(input)

			err := ProcessAndValidate(context.Background(), &Config{}, mockClient, input)
			assert.ErrorIs(t, err, ErrInvalidOption)
			mockClient.AssertExpectations(t)
		})
	}
}

// TestProcessAndValidateLimit checks limit clamping on both ends.
func TestProcessAndValidateLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"zero falls back to default", 0, DefaultResultLimit},
		{"negative falls back to default", -5, DefaultResultLimit},
		{"over the max is clamped", MaxResultLimit + 100, MaxResultLimit},
		{"in range is kept", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := &MockGitClient{}
			mockClient.On("ValidateRepository", mock.Anything, mock.Anything).Return(nil)

			input := validInput()
			input.Limit = tt.limit

			cfg := &Config{}
			require.NoError(t, ProcessAndValidate(context.Background(), cfg, mockClient, input))
			assert.Equal(t, tt.expected, cfg.Limit)
		})
	}
}

// TestProcessAndValidateRepositoryError checks repository failures surface
// after option validation.
func TestProcessAndValidateRepositoryError(t *testing.T) {
	mockClient := &MockGitClient{}
	mockClient.On("ValidateRepository", mock.Anything, "/test/repo").
		Return(ErrRepository)

	err := ProcessAndValidate(context.Background(), &Config{}, mockClient, validInput())
	assert.ErrorIs(t, err, ErrRepository)
}

// TestProcessAndValidateDefaults checks empty path and color handling.
func TestProcessAndValidateDefaults(t *testing.T) {
	mockClient := &MockGitClient{}
	mockClient.On("ValidateRepository", mock.Anything, ".").Return(nil)

	input := validInput()
	input.RepoPathStr = ""
	input.Color = "no"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(context.Background(), cfg, mockClient, input))
	assert.Equal(t, ".", cfg.RepoPath)
	assert.False(t, cfg.UseColors)
}

// TestCutoffTime checks the window arithmetic around the unbounded case.
func TestCutoffTime(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	t.Run("unbounded", func(t *testing.T) {
		cfg := &Config{Months: 0}
		assert.True(t, cfg.CutoffTime(now).IsZero())
	})

	t.Run("one month", func(t *testing.T) {
		cfg := &Config{Months: 1}
		assert.Equal(t, time.Date(2026, 7, 15, 10, 0, 0, 0, time.UTC), cfg.CutoffTime(now))
	})

	t.Run("twelve months", func(t *testing.T) {
		cfg := &Config{Months: 12}
		assert.Equal(t, time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC), cfg.CutoffTime(now))
	})
}

// TestConfigClone confirms clones are independent copies.
func TestConfigClone(t *testing.T) {
	base := &Config{RepoPath: "/repo", Months: 6, Limit: 10}
	clone := base.Clone()

	clone.Months = 1
	clone.Limit = 3

	assert.Equal(t, 6, base.Months)
	assert.Equal(t, 10, base.Limit)
	assert.Equal(t, "/repo", clone.RepoPath)
}
