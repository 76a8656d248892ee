package contract

import (
	"context"
	"time"

	"github.com/amritasroy/gitvalue/schema"
	"github.com/stretchr/testify/mock"
)

// --- MockGitClient Implementation ---

// MockGitClient is an autogenerated mock type for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []interface{}{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// ValidateRepository implements the GitClient interface.
func (m *MockGitClient) ValidateRepository(ctx context.Context, repoPath string) error {
	ret := m.Called(ctx, repoPath)
	return ret.Error(0)
}

// IterCommits implements the GitClient interface. Tests typically attach a
// Run hook that replays canned records through fn.
func (m *MockGitClient) IterCommits(ctx context.Context, repoPath string, fn func(*schema.CommitRecord) bool) error {
	ret := m.Called(ctx, repoPath, fn)
	return ret.Error(0)
}

// --- MockHistoryStore Implementation ---

// MockHistoryStore is an autogenerated mock type for the HistoryStore type.
type MockHistoryStore struct {
	mock.Mock
}

var _ HistoryStore = &MockHistoryStore{} // Compile-time check

// BeginRun implements the HistoryStore interface.
func (m *MockHistoryStore) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	ret := m.Called(startTime, configParams)
	id, _ := ret.Get(0).(int64)
	return id, ret.Error(1)
}

// EndRun implements the HistoryStore interface.
func (m *MockHistoryStore) EndRun(runID int64, endTime time.Time, totalContributors int) error {
	ret := m.Called(runID, endTime, totalContributors)
	return ret.Error(0)
}

// RecordContributor implements the HistoryStore interface.
func (m *MockHistoryStore) RecordContributor(runID int64, result schema.ContributorResult) error {
	ret := m.Called(runID, result)
	return ret.Error(0)
}

// GetAllRuns implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllRuns() ([]schema.AnalysisRunRecord, error) {
	ret := m.Called()
	runs, _ := ret.Get(0).([]schema.AnalysisRunRecord)
	return runs, ret.Error(1)
}

// GetStatus implements the HistoryStore interface.
func (m *MockHistoryStore) GetStatus() (schema.HistoryStatus, error) {
	ret := m.Called()
	status, _ := ret.Get(0).(schema.HistoryStatus)
	return status, ret.Error(1)
}

// Close implements the HistoryStore interface.
func (m *MockHistoryStore) Close() error {
	ret := m.Called()
	return ret.Error(0)
}
