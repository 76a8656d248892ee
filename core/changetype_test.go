package core

import (
	"testing"

	"github.com/amritasroy/gitvalue/schema"
	"github.com/stretchr/testify/assert"
)

// TestClassifyChangeType checks the primary-type priority cascade on
// realistic diff fragments.
func TestClassifyChangeType(t *testing.T) {
	tests := []struct {
		name     string
		diffText string
		expected schema.ChangeType
	}{
		{
			name:     "function definition wins",
			diffText: "+func ParseRecord(raw string) (*Record, error) {\n+\treturn nil, nil\n+}",
			expected: schema.FeatureChange,
		},
		{
			name:     "class definition wins",
			diffText: "+class SessionManager:\n+    pass",
			expected: schema.FeatureChange,
		},
		{
			name:     "tests outrank plain logic",
			diffText: "+result = run_pipeline()\n+assert result.status == 'ok'",
			expected: schema.TestChange,
		},
		{
			name:     "comment-only change is docs",
			diffText: "+# explains the retry budget\n+// and the backoff window",
			expected: schema.DocsChange,
		},
		{
			name:     "plain logic is an update",
			diffText: "+retries = 3\n+backoff = backoff * 2",
			expected: schema.UpdateChange,
		},
		{
			name:     "function outranks tests",
			diffText: "+func TestSomething(t *testing.T) {\n+\tassertTrue(t)\n+}",
			expected: schema.FeatureChange,
		},
		{
			name:     "empty diff is unknown",
			diffText: "",
			expected: schema.UnknownChange,
		},
		{
			name:     "removed lines do not count",
			diffText: "-func DeletedThing() {}\n-x = 1",
			expected: schema.UnknownChange,
		},
		{
			name:     "file headers are skipped",
			diffText: "+++ b/docs/readme_test_plan.md\n+# heading only",
			expected: schema.DocsChange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyChangeType(tt.diffText)
			assert.Equal(t, tt.expected, result.PrimaryType)
		})
	}
}

// TestClassifyChangeTypeFlags confirms the underlying flags behind the
// primary type resolution.
func TestClassifyChangeTypeFlags(t *testing.T) {
	result := ClassifyChangeType("+import os\n+def load(path):\n+    # read the file\n+    return open(path)")

	assert.True(t, result.HasImport)
	assert.True(t, result.HasFunctionDef)
	assert.True(t, result.HasComments)
	assert.True(t, result.HasLogic)
	assert.False(t, result.HasClassDef)
	assert.Equal(t, schema.FeatureChange, result.PrimaryType)
}
