package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "smallest value possible",
			input:    0.0,
			expected: LowValue,
		},
		{
			name:     "just before moderate",
			input:    39.9,
			expected: LowValue,
		},
		{
			name:     "exactly moderate",
			input:    40.0,
			expected: ModerateValue,
		},
		{
			name:     "just before high",
			input:    59.9,
			expected: ModerateValue,
		},
		{
			name:     "exactly high",
			input:    60.0,
			expected: HighValue,
		},
		{
			name:     "just before exceptional",
			input:    79.9,
			expected: HighValue,
		},
		{
			name:     "exactly exceptional",
			input:    80.0,
			expected: ExceptionalValue,
		},
		{
			name:     "top of the scale",
			input:    100.0,
			expected: ExceptionalValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	// Colored output still carries the plain label text.
	tests := []struct {
		input    float64
		expected string
	}{
		{90.0, ExceptionalValue},
		{70.0, HighValue},
		{50.0, ModerateValue},
		{10.0, LowValue},
	}

	for _, tt := range tests {
		assert.Contains(t, GetColorLabel(tt.input), tt.expected)
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path means stdout", func(t *testing.T) {
		f, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, f)
	})

	t.Run("path creates the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		f, err := SelectOutputFile(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.NotEqual(t, os.Stdout, f)
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	})
}

func TestGetHistoryDBFilePath(t *testing.T) {
	path := GetHistoryDBFilePath()
	assert.True(t, strings.HasSuffix(path, ".gitvalue_history.db"))
}
