//go:build basic

package integration

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGitvalueBasicCommands runs the CLI end to end against the project's
// own repository with the SQLite history backend.
func TestGitvalueBasicCommands(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	gitvaluePath := getGitvalueBinary()
	dbPath := filepath.Join(t.TempDir(), "history.db")

	t.Run("version", func(t *testing.T) {
		out := runForOutput(t, gitvaluePath, "version")
		assert.Contains(t, out, "gitvalue CLI")
	})

	t.Run("contributors table", func(t *testing.T) {
		out := runForOutput(t, gitvaluePath, "contributors", "--limit", "5",
			"--history-backend", "sqlite", "--history-db-connect", dbPath)
		assert.Contains(t, out, "Contributors")
		assert.Contains(t, out, "OVERALL SUMMARY")
	})

	t.Run("contributors json", func(t *testing.T) {
		out := runForOutput(t, gitvaluePath, "contributors", "--limit", "5", "--output", "json")
		assert.Contains(t, out, `"value_score"`)
	})

	t.Run("verify", func(t *testing.T) {
		out := runForOutput(t, gitvaluePath, "verify", "--limit", "5")
		assert.Contains(t, out, "Commit Message Verification")
	})

	t.Run("history show", func(t *testing.T) {
		out := runForOutput(t, gitvaluePath, "history", "show",
			"--history-backend", "sqlite", "--history-db-connect", dbPath)
		assert.Contains(t, out, "ANALYSIS RUN HISTORY")
	})

	t.Run("history status", func(t *testing.T) {
		out := runForOutput(t, gitvaluePath, "history", "status",
			"--history-backend", "sqlite", "--history-db-connect", dbPath)
		assert.Contains(t, out, "Connected: true")
	})

	t.Run("config", func(t *testing.T) {
		out := runForOutput(t, gitvaluePath, "config")
		assert.Contains(t, out, "sort-by:")
	})
}

func runForOutput(t *testing.T, bin string, args ...string) string {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Dir = ".." // Run from project root
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	require.NoError(t, err, "command %q failed: %s", strings.Join(args, " "), stderr.String())
	return stdout.String()
}
