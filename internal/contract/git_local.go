package contract

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amritasroy/gitvalue/schema"
)

// Record and field separators used in the git log format string. The patch
// text follows the last field and runs until the next record separator.
const (
	recordSep = '\x1e'
	fieldSep  = "\x1f"
)

// commitLogFormat emits one machine-parseable header per commit:
// hash, author name, author date (iso-strict), parent hashes, body.
const commitLogFormat = "%x1e%H%x1f%an%x1f%ad%x1f%P%x1f%B%x1f"

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// ValidateRepository implements the GitClient interface. It rejects missing
// paths, non-repositories and bare repositories before any analysis begins.
func (c *LocalGitClient) ValidateRepository(ctx context.Context, repoPath string) error {
	if _, err := os.Stat(repoPath); err != nil {
		return fmt.Errorf("%w: cannot access %q: %v", ErrRepository, repoPath, err)
	}

	out, err := c.Run(ctx, repoPath, "rev-parse", "--is-bare-repository")
	if err != nil {
		return fmt.Errorf("%w: %q is not a git repository. Verify the path or run 'git init'", ErrRepository, repoPath)
	}
	if strings.TrimSpace(string(out)) == "true" {
		return fmt.Errorf("%w: repository at %q is bare and has no working data", ErrRepository, repoPath)
	}
	return nil
}

// IterCommits implements the GitClient interface. It streams 'git log -p'
// output newest first and parses each record into a CommitRecord. The
// process is torn down as soon as fn stops the iteration, so windowed
// analyses never pay for the full history.
func (c *LocalGitClient) IterCommits(ctx context.Context, repoPath string, fn func(*schema.CommitRecord) bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	args := []string{
		"-C", repoPath,
		"log",
		"-p",
		"--no-color",
		"--date=iso-strict",
		"--format=" + commitLogFormat,
	}
	cmd := exec.CommandContext(ctx, "git", args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open git log pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start git log: %w", err)
	}

	reader := bufio.NewReaderSize(stdout, 1<<20)
	stopped := false

	for {
		raw, readErr := reader.ReadString(recordSep)
		record := strings.TrimSuffix(raw, string(recordSep))

		if record != "" {
			commit, ok := parseCommitRecord(record)
			if ok && !fn(commit) {
				stopped = true
				break
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			cancel()
			_ = cmd.Wait()
			return fmt.Errorf("failed reading git log output: %w", readErr)
		}
	}

	if stopped {
		// Tear down the producer; its exit status is meaningless now.
		cancel()
		_ = cmd.Wait()
		return nil
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("git log failed in %q: %w", repoPath, err)
	}
	return nil
}

// parseCommitRecord parses one record of the custom log format. Records
// whose headers cannot be parsed are dropped (ok=false); records whose patch
// cannot be decoded carry DiffErr and degrade to zero stats downstream.
func parseCommitRecord(record string) (*schema.CommitRecord, bool) {
	parts := strings.SplitN(record, fieldSep, 6)
	if len(parts) != 6 {
		return nil, false
	}

	hash := strings.TrimSpace(parts[0])
	author := parts[1]
	timestamp, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, false
	}

	commit := &schema.CommitRecord{
		Hash:      hash,
		Author:    author,
		Timestamp: timestamp,
		Message:   strings.TrimRight(parts[4], "\n"),
		HasParent: strings.TrimSpace(parts[3]) != "",
	}

	patch := parts[5]
	if !utf8.ValidString(patch) {
		commit.DiffErr = errors.New("patch is not valid UTF-8")
		return commit, true
	}
	commit.Diffs = parsePatch(patch)
	return commit, true
}

// parsePatch splits unified diff text into per-file diffs, keeping the raw
// added-line blob ('+' markers preserved) and the removed-line count.
func parsePatch(patch string) []schema.FileDiff {
	var diffs []schema.FileDiff

	var path string
	var added []string
	var removed int
	inFile := false

	flush := func() {
		if inFile && path != "" {
			diffs = append(diffs, schema.NewFileDiff(path, strings.Join(added, "\n"), removed))
		}
		path = ""
		added = nil
		removed = 0
	}

	for _, line := range strings.Split(patch, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git "):
			flush()
			inFile = true
		case strings.HasPrefix(line, "+++ "):
			if p, ok := stripPathPrefix(line[4:], "b/"); ok {
				path = p
			}
		case strings.HasPrefix(line, "--- "):
			// Keep the pre-image path as a fallback for deletions.
			if path == "" {
				if p, ok := stripPathPrefix(line[4:], "a/"); ok {
					path = p
				}
			}
		case strings.HasPrefix(line, "+"):
			if inFile {
				added = append(added, line)
			}
		case strings.HasPrefix(line, "-"):
			if inFile {
				removed++
			}
		}
	}
	flush()

	return diffs
}

// stripPathPrefix extracts a usable path from a diff header target,
// rejecting /dev/null and stripping the a/ or b/ prefix git adds.
func stripPathPrefix(target, prefix string) (string, bool) {
	target = strings.TrimSpace(target)
	if target == "/dev/null" || target == "" {
		return "", false
	}
	return strings.TrimPrefix(target, prefix), true
}
