package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	m "selectest.dev/pkg/selectest/internal/model"
)

// DefaultRevision is the revision changes are compared against when none is given.
const DefaultRevision = "HEAD"

// ChangedFileDetector finds the files touched by the change under test.
type ChangedFileDetector interface {
	// ChangedFiles lists files modified relative to revision plus untracked
	// files. Deleted files are not reported.
	ChangedFiles(ctx context.Context, revision string) (m.ChangedFiles, error)
}

// GitRunner runs a git sub-command in workDir and returns its stdout.
type GitRunner func(ctx context.Context, workDir string, args ...string) (string, error)

// GitChangedFileDetector detects changes with the git command line.
type GitChangedFileDetector struct {
	workDir string
	timeout time.Duration
	run     GitRunner
}

// NewGitChangedFileDetector constructs a detector for the repository at workDir.
func NewGitChangedFileDetector(workDir string) *GitChangedFileDetector {
	return &GitChangedFileDetector{
		workDir: workDir,
		timeout: 30 * time.Second,
		run:     runGit,
	}
}

// NewGitChangedFileDetectorWithRunner constructs a detector that shells out through run.
func NewGitChangedFileDetectorWithRunner(workDir string, run GitRunner) *GitChangedFileDetector {
	detector := NewGitChangedFileDetector(workDir)
	detector.run = run

	return detector
}

// ChangedFiles implements ChangedFileDetector.
func (d *GitChangedFileDetector) ChangedFiles(ctx context.Context, revision string) (m.ChangedFiles, error) {
	if revision == "" {
		revision = DefaultRevision
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	diff, err := d.run(ctx, d.workDir, "diff", "--name-only", "--diff-filter=d", revision)
	if err != nil {
		return nil, fmt.Errorf("git diff against %s: %w", revision, err)
	}

	untracked, err := d.run(ctx, d.workDir, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, fmt.Errorf("git ls-files: %w", err)
	}

	paths := append(splitLines(diff), splitLines(untracked)...)

	return m.NewChangedFiles(paths...), nil
}

func splitLines(output string) []string {
	lines := strings.Split(output, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

func runGit(ctx context.Context, workDir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
