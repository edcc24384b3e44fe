package commits

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Collector reads commit subjects from a git repository.
type Collector struct {
	RepoPath string
}

// MessagesBetween collects the subject line of every commit in fromRef..toRef,
// oldest first.
func (c Collector) MessagesBetween(ctx context.Context, fromRef, toRef string) ([]Commit, error) {
	return c.messages(ctx, fmt.Sprintf("%s..%s", fromRef, toRef))
}

// MessagesInRange collects subjects for an explicit git revision range
// expression such as "v1.2.0..HEAD".
func (c Collector) MessagesInRange(ctx context.Context, rangeSpec string) ([]Commit, error) {
	return c.messages(ctx, rangeSpec)
}

func (c Collector) messages(ctx context.Context, rangeSpec string) ([]Commit, error) {
	repo := c.RepoPath
	if repo == "" {
		repo = "."
	}

	cmd := exec.CommandContext(ctx, "git", "-C", repo, "log", "--reverse", "--pretty=format:%s", rangeSpec)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git log %s: %w", rangeSpec, err)
	}

	return parseSubjects(out), nil
}

func parseSubjects(out []byte) []Commit {
	var commits []Commit
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			commits = append(commits, Commit{Message: line})
		}
	}
	return commits
}
