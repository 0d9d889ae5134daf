// Package github talks to GitHub through the gh CLI.
//
// All durable effects are delegated to gh; this package only builds
// arguments, applies per-call timeouts and parses gh's output.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/andrekirst/issuemd/internal/catalog"
	"github.com/andrekirst/issuemd/internal/cmd"
	"github.com/andrekirst/issuemd/internal/plan"
)

const (
	labelTimeout = 10 * time.Second
	issueTimeout = 30 * time.Second
)

// Client creates labels and issues in one repository via the gh CLI.
type Client struct {
	Repo string // owner/name
}

// NewClient creates a client for the given owner/name repository.
func NewClient(repo string) *Client {
	return &Client{Repo: repo}
}

// ExistingLabels fetches the names of labels already present in the repo.
// Best effort: used to skip redundant create calls.
func (c *Client) ExistingLabels(ctx context.Context) (map[string]bool, error) {
	ctx, cancel := context.WithTimeout(ctx, labelTimeout)
	defer cancel()

	out, err := cmd.OutputContext(ctx, "", "gh", "label", "list",
		"--repo", c.Repo,
		"--json", "name",
		"--limit", "1000")
	if err != nil {
		return nil, fmt.Errorf("gh label list failed: %w", err)
	}

	var labels []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(out, &labels); err != nil {
		return nil, fmt.Errorf("failed to parse gh output: %w", err)
	}

	existing := make(map[string]bool, len(labels))
	for _, l := range labels {
		existing[l.Name] = true
	}
	return existing, nil
}

// CreateLabel creates one label. A label that already exists is success.
func (c *Client) CreateLabel(ctx context.Context, label catalog.Label) error {
	ctx, cancel := context.WithTimeout(ctx, labelTimeout)
	defer cancel()

	err := cmd.RunContext(ctx, "", "gh", labelArgs(c.Repo, label)...)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "already exists") {
			return nil
		}
		return fmt.Errorf("gh label create failed: %w", err)
	}
	return nil
}

// CreateIssue creates one issue and returns its URL. The body is passed to
// gh via a temporary file.
func (c *Client) CreateIssue(ctx context.Context, issue plan.Issue) (string, error) {
	bodyFile, err := os.CreateTemp("", "issuemd-body-*.md")
	if err != nil {
		return "", fmt.Errorf("create body file: %w", err)
	}
	defer os.Remove(bodyFile.Name())

	if _, err := bodyFile.WriteString(issue.Body); err != nil {
		bodyFile.Close()
		return "", fmt.Errorf("write body file: %w", err)
	}
	if err := bodyFile.Close(); err != nil {
		return "", fmt.Errorf("write body file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, issueTimeout)
	defer cancel()

	out, err := cmd.OutputContext(ctx, "", "gh", issueArgs(c.Repo, issue, bodyFile.Name())...)
	if err != nil {
		return "", fmt.Errorf("gh issue create failed: %w", err)
	}

	// gh issue create prints the new issue URL on stdout.
	return strings.TrimSpace(string(out)), nil
}

// labelArgs builds the gh arguments for creating one label.
func labelArgs(repo string, label catalog.Label) []string {
	return []string{"label", "create", label.Name,
		"--repo", repo,
		"--color", label.Color,
		"--description", label.Description,
	}
}

// issueArgs builds the gh arguments for creating one issue. The milestone
// flag is omitted for records without a phase.
func issueArgs(repo string, issue plan.Issue, bodyFile string) []string {
	args := []string{"issue", "create",
		"--repo", repo,
		"--title", issue.Title,
		"--body-file", bodyFile,
	}
	if len(issue.Labels) > 0 {
		args = append(args, "--label", strings.Join(issue.Labels, ","))
	}
	if issue.Phase != plan.NoPhase {
		args = append(args, "--milestone", issue.Phase)
	}
	return args
}
