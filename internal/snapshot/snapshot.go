// Package snapshot writes per-issue markdown snapshot files.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrekirst/issuemd/internal/plan"
)

// Filename returns the snapshot file name for an issue number,
// e.g. "issue-007.md".
func Filename(number int) string {
	return fmt.Sprintf("issue-%03d.md", number)
}

// Render produces the snapshot document for one issue: title heading,
// labels, milestone, estimate, a horizontal rule, then the body.
func Render(issue plan.Issue) string {
	labels := make([]string, len(issue.Labels))
	for i, l := range issue.Labels {
		labels[i] = "`" + l + "`"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Issue #%d: %s\n", issue.Number, issue.Title)
	b.WriteString("\n")
	fmt.Fprintf(&b, "**Labels:** %s\n", strings.Join(labels, ", "))
	fmt.Fprintf(&b, "**Milestone:** %s\n", issue.Phase)
	fmt.Fprintf(&b, "**Estimate:** %s\n", issue.Estimate)
	b.WriteString("\n---\n\n")
	b.WriteString(issue.Body)
	b.WriteString("\n")
	return b.String()
}

// Write renders the issue and writes it to dir, creating the directory if
// needed. Returns the written file path.
func Write(dir string, issue plan.Issue) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path := filepath.Join(dir, Filename(issue.Number))
	if err := os.WriteFile(path, []byte(Render(issue)), 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}
