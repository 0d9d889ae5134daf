// Package submit orchestrates the sequential creation of labels and issues.
//
// Records are processed one at a time in document order with a fixed
// courtesy delay between remote calls. A per-record failure is reported and
// counted; the batch continues.
package submit

import (
	"context"
	"time"

	"github.com/andrekirst/issuemd/internal/catalog"
	"github.com/andrekirst/issuemd/internal/log"
	"github.com/andrekirst/issuemd/internal/plan"
	"github.com/andrekirst/issuemd/internal/snapshot"
)

// Tracker is the remote side of the pipeline. Implemented by
// internal/github.Client; tests substitute fakes.
type Tracker interface {
	ExistingLabels(ctx context.Context) (map[string]bool, error)
	CreateLabel(ctx context.Context, label catalog.Label) error
	CreateIssue(ctx context.Context, issue plan.Issue) (string, error)
}

// Options controls a submission run.
type Options struct {
	DryRun      bool          // suppress all remote calls
	Delay       time.Duration // pause between issue creations
	LabelDelay  time.Duration // pause between label creations
	SnapshotDir string        // where per-issue markdown files go
}

// Runner submits a parsed plan to a tracker.
type Runner struct {
	Tracker Tracker
	Catalog catalog.Catalog
	Options Options
}

// LabelStats summarizes a label sync pass.
type LabelStats struct {
	Created  int
	Existing int
	Failed   int
}

// IssueStats summarizes an issue creation pass.
type IssueStats struct {
	Created int
	Failed  int
}

// SyncLabels creates every catalog label in the remote repo. Labels that
// already exist are skipped; failures are counted, not fatal.
func (r *Runner) SyncLabels(ctx context.Context) (LabelStats, error) {
	l := log.FromContext(ctx)
	var stats LabelStats

	existing, err := r.Tracker.ExistingLabels(ctx)
	if err != nil {
		// Best-effort check; fall through to per-label creation where
		// "already exists" still counts as success.
		l.Debug("label existence check failed", "err", err)
	}

	labels := r.Catalog.Labels()
	for i, label := range labels {
		if existing[label.Name] {
			l.Printf("  label exists: %s\n", label.Name)
			stats.Existing++
			continue
		}

		if err := r.Tracker.CreateLabel(ctx, label); err != nil {
			l.Printf("  ✗ label %s: %v\n", label.Name, err)
			stats.Failed++
		} else {
			l.Printf("  ✓ label created: %s\n", label.Name)
			stats.Created++
		}

		if i < len(labels)-1 {
			if err := wait(ctx, r.Options.LabelDelay); err != nil {
				return stats, err
			}
		}
	}

	return stats, nil
}

// CreateIssues writes a snapshot for every record and creates it remotely,
// in document order. A failed record does not stop the batch.
func (r *Runner) CreateIssues(ctx context.Context, issues []plan.Issue) (IssueStats, error) {
	l := log.FromContext(ctx)
	var stats IssueStats

	for i, issue := range issues {
		l.Printf("[%d/%d] Issue #%d: %s\n", i+1, len(issues), issue.Number, issue.Title)

		path, err := snapshot.Write(r.Options.SnapshotDir, issue)
		if err != nil {
			l.Printf("  ✗ snapshot: %v\n", err)
			stats.Failed++
			continue
		}
		l.Printf("  snapshot: %s\n", path)

		if r.Options.DryRun {
			l.Printf("  [dry run] would create issue #%d\n", issue.Number)
			stats.Created++
			continue
		}

		url, err := r.Tracker.CreateIssue(ctx, issue)
		if err != nil {
			l.Printf("  ✗ %v\n", err)
			stats.Failed++
		} else {
			l.Printf("  ✓ created: %s\n", url)
			stats.Created++
		}

		if i < len(issues)-1 {
			if err := wait(ctx, r.Options.Delay); err != nil {
				return stats, err
			}
		}
	}

	return stats, nil
}

// wait sleeps for the given delay, returning early if the context is
// cancelled.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
