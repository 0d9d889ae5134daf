package submit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrekirst/issuemd/internal/catalog"
	"github.com/andrekirst/issuemd/internal/plan"
)

// fakeTracker records calls and fails on demand.
type fakeTracker struct {
	existing      map[string]bool
	existingErr   error
	failLabels    map[string]bool
	failIssues    map[int]bool
	labelCalls    []string
	issueCalls    []int
	existingCalls int
}

func (f *fakeTracker) ExistingLabels(ctx context.Context) (map[string]bool, error) {
	f.existingCalls++
	return f.existing, f.existingErr
}

func (f *fakeTracker) CreateLabel(ctx context.Context, label catalog.Label) error {
	f.labelCalls = append(f.labelCalls, label.Name)
	if f.failLabels[label.Name] {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeTracker) CreateIssue(ctx context.Context, issue plan.Issue) (string, error) {
	f.issueCalls = append(f.issueCalls, issue.Number)
	if f.failIssues[issue.Number] {
		return "", errors.New("boom")
	}
	return fmt.Sprintf("https://github.com/owner/repo/issues/%d", issue.Number), nil
}

func testIssues(numbers ...int) []plan.Issue {
	issues := make([]plan.Issue, len(numbers))
	for i, n := range numbers {
		issues[i] = plan.Issue{
			Number:   n,
			Title:    fmt.Sprintf("Issue %d", n),
			Phase:    plan.PhaseFor(n),
			Estimate: "1h",
			Body:     "body",
		}
	}
	return issues
}

func TestCreateIssuesContinuesAfterFailure(t *testing.T) {
	tracker := &fakeTracker{failIssues: map[int]bool{2: true}}
	r := &Runner{
		Tracker: tracker,
		Options: Options{SnapshotDir: t.TempDir()},
	}

	stats, err := r.CreateIssues(context.Background(), testIssues(1, 2, 3))
	if err != nil {
		t.Fatalf("CreateIssues returned error: %v", err)
	}

	if stats.Created != 2 || stats.Failed != 1 {
		t.Errorf("stats = %+v, want Created=2 Failed=1", stats)
	}
	if len(tracker.issueCalls) != 3 {
		t.Errorf("issue calls = %v, want all three attempted", tracker.issueCalls)
	}
}

func TestCreateIssuesFailureCountMatchesSimulated(t *testing.T) {
	tracker := &fakeTracker{failIssues: map[int]bool{1: true, 3: true, 5: true}}
	r := &Runner{
		Tracker: tracker,
		Options: Options{SnapshotDir: t.TempDir()},
	}

	stats, err := r.CreateIssues(context.Background(), testIssues(1, 2, 3, 4, 5))
	if err != nil {
		t.Fatal(err)
	}
	if stats.Failed != 3 {
		t.Errorf("Failed = %d, want 3", stats.Failed)
	}
	if stats.Created != 2 {
		t.Errorf("Created = %d, want 2", stats.Created)
	}
}

func TestCreateIssuesDryRunSkipsTracker(t *testing.T) {
	tracker := &fakeTracker{}
	dir := t.TempDir()
	r := &Runner{
		Tracker: tracker,
		Options: Options{DryRun: true, SnapshotDir: dir},
	}

	stats, err := r.CreateIssues(context.Background(), testIssues(1, 2))
	if err != nil {
		t.Fatal(err)
	}

	if len(tracker.issueCalls) != 0 {
		t.Errorf("dry run made remote calls: %v", tracker.issueCalls)
	}
	if stats.Created != 2 {
		t.Errorf("Created = %d, want 2", stats.Created)
	}

	// Snapshots are still written in dry-run mode.
	for _, name := range []string{"issue-001.md", "issue-002.md"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing snapshot %s: %v", name, err)
		}
	}
}

func TestSyncLabelsSkipsExisting(t *testing.T) {
	tracker := &fakeTracker{existing: map[string]bool{"setup": true}}
	r := &Runner{
		Tracker: tracker,
		Catalog: catalog.New([]catalog.Label{
			{Name: "setup", Color: "0075ca"},
			{Name: "core", Color: "0075ca"},
		}),
	}

	stats, err := r.SyncLabels(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if stats.Existing != 1 || stats.Created != 1 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want Existing=1 Created=1", stats)
	}
	if len(tracker.labelCalls) != 1 || tracker.labelCalls[0] != "core" {
		t.Errorf("label calls = %v, want only core", tracker.labelCalls)
	}
}

func TestSyncLabelsToleratesExistenceCheckFailure(t *testing.T) {
	tracker := &fakeTracker{existingErr: errors.New("gh label list failed")}
	r := &Runner{
		Tracker: tracker,
		Catalog: catalog.New([]catalog.Label{{Name: "setup"}}),
	}

	stats, err := r.SyncLabels(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Created != 1 {
		t.Errorf("stats = %+v, want Created=1", stats)
	}
}

func TestSyncLabelsCountsFailures(t *testing.T) {
	tracker := &fakeTracker{failLabels: map[string]bool{"core": true}}
	r := &Runner{
		Tracker: tracker,
		Catalog: catalog.New([]catalog.Label{
			{Name: "setup"},
			{Name: "core"},
			{Name: "domain"},
		}),
	}

	stats, err := r.SyncLabels(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Failed != 1 || stats.Created != 2 {
		t.Errorf("stats = %+v, want Created=2 Failed=1", stats)
	}
}

func TestWaitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := wait(ctx, 1e9); err == nil {
		t.Error("expected context error from cancelled wait")
	}
}
