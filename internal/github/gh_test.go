package github

import (
	"reflect"
	"testing"

	"github.com/andrekirst/issuemd/internal/catalog"
	"github.com/andrekirst/issuemd/internal/plan"
)

func TestLabelArgs(t *testing.T) {
	got := labelArgs("owner/repo", catalog.Label{
		Name:        "priority:high",
		Color:       "d73a4a",
		Description: "Critical for MVP",
	})
	want := []string{"label", "create", "priority:high",
		"--repo", "owner/repo",
		"--color", "d73a4a",
		"--description", "Critical for MVP",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("labelArgs = %v, want %v", got, want)
	}
}

func TestIssueArgs(t *testing.T) {
	tests := []struct {
		name  string
		issue plan.Issue
		want  []string
	}{
		{
			name: "with labels and phase",
			issue: plan.Issue{
				Number: 1,
				Title:  "Set up solution",
				Labels: []string{"setup", "priority:high"},
				Phase:  "Phase 1: Foundation",
			},
			want: []string{"issue", "create",
				"--repo", "owner/repo",
				"--title", "Set up solution",
				"--body-file", "/tmp/body.md",
				"--label", "setup,priority:high",
				"--milestone", "Phase 1: Foundation",
			},
		},
		{
			name: "no phase omits milestone",
			issue: plan.Issue{
				Number: 999,
				Title:  "Out of range",
				Labels: []string{"core"},
				Phase:  plan.NoPhase,
			},
			want: []string{"issue", "create",
				"--repo", "owner/repo",
				"--title", "Out of range",
				"--body-file", "/tmp/body.md",
				"--label", "core",
			},
		},
		{
			name: "no labels omits label flag",
			issue: plan.Issue{
				Number: 2,
				Title:  "Untagged",
				Phase:  "Phase 1: Foundation",
			},
			want: []string{"issue", "create",
				"--repo", "owner/repo",
				"--title", "Untagged",
				"--body-file", "/tmp/body.md",
				"--milestone", "Phase 1: Foundation",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := issueArgs("owner/repo", tt.issue, "/tmp/body.md")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("issueArgs = %v, want %v", got, tt.want)
			}
		})
	}
}
