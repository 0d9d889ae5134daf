package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/andrekirst/issuemd/internal/github"
	"github.com/andrekirst/issuemd/internal/output"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Check that the environment is ready for a sync",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Verify the prerequisites for creating issues: the plan file exists,
the gh CLI is installed, and gh is authenticated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := output.FromContext(cmd.Context())
			problems := 0

			check := func(ok bool, label string, detail string) {
				if ok {
					p.Printf("✓ %s\n", label)
					return
				}
				p.Printf("✗ %s: %s\n", label, detail)
				problems++
			}

			if _, err := os.Stat(cfg.PlanFile); err != nil {
				check(false, "plan file", fmt.Sprintf("%s not found", cfg.PlanFile))
			} else {
				check(true, fmt.Sprintf("plan file: %s", cfg.PlanFile), "")
			}

			if _, err := exec.LookPath("gh"); err != nil {
				check(false, "gh CLI", "not in PATH (https://cli.github.com)")
				check(false, "gh auth", "skipped, gh not installed")
			} else {
				check(true, "gh CLI installed", "")
				if err := github.Check(); err != nil {
					check(false, "gh auth", err.Error())
				} else {
					check(true, "gh authenticated", "")
				}
			}

			if cfg.Repo == "" {
				p.Printf("  note: no default repo configured, pass -R owner/name to sync\n")
			} else {
				check(true, fmt.Sprintf("default repo: %s", cfg.Repo), "")
			}

			if problems > 0 {
				return fmt.Errorf("%d problems found", problems)
			}
			p.Println("All checks passed")
			return nil
		},
	}

	return cmd
}
