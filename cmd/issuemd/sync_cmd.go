package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrekirst/issuemd/internal/github"
	"github.com/andrekirst/issuemd/internal/log"
	"github.com/andrekirst/issuemd/internal/submit"
	"github.com/andrekirst/issuemd/internal/ui"
)

func newSyncCmd() *cobra.Command {
	var (
		repoFlag  string
		outputDir string
		dryRun    bool
		yes       bool
		delay     time.Duration
	)

	cmd := &cobra.Command{
		Use:     "sync [file]",
		Short:   "Create labels and issues from the plan",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Parse the markdown issue list and create every record in GitHub.

Labels from the catalog are created first, then issues one at a time in
document order, with a fixed delay between creations to respect rate
limits. Each record is also written to a per-issue snapshot file.

A failed record is reported and counted; the run continues with the next
one. The command exits non-zero if any record failed.`,
		Example: `  issuemd sync                          # Plan file from config
  issuemd sync issue-list.md -R org/repo  # Explicit file and repo
  issuemd sync --dry-run                # Snapshots only, no GitHub calls
  issuemd sync --delay 2s               # Slower submission rate
  issuemd sync -y                       # Don't ask after label failures`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			var repo string
			if !dryRun {
				var err error
				repo, err = resolveRepo(repoFlag)
				if err != nil {
					return err
				}
				if err := github.Check(); err != nil {
					return err
				}
			}

			planPath := resolvePlanFile(args)
			res, err := loadPlan(ctx, planPath)
			if err != nil {
				return err
			}
			if len(res.Issues) == 0 {
				return fmt.Errorf("no issue blocks found in %s (expected '### Issue N: Title' headings)", planPath)
			}
			l.Printf("Parsed %d issues from %s\n", len(res.Issues), planPath)

			if !cmd.Flags().Changed("delay") {
				delay = cfg.Delay
			}

			cat := effectiveCatalog()
			runner := &submit.Runner{
				Tracker: github.NewClient(repo),
				Catalog: cat,
				Options: submit.Options{
					DryRun:      dryRun,
					Delay:       delay,
					LabelDelay:  cfg.LabelDelay,
					SnapshotDir: resolveOutputDir(outputDir),
				},
			}

			if dryRun {
				l.Printf("[dry run] would create %d labels\n", cat.Len())
			} else {
				l.Printf("Creating %d labels...\n", cat.Len())
				lstats, err := runner.SyncLabels(ctx)
				if err != nil {
					return err
				}
				l.Printf("Labels: %d created, %d existing, %d failed\n",
					lstats.Created, lstats.Existing, lstats.Failed)

				if lstats.Failed > 0 && !yes {
					if !ui.IsInteractive() {
						return fmt.Errorf("%d labels failed to create; re-run with --yes to continue anyway", lstats.Failed)
					}
					ok, err := ui.Confirm(fmt.Sprintf("%d labels failed to create. Issues may end up missing labels. Continue?", lstats.Failed))
					if err != nil {
						return err
					}
					if !ok {
						return fmt.Errorf("aborted")
					}
				}
			}

			l.Printf("Creating issues...\n")
			istats, err := runner.CreateIssues(ctx, res.Issues)
			if err != nil {
				return err
			}

			l.Printf("Done: %d created, %d failed (snapshots in %s)\n",
				istats.Created, istats.Failed, runner.Options.SnapshotDir)

			if istats.Failed > 0 {
				return fmt.Errorf("%d of %d issues failed", istats.Failed, len(res.Issues))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&repoFlag, "repo", "R", "", "Target repository (owner/name)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Snapshot directory (default from config)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Parse and write snapshots only, no GitHub calls")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Continue without asking after label failures")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Delay between issue creations (default from config)")

	return cmd
}
