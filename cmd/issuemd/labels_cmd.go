package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrekirst/issuemd/internal/github"
	"github.com/andrekirst/issuemd/internal/log"
	"github.com/andrekirst/issuemd/internal/output"
	"github.com/andrekirst/issuemd/internal/submit"
	"github.com/andrekirst/issuemd/internal/ui"
)

func newLabelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "labels",
		Short:   "Inspect and sync the label catalog",
		GroupID: GroupLabels,
		Long: `The label catalog is the built-in set of labels referenced by issue
plans, optionally overridden per label in the config file.`,
	}

	cmd.AddCommand(newLabelsListCmd())
	cmd.AddCommand(newLabelsSyncCmd())

	return cmd
}

func newLabelsListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the label catalog",
		Args:  cobra.NoArgs,
		Example: `  issuemd labels list
  issuemd labels list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := output.FromContext(cmd.Context())
			labels := effectiveCatalog().Labels()

			if jsonOutput {
				enc := json.NewEncoder(p.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(labels)
			}

			rows := make([][]string, 0, len(labels))
			for _, l := range labels {
				rows = append(rows, []string{l.Name, l.Color, l.Description})
			}
			p.Print(ui.RenderTable([]string{"NAME", "COLOR", "DESCRIPTION"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newLabelsSyncCmd() *cobra.Command {
	var (
		repoFlag string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Create all catalog labels in the repository",
		Args:  cobra.NoArgs,
		Long: `Create every catalog label in the target repository. Labels that
already exist are left untouched; failures are counted, not fatal.`,
		Example: `  issuemd labels sync -R org/repo
  issuemd labels sync --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			cat := effectiveCatalog()

			if dryRun {
				for _, label := range cat.Labels() {
					l.Printf("  [dry run] would create label: %s\n", label.Name)
				}
				l.Printf("[dry run] %d labels total\n", cat.Len())
				return nil
			}

			repo, err := resolveRepo(repoFlag)
			if err != nil {
				return err
			}
			if err := github.Check(); err != nil {
				return err
			}

			runner := &submit.Runner{
				Tracker: github.NewClient(repo),
				Catalog: cat,
				Options: submit.Options{LabelDelay: cfg.LabelDelay},
			}

			stats, err := runner.SyncLabels(ctx)
			if err != nil {
				return err
			}
			l.Printf("Labels: %d created, %d existing, %d failed\n",
				stats.Created, stats.Existing, stats.Failed)
			if stats.Failed > 0 {
				return fmt.Errorf("%d labels failed to create", stats.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&repoFlag, "repo", "R", "", "Target repository (owner/name)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "List what would be created, no GitHub calls")

	return cmd
}
