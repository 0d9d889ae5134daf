package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrekirst/issuemd/internal/log"
	"github.com/andrekirst/issuemd/internal/snapshot"
)

func newExportCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:     "export [file]",
		Short:   "Write per-issue snapshot files without touching GitHub",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Parse the markdown issue list and write one snapshot file per record
to the output directory. No labels or issues are created.`,
		Example: `  issuemd export
  issuemd export issue-list.md -o out/issues`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			planPath := resolvePlanFile(args)
			res, err := loadPlan(ctx, planPath)
			if err != nil {
				return err
			}
			if len(res.Issues) == 0 {
				return fmt.Errorf("no issue blocks found in %s", planPath)
			}

			dir := resolveOutputDir(outputDir)
			for _, is := range res.Issues {
				path, err := snapshot.Write(dir, is)
				if err != nil {
					return fmt.Errorf("write snapshot for issue %d: %w", is.Number, err)
				}
				l.Debug("wrote snapshot", "file", path)
			}

			l.Printf("Wrote %d snapshots to %s\n", len(res.Issues), dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Snapshot directory (default from config)")

	return cmd
}
