package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrekirst/issuemd/internal/output"
	"github.com/andrekirst/issuemd/internal/ui"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list [file]",
		Short:   "List the issues parsed from the plan",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Parse the markdown issue list and show what would be created,
without touching GitHub.`,
		Example: `  issuemd list
  issuemd list issue-list.md
  issuemd list --json | jq '.[].title'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			res, err := loadPlan(ctx, resolvePlanFile(args))
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(p.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(res.Issues)
			}

			if len(res.Issues) == 0 {
				p.Println("No issues found")
				return nil
			}

			rows := make([][]string, 0, len(res.Issues))
			for _, is := range res.Issues {
				rows = append(rows, []string{
					fmt.Sprintf("%d", is.Number),
					is.Phase,
					is.Estimate,
					strings.Join(is.Labels, ","),
					is.Title,
				})
			}

			p.Print(ui.RenderTable(
				[]string{"NUMBER", "PHASE", "ESTIMATE", "LABELS", "TITLE"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
