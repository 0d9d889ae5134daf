package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/andrekirst/issuemd/internal/config"
	"github.com/andrekirst/issuemd/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage issuemd configuration.

Config location: ~/.config/issuemd/config.toml`,
		Example: `  issuemd config init   # Create default config
  issuemd config show   # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  issuemd config init      # Create ~/.config/issuemd/config.toml
  issuemd config init -f   # Overwrite existing config
  issuemd config init -s   # Print default config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := output.FromContext(cmd.Context())

			if stdout {
				p.Print(config.DefaultConfig())
				return nil
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			p.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print default config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := output.FromContext(cmd.Context())

			if jsonOutput {
				enc := json.NewEncoder(p.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			p.Printf("repo:        %s\n", orUnset(cfg.Repo))
			p.Printf("plan_file:   %s\n", cfg.PlanFile)
			p.Printf("output_dir:  %s\n", cfg.OutputDir)
			p.Printf("delay:       %s\n", cfg.Delay)
			p.Printf("label_delay: %s\n", cfg.LabelDelay)
			if len(cfg.Labels) > 0 {
				p.Printf("labels:      %d overrides\n", len(cfg.Labels))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
