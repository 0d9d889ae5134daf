package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/andrekirst/issuemd/internal/catalog"
	"github.com/andrekirst/issuemd/internal/config"
	"github.com/andrekirst/issuemd/internal/log"
	"github.com/andrekirst/issuemd/internal/plan"
)

// resolvePlanFile picks the plan file: positional arg > config > default.
func resolvePlanFile(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.PlanFile
}

// resolveRepo picks the target repository: flag > config. Errors when
// neither is set.
func resolveRepo(flagRepo string) (string, error) {
	if flagRepo != "" {
		return flagRepo, nil
	}
	if cfg.Repo != "" {
		return cfg.Repo, nil
	}
	return "", fmt.Errorf("no repository configured: use -R owner/name or set repo in the config file")
}

// resolveOutputDir picks the snapshot directory: flag > config.
func resolveOutputDir(flagDir string) string {
	if flagDir != "" {
		return flagDir
	}
	return cfg.OutputDir
}

// loadPlan reads and parses the plan file, warning about skipped blocks.
func loadPlan(ctx context.Context, path string) (plan.Result, error) {
	l := log.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return plan.Result{}, fmt.Errorf("issue list not found: %s", path)
		}
		return plan.Result{}, fmt.Errorf("read issue list: %w", err)
	}

	res := plan.Parse(string(data))
	l.Debug("parsed plan", "file", path, "issues", len(res.Issues), "skipped", len(res.Skipped))

	for _, s := range res.Skipped {
		l.Printf("Warning: skipping malformed issue block at line %d: %s\n", s.Line, s.Heading)
	}

	return res, nil
}

// effectiveCatalog builds the label catalog: built-in defaults merged with
// [labels.NAME] config sections.
func effectiveCatalog() catalog.Catalog {
	return catalog.Default().Merge(catalogOverrides(cfg))
}

// catalogOverrides converts config label sections to catalog entries.
func catalogOverrides(c config.Config) map[string]catalog.Label {
	if len(c.Labels) == 0 {
		return nil
	}
	overrides := make(map[string]catalog.Label, len(c.Labels))
	for name, def := range c.Labels {
		overrides[name] = catalog.Label{
			Name:        name,
			Color:       def.Color,
			Description: def.Description,
		}
	}
	return overrides
}
