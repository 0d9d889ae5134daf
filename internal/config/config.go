// Package config loads the issuemd configuration from
// ~/.config/issuemd/config.toml.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// LabelDef is a label override or addition from a [labels.NAME] section.
type LabelDef struct {
	Color       string `toml:"color" json:"color"`
	Description string `toml:"description" json:"description"`
}

// Config holds the issuemd configuration.
type Config struct {
	Repo       string              `json:"repo"`        // owner/name of the target repository
	PlanFile   string              `json:"plan_file"`   // markdown issue list
	OutputDir  string              `json:"output_dir"`  // per-issue snapshot directory
	Delay      time.Duration       `json:"delay"`       // pause between issue creations
	LabelDelay time.Duration       `json:"label_delay"` // pause between label creations
	Labels     map[string]LabelDef `json:"labels,omitempty"`
}

// MarshalJSON renders the durations as strings ("1s", "200ms") so JSON
// output matches the TOML config format.
func (c Config) MarshalJSON() ([]byte, error) {
	type alias Config
	return json.Marshal(struct {
		alias
		Delay      string `json:"delay"`
		LabelDelay string `json:"label_delay"`
	}{alias(c), c.Delay.String(), c.LabelDelay.String()})
}

// Defaults for the courtesy waits between remote calls.
const (
	DefaultDelay      = time.Second
	DefaultLabelDelay = 200 * time.Millisecond
)

// DefaultOutputDir is where per-issue snapshots are written.
const DefaultOutputDir = "issues/individual"

// DefaultPlanFile is the markdown issue list read when no file is given.
const DefaultPlanFile = "issue-list.md"

// Default returns the default configuration.
func Default() Config {
	return Config{
		PlanFile:   DefaultPlanFile,
		OutputDir:  DefaultOutputDir,
		Delay:      DefaultDelay,
		LabelDelay: DefaultLabelDelay,
	}
}

// rawConfig is the TOML shape before durations are parsed.
type rawConfig struct {
	Repo       string              `toml:"repo"`
	PlanFile   string              `toml:"plan_file"`
	OutputDir  string              `toml:"output_dir"`
	Delay      string              `toml:"delay"`
	LabelDelay string              `toml:"label_delay"`
	Labels     map[string]LabelDef `toml:"labels"`
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "issuemd", "config.toml"), nil
}

// Load reads config from ~/.config/issuemd/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from an explicit path, with the same missing-file
// semantics as Load.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Default()
	if raw.Repo != "" {
		cfg.Repo = raw.Repo
	}
	if raw.PlanFile != "" {
		cfg.PlanFile = raw.PlanFile
	}
	if raw.OutputDir != "" {
		cfg.OutputDir = raw.OutputDir
	}
	cfg.Labels = raw.Labels

	if raw.Delay != "" {
		d, err := time.ParseDuration(raw.Delay)
		if err != nil {
			return Default(), fmt.Errorf("invalid delay %q: %w", raw.Delay, err)
		}
		if d < 0 {
			return Default(), fmt.Errorf("invalid delay %q: must not be negative", raw.Delay)
		}
		cfg.Delay = d
	}
	if raw.LabelDelay != "" {
		d, err := time.ParseDuration(raw.LabelDelay)
		if err != nil {
			return Default(), fmt.Errorf("invalid label_delay %q: %w", raw.LabelDelay, err)
		}
		if d < 0 {
			return Default(), fmt.Errorf("invalid label_delay %q: must not be negative", raw.LabelDelay)
		}
		cfg.LabelDelay = d
	}

	// Expand ~ in paths (the shell doesn't expand inside config files).
	if cfg.PlanFile != "" {
		expanded, err := expandPath(cfg.PlanFile)
		if err != nil {
			return Default(), fmt.Errorf("expand plan_file: %w", err)
		}
		cfg.PlanFile = expanded
	}
	if cfg.OutputDir != "" {
		expanded, err := expandPath(cfg.OutputDir)
		if err != nil {
			return Default(), fmt.Errorf("expand output_dir: %w", err)
		}
		cfg.OutputDir = expanded
	}

	return cfg, nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

const defaultConfig = `# issuemd configuration
# Config location: ~/.config/issuemd/config.toml

# Target repository for labels and issues (owner/name)
# repo = "andrekirst/financials"

# Markdown issue list to parse
# plan_file = "~/projects/financials/.github/issues/issue-list.md"

# Directory for per-issue markdown snapshots
# output_dir = "issues/individual"

# Pause between remote issue creations (rate limiting courtesy)
# delay = "1s"

# Pause between remote label creations
# label_delay = "200ms"

# Label catalog overrides and additions.
# A [labels.NAME] section overrides the built-in definition of NAME,
# or adds NAME to the catalog if unknown. See 'issuemd labels list'.
#
# [labels.priority:high]
# color = "d73a4a"
# description = "Critical for MVP"
#
# [labels.spike]
# color = "c5def5"
# description = "Research spike"
`

// DefaultConfig returns the commented default config file contents.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at ~/.config/issuemd/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
