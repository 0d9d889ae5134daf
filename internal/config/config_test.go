package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Delay != DefaultDelay {
		t.Errorf("Delay = %v, want %v", cfg.Delay, DefaultDelay)
	}
	if cfg.LabelDelay != DefaultLabelDelay {
		t.Errorf("LabelDelay = %v, want %v", cfg.LabelDelay, DefaultLabelDelay)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}
	if cfg.PlanFile != DefaultPlanFile {
		t.Errorf("PlanFile = %q, want %q", cfg.PlanFile, DefaultPlanFile)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg.Delay != DefaultDelay {
		t.Errorf("Delay = %v, want default %v", cfg.Delay, DefaultDelay)
	}
}

func TestLoadFileFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
repo = "andrekirst/financials"
plan_file = "plans/issue-list.md"
output_dir = "out"
delay = "2s"
label_delay = "500ms"

[labels.spike]
color = "c5def5"
description = "Research spike"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Repo != "andrekirst/financials" {
		t.Errorf("Repo = %q", cfg.Repo)
	}
	if cfg.PlanFile != "plans/issue-list.md" {
		t.Errorf("PlanFile = %q", cfg.PlanFile)
	}
	if cfg.Delay != 2*time.Second {
		t.Errorf("Delay = %v, want 2s", cfg.Delay)
	}
	if cfg.LabelDelay != 500*time.Millisecond {
		t.Errorf("LabelDelay = %v, want 500ms", cfg.LabelDelay)
	}
	spike, ok := cfg.Labels["spike"]
	if !ok {
		t.Fatal("missing [labels.spike] section")
	}
	if spike.Color != "c5def5" || spike.Description != "Research spike" {
		t.Errorf("spike = %+v", spike)
	}
}

func TestLoadFileInvalidDelay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`delay = "soon"`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for unparseable delay")
	}
}

func TestLoadFileNegativeDelay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`delay = "-1s"`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for negative delay")
	}
}

func TestLoadFileInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("repo = [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestMarshalJSON(t *testing.T) {
	cfg := Default()
	cfg.LabelDelay = 500 * time.Millisecond
	cfg.Labels = map[string]LabelDef{
		"spike": {Color: "c5def5", Description: "Research spike"},
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	got := string(data)
	for _, want := range []string{
		`"delay":"1s"`,
		`"label_delay":"500ms"`,
		`"color":"c5def5"`,
		`"description":"Research spike"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON output missing %s:\n%s", want, got)
		}
	}
}

func TestDefaultConfigIsValidTOML(t *testing.T) {
	content := DefaultConfig()
	var raw rawConfig
	if err := toml.Unmarshal([]byte(content), &raw); err != nil {
		t.Errorf("DefaultConfig() produces invalid TOML: %v\nContent:\n%s", err, content)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandPath("~/plans/issue-list.md")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(home, "plans", "issue-list.md")
	if got != want {
		t.Errorf("expandPath = %q, want %q", got, want)
	}

	got, err = expandPath("/absolute/path.md")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/absolute/path.md" {
		t.Errorf("absolute path changed: %q", got)
	}
}
