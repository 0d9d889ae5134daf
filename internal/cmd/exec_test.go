package cmd

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestOutputCapturesStdout(t *testing.T) {
	out, err := Output(exec.Command("echo", "hello"))
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "hello" {
		t.Errorf("output = %q, want %q", got, "hello")
	}
}

func TestRunReturnsStderrOnFailure(t *testing.T) {
	err := Run(exec.Command("sh", "-c", "echo boom >&2; exit 1"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %q, want it to contain stderr text", err)
	}
}

func TestOutputContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := OutputContext(ctx, "", "sleep", "5")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("error = %q, want timeout message", err)
	}
}
