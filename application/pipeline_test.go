package application

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecRunnerSuccess(t *testing.T) {
	r := NewExecRunner(nil)
	err := r.Run(context.Background(),
		Step{Tool: "sh", Args: []string{"-c", "exit 0"}},
		Step{Tool: "sh", Args: []string{"-c", "exit 0"}},
	)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestExecRunnerNonzeroExit(t *testing.T) {
	r := NewExecRunner(nil)
	err := r.Run(context.Background(),
		Step{Tool: "sh", Args: []string{"-c", "echo broken >&2; exit 3"}},
	)
	if err == nil {
		t.Fatal("expected error for nonzero exit")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error does not carry stderr: %v", err)
	}
}

func TestExecRunnerStopsAtFirstFailure(t *testing.T) {
	witness := filepath.Join(t.TempDir(), "witness")

	r := NewExecRunner(nil)
	err := r.Run(context.Background(),
		Step{Tool: "sh", Args: []string{"-c", "exit 1"}},
		Step{Tool: "sh", Args: []string{"-c", "touch " + witness}},
	)
	if err == nil {
		t.Fatal("expected error")
	}
	if _, statErr := os.Stat(witness); statErr == nil {
		t.Error("step after a failing step still ran")
	}
}

func TestExecRunnerStdoutCapture(t *testing.T) {
	out := filepath.Join(t.TempDir(), "captured")

	r := NewExecRunner(nil)
	err := r.Run(context.Background(),
		Step{Tool: "sh", Args: []string{"-c", "echo payload"}, StdoutFile: out},
	)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "payload" {
		t.Errorf("captured %q, want payload", string(data))
	}
}

func TestExecRunnerUnknownTool(t *testing.T) {
	r := NewExecRunner(nil)
	err := r.Run(context.Background(), Step{Tool: "definitely-not-a-real-tool"})
	if err == nil {
		t.Fatal("expected error for unresolvable tool")
	}
}

func TestExecRunnerToolPathOverride(t *testing.T) {
	// Point a made-up tool name at sh via the override map.
	sh, err := lookupSh(t)
	if err != nil {
		t.Skip("sh not available")
	}

	r := NewExecRunner(map[string]string{"DeRez": sh})
	if err := r.Run(context.Background(), Step{Tool: "DeRez", Args: []string{"-c", "exit 0"}}); err != nil {
		t.Fatalf("Run with override failed: %v", err)
	}
}

func lookupSh(t *testing.T) (string, error) {
	t.Helper()
	for _, p := range []string{"/bin/sh", "/usr/bin/sh"} {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", os.ErrNotExist
}
