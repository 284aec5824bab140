// Package application: this file runs the external macOS utilities the icon
// restore depends on (sips, DeRez, Rez). Each invocation is a typed Step with
// an argv slice; paths are passed as discrete arguments, never interpolated
// into a shell string. A nonzero exit from any step aborts the pipeline.
package application

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/FlyfishO25/IconRestore/utilities/fileManagement"
)

// Step is a single external utility invocation.
type Step struct {
	Tool string // program name, resolved via PATH unless overridden
	Args []string

	// StdoutFile, when set, captures the step's standard output into the
	// named file (DeRez emits the extracted resource on stdout).
	StdoutFile string
}

// Runner executes a sequence of pipeline steps, stopping at the first
// failure. Implementations must honor ctx cancellation.
type Runner interface {
	Run(ctx context.Context, steps ...Step) error
}

// execRunner is the production Runner. It resolves each tool through PATH,
// with optional per-tool path overrides from configuration.
type execRunner struct {
	paths map[string]string
}

// NewExecRunner returns a Runner backed by os/exec. The paths map overrides
// PATH resolution per tool name and may be nil.
func NewExecRunner(paths map[string]string) Runner {
	return &execRunner{paths: paths}
}

func (r *execRunner) resolve(tool string) (string, error) {
	if p, ok := r.paths[tool]; ok && p != "" {
		return p, nil
	}
	return fileManagement.FindProgramPath(tool)
}

func (r *execRunner) Run(ctx context.Context, steps ...Step) error {
	for _, step := range steps {
		if err := r.runStep(ctx, step); err != nil {
			return err
		}
	}
	return nil
}

func (r *execRunner) runStep(ctx context.Context, step Step) error {
	toolPath, err := r.resolve(step.Tool)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, toolPath, step.Args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if step.StdoutFile != "" {
		out, err := os.Create(step.StdoutFile)
		if err != nil {
			return fmt.Errorf("%s: cannot capture output: %v", step.Tool, err)
		}
		defer out.Close()
		cmd.Stdout = out
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v: %v\n%s", step.Tool, step.Args, err, stderr.String())
	}
	return nil
}
