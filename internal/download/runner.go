package download

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Runner executes the external download tool. The orchestrator only
// cares about the exit status; tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a Runner backed by os/exec. The tool's stdout is
// discarded; stderr passes through so failures keep their context.
func NewRunner() Runner {
	return &execRunner{stdout: io.Discard, stderr: os.Stderr}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	return cmd.Run()
}
