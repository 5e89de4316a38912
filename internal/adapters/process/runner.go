package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"forkit/internal/logging"
	"forkit/internal/ports"
)

// ExecRunner implements CommandRunner using os/exec
type ExecRunner struct{}

// Compile-time interface verification
var _ ports.CommandRunner = (*ExecRunner)(nil)

// NewExecRunner creates a new exec-based command runner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Output runs name with args and returns stdout.
// Stderr is folded into the error so helper diagnostics reach the user.
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	logging.Logger.Debug("Running helper command", "command", name, "args", args)

	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%s not found in PATH: %w", name, err)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s failed: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s failed: %w", name, err)
	}

	return output, nil
}
