package launcher

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"forkit/internal/domain"
	"forkit/internal/logging"
	"forkit/internal/ports"
)

// DefaultShell interprets the macOS open command line
const DefaultShell = "/bin/sh"

// Launcher implements ports.ProcessLauncher
type Launcher struct {
	shell string
}

// Compile-time interface verification
var _ ports.ProcessLauncher = (*Launcher)(nil)

// NewLauncher creates a new process launcher
func NewLauncher() *Launcher {
	return &Launcher{shell: DefaultShell}
}

// Launch starts Fork for req and returns without waiting for it.
// Only the macOS open facility is observed after spawn; a direct launch
// returns an already-closed channel because the app's exit code is not ours.
func (l *Launcher) Launch(ctx context.Context, req domain.LaunchRequest) (<-chan error, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("launch cancelled: %w", err)
	}

	name, args, facility, err := l.commandFor(req)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Launching Fork", "command", name, "args", args, "environment", req.Environment)

	// Not CommandContext: the app must outlive this invocation
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	var stderr bytes.Buffer
	if facility {
		cmd.Stderr = &stderr
	}
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w: %w", name, err, domain.ErrLaunchFailed)
	}

	if !facility {
		go func() {
			if err := cmd.Wait(); err != nil {
				logging.Logger.Debug("Fork exited", "error", err, "executable", name)
			}
		}()
		done := make(chan error)
		close(done)
		return done, nil
	}

	done := make(chan error, 1)
	go func() {
		defer close(done)
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("open facility failed", "error", err, "stderr", stderr.String())
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				done <- fmt.Errorf("open -a %q failed: %s: %w", req.AppName, msg, domain.ErrLaunchFailed)
				return
			}
			done <- fmt.Errorf("open -a %q failed: %v: %w", req.AppName, err, domain.ErrLaunchFailed)
		}
	}()
	return done, nil
}

// commandFor builds the spawn arguments. facility is true when the spawned
// process is the macOS open facility rather than Fork itself.
func (l *Launcher) commandFor(req domain.LaunchRequest) (name string, args []string, facility bool, err error) {
	if req.Directory == "" {
		return "", nil, false, fmt.Errorf("no directory to open: %w", domain.ErrLaunchFailed)
	}

	switch req.Environment {
	case domain.EnvMacOS:
		appName := req.AppName
		if appName == "" {
			appName = "Fork"
		}
		// The only branch that goes through a shell, so the only one that escapes
		line := fmt.Sprintf(`open -a "%s" "%s"`, shellEscape(appName), shellEscape(req.Directory))
		return l.shell, []string{"-c", line}, true, nil
	case domain.EnvWindowsNative, domain.EnvWindowsWSL:
		if req.Executable == "" {
			return "", nil, false, fmt.Errorf("no executable for %s: %w", req.Environment, domain.ErrLaunchFailed)
		}
		return req.Executable, []string{req.Directory}, false, nil
	default:
		return "", nil, false, fmt.Errorf("cannot launch on %s: %w", req.Environment, domain.ErrUnsupportedPlatform)
	}
}

var doubleQuoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"`", "\\`",
)

// shellEscape escapes s for use inside a double-quoted sh word
func shellEscape(s string) string {
	return doubleQuoteEscaper.Replace(s)
}
