package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"forkit/internal/domain"
	"forkit/internal/logging"
	"forkit/internal/services"
)

// WorkspaceFlags describe the editor context of an invocation
type WorkspaceFlags struct {
	File      string   `help:"Focused file, used to choose its workspace folder" env:"FORKIT_FOCUSED_FILE"`
	Root      []string `help:"Workspace folder as [NAME=]PATH (repeatable, defaults to the current directory)" placeholder:"[NAME=]PATH"`
	Workspace string   `help:"VS Code .code-workspace file listing the workspace folders" env:"FORKIT_WORKSPACE"`
}

// OpenCmd opens the folder resolved from the ambient workspace
type OpenCmd struct {
	WorkspaceFlags
}

// Run executes the open command
func (o *OpenCmd) Run(cli *CLI) error {
	return cli.open(o.WorkspaceFlags, "")
}

// OutcomeError is returned when an open did not succeed.
// Its message is the single line shown to the user.
type OutcomeError struct {
	Outcome domain.Outcome
}

func (e *OutcomeError) Error() string {
	return e.Outcome.Message()
}

func (e *OutcomeError) Unwrap() error {
	return e.Outcome.Err
}

// open runs one resolve-and-launch cycle and waits briefly for late launch failures
func (c *CLI) open(flags WorkspaceFlags, target string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ws, err := c.Container.Loader.Load(flags.Root, flags.Workspace, flags.File)
	if err != nil {
		logging.Logger.Error("Failed to load workspace", "error", err)
		return outcomeError(domain.Failed(fmt.Errorf("%w: %w", domain.ErrNoWorkspace, err)))
	}

	signals := c.Container.Detector.Signals(c.Remote)
	outcome := c.Container.LaunchService.Open(ctx, services.OpenRequest{
		AppName:          c.AppName,
		DetectRepository: c.DetectRepository,
		ExplicitTarget:   target,
		Override:         c.ForkPath,
		Platform:         signals.Platform,
		RemoteName:       signals.RemoteName,
		Workspace:        ws,
	})

	if outcome.OK() {
		outcome = awaitLaunch(outcome, time.Duration(c.LaunchGrace)*time.Second)
	}

	return outcomeError(outcome)
}

// awaitLaunch waits up to grace for the launch facility to report a failure.
// Silence within the window counts as success.
func awaitLaunch(outcome domain.Outcome, grace time.Duration) domain.Outcome {
	if outcome.Async == nil || grace <= 0 {
		return outcome
	}

	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case err, ok := <-outcome.Async:
		if ok && err != nil {
			logging.Logger.Warn("Launch failed after spawn", "error", err)
			return domain.Failed(err)
		}
	case <-timer.C:
		logging.Logger.Debug("No launch failure reported within grace period", "grace", grace)
	}

	return outcome
}

func outcomeError(outcome domain.Outcome) error {
	if outcome.OK() {
		return nil
	}
	return &OutcomeError{Outcome: outcome}
}
