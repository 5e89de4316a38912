package cmd

import (
	"fmt"

	adapterworkspace "forkit/internal/adapters/workspace"
	"forkit/internal/domain"
)

// OpenHereCmd opens the folder for an explicit path, as from a context menu
type OpenHereCmd struct {
	WorkspaceFlags
	Target string `arg:"" optional:"" help:"Path or file:// URI (defaults to ambient resolution)"`
}

// Run executes the open-here command
func (o *OpenHereCmd) Run(cli *CLI) error {
	if o.Target == "" {
		return cli.open(o.WorkspaceFlags, "")
	}

	target, err := adapterworkspace.TargetFromArg(o.Target)
	if err != nil {
		return outcomeError(domain.Failed(fmt.Errorf("%w: %w", domain.ErrNoWorkspace, err)))
	}

	return cli.open(o.WorkspaceFlags, target)
}
