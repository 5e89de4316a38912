package ports

import "context"

// CommandRunner runs short-lived helper commands and captures their stdout
type CommandRunner interface {
	// Output runs the command and returns its standard output.
	// A non-zero exit is returned as an error.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}
