package ports

import (
	"context"

	"forkit/internal/domain"
)

// ProcessLauncher starts the Git client without waiting for it
type ProcessLauncher interface {
	// Launch spawns the process described by req.
	// The returned error covers spawn-time failures only. The channel reports
	// at most one asynchronous failure of the launch facility and is then closed.
	Launch(ctx context.Context, req domain.LaunchRequest) (<-chan error, error)
}
