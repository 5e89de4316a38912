package services

import (
	"context"
	"fmt"

	"forkit/internal/domain"
	"forkit/internal/logging"
	"forkit/internal/ports"
)

// PickerTitle is shown when several roots could be meant
const PickerTitle = "Select a workspace folder to open in Fork"

// RootResolver determines the single directory the user means
type RootResolver struct {
	containment ports.FolderContainment
	picker      ports.RootPicker
}

// NewRootResolver creates a new RootResolver
func NewRootResolver(containment ports.FolderContainment, picker ports.RootPicker) *RootResolver {
	return &RootResolver{
		containment: containment,
		picker:      picker,
	}
}

// Resolve picks a directory with precedence:
// 1. Explicit target: its containing root, or the target itself when outside every root
// 2. Focused file: its containing root
// 3. The only root
// 4. Interactive choice among several roots (cancel is not an error)
// ok is false when nothing could be determined.
func (r *RootResolver) Resolve(ctx context.Context, ws domain.Workspace, explicitTarget string) (string, bool, error) {
	if explicitTarget != "" {
		if root, found := r.containment.FolderFor(explicitTarget, ws.Roots); found {
			logging.Logger.Debug("Explicit target inside root", "target", explicitTarget, "root", root.Path)
			return root.Path, true, nil
		}
		logging.Logger.Debug("Explicit target outside all roots", "target", explicitTarget)
		return explicitTarget, true, nil
	}

	if ws.FocusedFile != "" {
		if root, found := r.containment.FolderFor(ws.FocusedFile, ws.Roots); found {
			logging.Logger.Debug("Using root of focused file", "file", ws.FocusedFile, "root", root.Path)
			return root.Path, true, nil
		}
	}

	switch len(ws.Roots) {
	case 0:
		return "", false, nil
	case 1:
		return ws.Roots[0].Path, true, nil
	}

	items := make([]ports.PickItem, len(ws.Roots))
	for i, root := range ws.Roots {
		items[i] = ports.PickItem{Label: root.Name, Detail: root.Path}
	}

	index, ok, err := r.picker.Pick(ctx, PickerTitle, items)
	if err != nil {
		return "", false, fmt.Errorf("failed to pick workspace folder: %w", err)
	}
	if !ok {
		logging.Logger.Info("Workspace folder selection cancelled")
		return "", false, nil
	}
	if index < 0 || index >= len(ws.Roots) {
		return "", false, fmt.Errorf("picker returned invalid index %d", index)
	}

	return ws.Roots[index].Path, true, nil
}
