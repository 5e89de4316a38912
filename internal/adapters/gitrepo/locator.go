package gitrepo

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"forkit/internal/logging"
	"forkit/internal/ports"
)

// Locator finds enclosing worktrees with go-git, without shelling out to git
type Locator struct{}

// Compile-time interface verification
var _ ports.RepositoryLocator = (*Locator)(nil)

// NewLocator creates a new repository locator
func NewLocator() *Locator {
	return &Locator{}
}

// TopLevel returns the root of the worktree containing dir.
// Bare repositories and directories outside any repository report ok=false.
func (l *Locator) TopLevel(dir string) (string, bool, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			logging.Logger.Debug("Directory is not inside a git repository", "path", absPath)
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to open repository at %s: %w", absPath, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get worktree: %w", err)
	}

	top := worktree.Filesystem.Root()
	logging.Logger.Debug("Found enclosing worktree", "path", absPath, "top_level", top)
	return top, true, nil
}
