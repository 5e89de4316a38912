package ports

import "forkit/internal/domain"

// FolderContainment answers which workspace root owns a path
type FolderContainment interface {
	// FolderFor returns the root containing path, if any
	FolderFor(path string, roots []domain.Root) (domain.Root, bool)
}

// RepositoryLocator finds the git worktree enclosing a directory
type RepositoryLocator interface {
	// TopLevel returns the worktree root containing dir.
	// ok is false when dir is not inside a repository.
	TopLevel(dir string) (top string, ok bool, err error)
}
