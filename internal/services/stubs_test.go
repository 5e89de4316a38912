package services

import (
	"strings"
	"sync"

	"forkit/internal/domain"
)

// prefixContainment treats a path as inside a root when it equals the root
// or continues it after a separator; the innermost root wins
type prefixContainment struct{}

func (prefixContainment) FolderFor(path string, roots []domain.Root) (domain.Root, bool) {
	var best domain.Root
	found := false
	for _, root := range roots {
		if path != root.Path && !strings.HasPrefix(path, strings.TrimSuffix(root.Path, "/")+"/") {
			continue
		}
		if !found || len(root.Path) > len(best.Path) {
			best, found = root, true
		}
	}
	return best, found
}

type mapFS struct {
	mu      sync.Mutex
	checked []string
	present map[string]bool
}

func newMapFS(present ...string) *mapFS {
	fs := &mapFS{present: make(map[string]bool)}
	for _, p := range present {
		fs.present[p] = true
	}
	return fs
}

func (f *mapFS) Exists(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checked = append(f.checked, path)
	return f.present[path]
}

type mapEnv map[string]string

func (e mapEnv) Getenv(key string) string {
	return e[key]
}

func closedChan() <-chan error {
	ch := make(chan error)
	close(ch)
	return ch
}
