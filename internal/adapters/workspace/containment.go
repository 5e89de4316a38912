package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"forkit/internal/domain"
	"forkit/internal/ports"
)

// Containment decides folder ownership the way an editor host does:
// symlinks are resolved, comparison is per path segment, and the innermost
// root wins when roots nest.
type Containment struct{}

// Compile-time interface verification
var _ ports.FolderContainment = (*Containment)(nil)

// NewContainment creates a new containment checker
func NewContainment() *Containment {
	return &Containment{}
}

// FolderFor returns the innermost root containing path
func (c *Containment) FolderFor(path string, roots []domain.Root) (domain.Root, bool) {
	if path == "" {
		return domain.Root{}, false
	}

	var best domain.Root
	bestLen := -1
	for _, root := range roots {
		rootPath, target := normalizePair(root.Path, path)
		if !within(rootPath, target) {
			continue
		}
		if len(rootPath) > bestLen {
			best = root
			bestLen = len(rootPath)
		}
	}

	return best, bestLen >= 0
}

// normalizePair puts both paths in a comparable form. Windows-style paths are
// compared case-insensitively with forward slashes; local paths are made
// absolute with symlinks resolved.
func normalizePair(root, target string) (string, string) {
	if domain.LooksLikeWindowsPath(root) || domain.LooksLikeWindowsPath(target) {
		return normalizeWindows(root), normalizeWindows(target)
	}
	return resolveLocal(root), resolveLocal(target)
}

func normalizeWindows(p string) string {
	p = strings.ToLower(strings.ReplaceAll(p, `\`, "/"))
	if len(p) > 3 || (len(p) == 3 && p[1] != ':') {
		p = strings.TrimRight(p, "/")
	}
	return p
}

// resolveLocal evaluates symlinks for the longest existing prefix of p so
// not-yet-created files still resolve under their real parent.
func resolveLocal(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}

	existing := abs
	var rest []string
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return abs
		}
		rest = append([]string{filepath.Base(existing)}, rest...)
		existing = parent
	}

	resolved, err := filepath.EvalSymlinks(existing)
	if err != nil {
		return abs
	}
	return filepath.Join(append([]string{resolved}, rest...)...)
}

func within(root, target string) bool {
	if root == target {
		return true
	}
	if strings.Contains(root, ":") || strings.HasPrefix(root, "//") {
		// Normalized Windows form
		prefix := root
		if !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
		return strings.HasPrefix(target, prefix)
	}

	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}
