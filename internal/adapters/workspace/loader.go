package workspace

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"forkit/internal/domain"
	"forkit/internal/logging"
)

// Loader builds the workspace context from CLI input
type Loader struct {
	getwd func() (string, error)
}

// NewLoader creates a loader that falls back to the current directory
func NewLoader() *Loader {
	return &Loader{getwd: os.Getwd}
}

// codeWorkspace is the subset of a VS Code .code-workspace file we read
type codeWorkspace struct {
	Folders []struct {
		Name string `json:"name"`
		Path string `json:"path"`
	} `json:"folders"`
}

// Load builds a workspace from --root arguments ([NAME=]PATH), an optional
// .code-workspace file and an optional focused file. With neither roots nor a
// workspace file, the current directory is the single root.
func (l *Loader) Load(rootArgs []string, workspaceFile, focusedFile string) (domain.Workspace, error) {
	var ws domain.Workspace

	for _, arg := range rootArgs {
		root, err := parseRootArg(arg)
		if err != nil {
			return domain.Workspace{}, err
		}
		ws.Roots = append(ws.Roots, root)
	}

	if workspaceFile != "" {
		roots, err := readWorkspaceFile(workspaceFile)
		if err != nil {
			return domain.Workspace{}, err
		}
		ws.Roots = append(ws.Roots, roots...)
	}

	if len(rootArgs) == 0 && workspaceFile == "" {
		cwd, err := l.getwd()
		if err != nil {
			return domain.Workspace{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		ws.Roots = []domain.Root{{Name: baseName(cwd), Path: cwd}}
	}

	if focusedFile != "" {
		ws.FocusedFile = absPath(focusedFile)
	}

	logging.Logger.Debug("Workspace loaded", "roots", len(ws.Roots), "focused_file", ws.FocusedFile)
	return ws, nil
}

// TargetFromArg converts an open-here argument, a plain path or a file:// URI,
// to a filesystem path.
func TargetFromArg(arg string) (string, error) {
	if !strings.HasPrefix(strings.ToLower(arg), "file://") {
		return absPath(arg), nil
	}

	u, err := url.Parse(arg)
	if err != nil {
		return "", fmt.Errorf("invalid file URI %q: %w", arg, err)
	}

	p := u.Path
	// file:///c:/Users/x
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		return strings.ReplaceAll(p[1:], "/", `\`), nil
	}
	// file://server/share/x
	if u.Host != "" && u.Host != "localhost" {
		return `\\` + u.Host + strings.ReplaceAll(p, "/", `\`), nil
	}
	return p, nil
}

func parseRootArg(arg string) (domain.Root, error) {
	if arg == "" {
		return domain.Root{}, fmt.Errorf("empty --root value")
	}

	name, path := "", arg
	if idx := strings.Index(arg, "="); idx > 0 && !strings.ContainsAny(arg[:idx], `/\`) {
		name, path = arg[:idx], arg[idx+1:]
	}
	if path == "" {
		return domain.Root{}, fmt.Errorf("--root %q has no path", arg)
	}

	path = absPath(path)
	if name == "" {
		name = baseName(path)
	}
	return domain.Root{Name: name, Path: path}, nil
}

func readWorkspaceFile(file string) ([]domain.Root, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace file: %w", err)
	}

	var cw codeWorkspace
	if err := json.Unmarshal(data, &cw); err != nil {
		return nil, fmt.Errorf("invalid workspace file %s: %w", file, err)
	}

	baseDir := filepath.Dir(absPath(file))
	roots := make([]domain.Root, 0, len(cw.Folders))
	for _, folder := range cw.Folders {
		// Remote folders carry a uri instead of a path
		if folder.Path == "" {
			continue
		}
		path := folder.Path
		if !filepath.IsAbs(path) && !domain.LooksLikeWindowsPath(path) {
			path = filepath.Join(baseDir, path)
		}
		name := folder.Name
		if name == "" {
			name = baseName(path)
		}
		roots = append(roots, domain.Root{Name: name, Path: path})
	}

	return roots, nil
}

func absPath(p string) string {
	if domain.LooksLikeWindowsPath(p) || filepath.IsAbs(p) {
		return p
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func baseName(p string) string {
	trimmed := strings.TrimRight(p, `/\`)
	if idx := strings.LastIndexAny(trimmed, `/\`); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if trimmed == "" {
		return p
	}
	return trimmed
}
