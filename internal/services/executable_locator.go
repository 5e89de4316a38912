package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"forkit/internal/domain"
	"forkit/internal/logging"
	"forkit/internal/ports"
)

// WSL fallbacks on the default C: mount
var wslDefaultCandidates = []string{
	"/mnt/c/Program Files/Fork/Fork.exe",
	"/mnt/c/Program Files (x86)/Fork/Fork.exe",
}

// CandidateStatus is one candidate with the result of its existence check
type CandidateStatus struct {
	Exists bool
	Path   string
}

// ExecutableLocator finds the Fork executable for an environment
type ExecutableLocator struct {
	env        ports.EnvReader
	fs         ports.FileSystem
	translator ports.PathTranslator
}

// NewExecutableLocator creates a new ExecutableLocator
func NewExecutableLocator(env ports.EnvReader, fs ports.FileSystem, translator ports.PathTranslator) *ExecutableLocator {
	return &ExecutableLocator{
		env:        env,
		fs:         fs,
		translator: translator,
	}
}

// Candidates returns the ordered candidate list, highest priority first.
// The override always comes first. Under WSL every candidate is a WSL path.
// macOS has no candidates: Fork is opened by application name there.
func (l *ExecutableLocator) Candidates(ctx context.Context, env domain.Environment, override string) ([]string, error) {
	var candidates []string

	switch env {
	case domain.EnvMacOS:
		return nil, nil
	case domain.EnvWindowsNative:
		if override != "" {
			candidates = append(candidates, override)
		}
		candidates = append(candidates, l.windowsDefaults()...)
	case domain.EnvWindowsWSL:
		if override != "" {
			wslOverride := override
			if domain.LooksLikeWindowsPath(override) {
				translated, err := l.translator.ToWSLPath(ctx, override)
				if err != nil {
					return nil, fmt.Errorf("failed to translate fork_path: %w", err)
				}
				wslOverride = translated
			}
			candidates = append(candidates, wslOverride)
		}
		candidates = append(candidates, wslDefaultCandidates...)
	default:
		return nil, fmt.Errorf("no executable candidates for %s: %w", env, domain.ErrUnsupportedPlatform)
	}

	return dedupe(candidates), nil
}

// Locate returns the first candidate that exists on disk
func (l *ExecutableLocator) Locate(ctx context.Context, env domain.Environment, override string) (string, error) {
	statuses, err := l.Inspect(ctx, env, override)
	if err != nil {
		return "", err
	}

	for _, status := range statuses {
		if status.Exists {
			logging.Logger.Info("Found Fork executable", "path", status.Path, "environment", env)
			return status.Path, nil
		}
	}

	logging.Logger.Warn("No Fork executable found", "environment", env, "candidates", len(statuses))
	return "", fmt.Errorf("checked %d locations: %w", len(statuses), domain.ErrNoExecutableFound)
}

// Inspect checks every candidate concurrently, preserving priority order
func (l *ExecutableLocator) Inspect(ctx context.Context, env domain.Environment, override string) ([]CandidateStatus, error) {
	candidates, err := l.Candidates(ctx, env, override)
	if err != nil {
		return nil, err
	}

	statuses := make([]CandidateStatus, len(candidates))
	var g errgroup.Group
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			statuses[i] = CandidateStatus{Path: candidate, Exists: l.fs.Exists(candidate)}
			return nil
		})
	}
	_ = g.Wait()

	logging.Logger.Debug("Checked executable candidates", "environment", env, "candidates", statuses)
	return statuses, nil
}

// windowsDefaults lists the per-user install first, then the machine-wide ones.
// Unset variables skip their candidates.
func (l *ExecutableLocator) windowsDefaults() []string {
	var defaults []string

	localAppData := l.env.Getenv("LOCALAPPDATA")
	if localAppData == "" {
		if profile := l.env.Getenv("USERPROFILE"); profile != "" {
			localAppData = domain.JoinWindowsPath(profile, "AppData", "Local")
		}
	}
	if localAppData != "" {
		defaults = append(defaults,
			domain.JoinWindowsPath(localAppData, "Fork", "Fork.exe"),
			domain.JoinWindowsPath(localAppData, "Fork", "current", "Fork.exe"),
		)
	}

	for _, key := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
		if dir := l.env.Getenv(key); dir != "" {
			defaults = append(defaults, domain.JoinWindowsPath(dir, "Fork", "Fork.exe"))
		}
	}

	return defaults
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	result := make([]string, 0, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		result = append(result, p)
	}
	return result
}
