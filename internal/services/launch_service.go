package services

import (
	"context"
	"errors"
	"fmt"

	"forkit/internal/domain"
	"forkit/internal/logging"
	"forkit/internal/ports"
)

// OpenRequest carries everything one invocation needs.
// Platform and RemoteName are the raw environment signals.
type OpenRequest struct {
	AppName          string
	DetectRepository bool
	ExplicitTarget   string // Optional path or document the command was invoked on
	Override         string // Optional user-configured executable path
	Platform         string
	RemoteName       string
	Workspace        domain.Workspace
}

// LaunchService runs one resolve-and-launch cycle
type LaunchService struct {
	launcher   ports.ProcessLauncher
	locator    *ExecutableLocator
	repos      ports.RepositoryLocator
	resolver   *RootResolver
	translator ports.PathTranslator
}

// NewLaunchService creates a new LaunchService.
// repos may be nil, in which case repository detection is never applied.
func NewLaunchService(
	resolver *RootResolver,
	locator *ExecutableLocator,
	translator ports.PathTranslator,
	launcher ports.ProcessLauncher,
	repos ports.RepositoryLocator,
) *LaunchService {
	return &LaunchService{
		launcher:   launcher,
		locator:    locator,
		repos:      repos,
		resolver:   resolver,
		translator: translator,
	}
}

// Open resolves the directory, prepares it for the environment and spawns Fork.
// It never panics on user-caused conditions; every failure is a tagged outcome.
func (s *LaunchService) Open(ctx context.Context, req OpenRequest) domain.Outcome {
	env := domain.DetectEnvironment(req.Platform, req.RemoteName)
	logging.Logger.Info("Open requested",
		"environment", env,
		"platform", req.Platform,
		"remote", req.RemoteName,
		"roots", len(req.Workspace.Roots),
		"target", req.ExplicitTarget)

	outcome := s.open(ctx, env, req)
	if outcome.OK() {
		logging.Logger.Info("Fork launched",
			"directory", outcome.Request.Directory,
			"executable", outcome.Request.Executable)
	} else {
		logging.Logger.Warn("Open failed", "outcome", outcome.Kind.String(), "error", outcome.Err)
	}
	return outcome
}

func (s *LaunchService) open(ctx context.Context, env domain.Environment, req OpenRequest) domain.Outcome {
	if !env.Supported() {
		return domain.Failed(fmt.Errorf("platform %q: %w", req.Platform, domain.ErrUnsupportedPlatform))
	}

	dir, ok, err := s.resolver.Resolve(ctx, req.Workspace, req.ExplicitTarget)
	if err != nil {
		return domain.Failed(withSentinel(domain.ErrNoWorkspace, err))
	}
	if !ok {
		return domain.Failed(domain.ErrNoWorkspace)
	}

	if req.DetectRepository {
		dir = s.repositoryRoot(dir)
	}

	target := dir
	if env == domain.EnvWindowsWSL {
		target, err = s.translator.ToNativePath(ctx, dir)
		if err != nil {
			return domain.Failed(withSentinel(domain.ErrTranslationFailed, err))
		}
		logging.Logger.Debug("Translated directory", "from", dir, "to", target)
	}

	launchReq := domain.LaunchRequest{
		AppName:     req.AppName,
		Directory:   target,
		Environment: env,
	}

	if env != domain.EnvMacOS {
		exe, err := s.locator.Locate(ctx, env, req.Override)
		if err != nil {
			if errors.Is(err, domain.ErrTranslationFailed) {
				return domain.Failed(err)
			}
			return domain.Failed(withSentinel(domain.ErrNoExecutableFound, err))
		}
		launchReq.Executable = exe
	}

	async, err := s.launcher.Launch(ctx, launchReq)
	if err != nil {
		return domain.Failed(withSentinel(domain.ErrLaunchFailed, err))
	}

	return domain.Resolved(launchReq, async)
}

// repositoryRoot widens dir to its enclosing worktree root when there is one
func (s *LaunchService) repositoryRoot(dir string) string {
	if s.repos == nil {
		return dir
	}

	top, ok, err := s.repos.TopLevel(dir)
	if err != nil {
		logging.Logger.Warn("Repository detection failed, using resolved directory", "dir", dir, "error", err)
		return dir
	}
	if !ok {
		return dir
	}

	if top != dir {
		logging.Logger.Debug("Widened directory to repository root", "from", dir, "to", top)
	}
	return top
}

// withSentinel makes sure err carries sentinel so the outcome tag is right
func withSentinel(sentinel, err error) error {
	if errors.Is(err, sentinel) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
