package services

import (
	"context"

	"forkit/internal/domain"
	"forkit/internal/ports"
)

// Diagnosis summarizes what an open would see on this machine
type Diagnosis struct {
	AppName        string
	Candidates     []CandidateStatus
	CandidatesErr  error
	Environment    domain.Environment
	Platform       string
	RemoteName     string
	TranslatorErr  error
	TranslatorRoot string // Native form of "/" under WSL
}

// DiagnosticsService reports the environment and executable candidates
type DiagnosticsService struct {
	locator    *ExecutableLocator
	translator ports.PathTranslator
}

// NewDiagnosticsService creates a new DiagnosticsService
func NewDiagnosticsService(locator *ExecutableLocator, translator ports.PathTranslator) *DiagnosticsService {
	return &DiagnosticsService{
		locator:    locator,
		translator: translator,
	}
}

// Diagnose never launches anything
func (s *DiagnosticsService) Diagnose(ctx context.Context, platform, remoteName, override, appName string) Diagnosis {
	env := domain.DetectEnvironment(platform, remoteName)
	d := Diagnosis{
		AppName:     appName,
		Environment: env,
		Platform:    platform,
		RemoteName:  remoteName,
	}

	if !env.Supported() {
		return d
	}

	if env == domain.EnvWindowsWSL {
		d.TranslatorRoot, d.TranslatorErr = s.translator.ToNativePath(ctx, "/")
	}

	d.Candidates, d.CandidatesErr = s.locator.Inspect(ctx, env, override)
	return d
}
