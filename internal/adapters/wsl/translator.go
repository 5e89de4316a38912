package wsl

import (
	"context"
	"fmt"
	"strings"

	"forkit/internal/domain"
	"forkit/internal/logging"
	"forkit/internal/ports"
)

// DefaultHelper is the translation utility shipped with WSL
const DefaultHelper = "wslpath"

const (
	toWindowsFlag = "-w"
	toWSLFlag     = "-u"
)

// Translator converts paths by running the WSL translation helper
type Translator struct {
	helper string
	runner ports.CommandRunner
}

// Compile-time interface verification
var _ ports.PathTranslator = (*Translator)(nil)

// NewTranslator creates a translator that runs helper (wslpath when empty)
func NewTranslator(runner ports.CommandRunner, helper string) *Translator {
	if helper == "" {
		helper = DefaultHelper
	}
	return &Translator{
		helper: helper,
		runner: runner,
	}
}

// ToNativePath converts a WSL path to its Windows form
func (t *Translator) ToNativePath(ctx context.Context, wslPath string) (string, error) {
	return t.translate(ctx, toWindowsFlag, wslPath)
}

// ToWSLPath converts a Windows path to its WSL form
func (t *Translator) ToWSLPath(ctx context.Context, nativePath string) (string, error) {
	return t.translate(ctx, toWSLFlag, nativePath)
}

// translate never falls back to the input: a wrong-namespace path would make
// later existence checks meaningless.
func (t *Translator) translate(ctx context.Context, flag, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path: %w", domain.ErrTranslationFailed)
	}

	output, err := t.runner.Output(ctx, t.helper, flag, path)
	if err != nil {
		return "", fmt.Errorf("%s %s %q: %v: %w", t.helper, flag, path, err, domain.ErrTranslationFailed)
	}

	translated := firstLine(string(output))
	if translated == "" {
		return "", fmt.Errorf("%s %s %q returned no output: %w", t.helper, flag, path, domain.ErrTranslationFailed)
	}

	logging.Logger.Debug("Translated path", "from", path, "to", translated, "flag", flag)
	return translated, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexAny(s, "\r\n"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
