package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own FORKIT_HOME.
type TestEnvironment struct {
	ForkitHome string
	WorkDir    string // Working directory of the command, inherited when empty
	extraEnv   map[string]string
	tb         testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp FORKIT_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		ForkitHome: tb.TempDir(),
		extraEnv:   make(map[string]string),
		tb:         tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out FORKIT_* and WSL detection variables and sets:
//   - FORKIT_HOME to the temp directory
//   - FORKIT_DEBUG to empty string (disables debug logging)
//   - FORKIT_LAUNCH_GRACE_SECONDS to 0
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	dropKeys := map[string]bool{
		"WSL_DISTRO_NAME": true,
		"WSL_INTEROP":     true,
	}
	for k := range e.extraEnv {
		dropKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "FORKIT_") || dropKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"FORKIT_HOME="+e.ForkitHome,
		"FORKIT_DEBUG=",
		"FORKIT_LAUNCH_GRACE_SECONDS=0",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.ForkitHome, "settings.json")
}

// WriteSettings writes settings.json into the isolated FORKIT_HOME.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
