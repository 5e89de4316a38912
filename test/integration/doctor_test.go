//go:build !windows

package integration_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"forkit/test/integration/harness"
)

func TestDoctor_WSL(t *testing.T) {
	fork := harness.NewFakeFork(t)
	env := wslEnvironment(t, fork, harness.NewFakeTranslator(t))

	result := harness.RunCommand(t, env, "doctor")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "WSL")
	harness.AssertStdoutContains(t, result, "W:/")
	harness.AssertStdoutContains(t, result, fork.Path)
	harness.AssertStdoutContains(t, result, "/mnt/c/Program Files/Fork/Fork.exe")
	harness.AssertStdoutNotContains(t, result, "Fork executable not found")
}

func TestDoctor_TranslatorMissing(t *testing.T) {
	env := wslEnvironment(t, nil, "/nonexistent/wslpath")

	result := harness.RunCommand(t, env, "doctor")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "failed")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
