//go:build unix

package process

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput_CapturesStdout(t *testing.T) {
	output, err := NewExecRunner().Output(context.Background(), "sh", "-c", "echo hello")

	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(output))
}

func TestOutput_NonZeroExitIncludesStderr(t *testing.T) {
	_, err := NewExecRunner().Output(context.Background(), "sh", "-c", "echo broken >&2; exit 3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Contains(t, err.Error(), "exit status 3")
}

func TestOutput_MissingBinary(t *testing.T) {
	_, err := NewExecRunner().Output(context.Background(), "forkit-definitely-missing-helper")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in PATH")
}
