package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkit/internal/domain"
)

func resolvedWith(async <-chan error) domain.Outcome {
	return domain.Resolved(domain.LaunchRequest{Directory: "/Users/x/proj", Environment: domain.EnvMacOS}, async)
}

func TestAwaitLaunch_ClosedChannelIsSuccess(t *testing.T) {
	async := make(chan error)
	close(async)

	outcome := awaitLaunch(resolvedWith(async), time.Second)

	assert.True(t, outcome.OK())
}

func TestAwaitLaunch_ReportedFailure(t *testing.T) {
	async := make(chan error, 1)
	async <- errors.Join(domain.ErrLaunchFailed, errors.New("Unable to find application named 'Fork'"))
	close(async)

	outcome := awaitLaunch(resolvedWith(async), time.Second)

	assert.Equal(t, domain.OutcomeLaunchFailed, outcome.Kind)
	assert.Contains(t, outcome.Message(), "Unable to find application")
}

func TestAwaitLaunch_SilenceWithinGraceIsSuccess(t *testing.T) {
	async := make(chan error)

	start := time.Now()
	outcome := awaitLaunch(resolvedWith(async), 50*time.Millisecond)

	assert.True(t, outcome.OK())
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestAwaitLaunch_ZeroGraceDoesNotWait(t *testing.T) {
	async := make(chan error)

	outcome := awaitLaunch(resolvedWith(async), 0)

	assert.True(t, outcome.OK())
}

func TestOutcomeError(t *testing.T) {
	assert.NoError(t, outcomeError(resolvedWith(nil)))

	err := outcomeError(domain.Failed(domain.ErrNoWorkspace))

	var outcomeErr *OutcomeError
	require.ErrorAs(t, err, &outcomeErr)
	assert.Equal(t, "Fork error: Working folder not found, open a folder and try again", err.Error())
	assert.ErrorIs(t, err, domain.ErrNoWorkspace)
}
