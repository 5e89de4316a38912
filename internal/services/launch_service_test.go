package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"forkit/internal/domain"
	portsmocks "forkit/internal/ports/mocks"
)

type launchFixture struct {
	fs         *mapFS
	launcher   *portsmocks.MockProcessLauncher
	picker     *portsmocks.MockRootPicker
	repos      *portsmocks.MockRepositoryLocator
	service    *LaunchService
	translator *portsmocks.MockPathTranslator
}

func newLaunchFixture(t *testing.T, env mapEnv, present ...string) *launchFixture {
	f := &launchFixture{
		fs:         newMapFS(present...),
		launcher:   portsmocks.NewMockProcessLauncher(t),
		picker:     portsmocks.NewMockRootPicker(t),
		repos:      portsmocks.NewMockRepositoryLocator(t),
		translator: portsmocks.NewMockPathTranslator(t),
	}
	f.service = NewLaunchService(
		NewRootResolver(prefixContainment{}, f.picker),
		NewExecutableLocator(env, f.fs, f.translator),
		f.translator,
		f.launcher,
		f.repos,
	)
	return f
}

func singleRoot(path string) domain.Workspace {
	return domain.Workspace{Roots: []domain.Root{{Name: "proj", Path: path}}}
}

func TestLaunchService_MacOSLaunchesByName(t *testing.T) {
	f := newLaunchFixture(t, mapEnv{})
	expected := domain.LaunchRequest{
		AppName:     "Fork",
		Directory:   "/Users/x/proj",
		Environment: domain.EnvMacOS,
	}
	f.launcher.EXPECT().Launch(mock.Anything, expected).Return(closedChan(), nil).Once()

	outcome := f.service.Open(context.Background(), OpenRequest{
		AppName:   "Fork",
		Platform:  "darwin",
		Workspace: singleRoot("/Users/x/proj"),
	})

	require.True(t, outcome.OK(), outcome.Message())
	assert.Equal(t, domain.OutcomeResolved, outcome.Kind)
	assert.Equal(t, expected, *outcome.Request)
	assert.Empty(t, f.fs.checked, "macOS must not probe executable candidates")
}

func TestLaunchService_WindowsLaunchesFoundExecutable(t *testing.T) {
	f := newLaunchFixture(t, windowsEnv, `C:\Program Files\Fork\Fork.exe`)
	f.launcher.EXPECT().Launch(mock.Anything, domain.LaunchRequest{
		AppName:     "Fork",
		Directory:   `C:\src\proj`,
		Environment: domain.EnvWindowsNative,
		Executable:  `C:\Program Files\Fork\Fork.exe`,
	}).Return(closedChan(), nil).Once()

	outcome := f.service.Open(context.Background(), OpenRequest{
		AppName:   "Fork",
		Platform:  "win32",
		Workspace: singleRoot(`C:\src\proj`),
	})

	assert.True(t, outcome.OK(), outcome.Message())
}

func TestLaunchService_WindowsNoExecutableFound(t *testing.T) {
	// Launcher mock has no expectations: nothing may be spawned
	f := newLaunchFixture(t, windowsEnv)

	outcome := f.service.Open(context.Background(), OpenRequest{
		AppName:   "Fork",
		Platform:  "win32",
		Workspace: singleRoot(`C:\src\proj`),
	})

	assert.Equal(t, domain.OutcomeNoExecutableFound, outcome.Kind)
	assert.Equal(t, "Fork error: Fork executable not found, set fork_path and try again", outcome.Message())
}

func TestLaunchService_WSLTranslatesDirectoryAndUsesWSLExecutable(t *testing.T) {
	f := newLaunchFixture(t, mapEnv{}, "/mnt/c/Program Files/Fork/Fork.exe")
	f.translator.EXPECT().ToNativePath(mock.Anything, "/home/u/proj").
		Return(`\\wsl.localhost\Ubuntu\home\u\proj`, nil).Once()
	f.launcher.EXPECT().Launch(mock.Anything, domain.LaunchRequest{
		AppName:     "Fork",
		Directory:   `\\wsl.localhost\Ubuntu\home\u\proj`,
		Environment: domain.EnvWindowsWSL,
		Executable:  "/mnt/c/Program Files/Fork/Fork.exe",
	}).Return(closedChan(), nil).Once()

	outcome := f.service.Open(context.Background(), OpenRequest{
		AppName:    "Fork",
		Platform:   "linux",
		RemoteName: "wsl",
		Workspace:  singleRoot("/home/u/proj"),
	})

	assert.True(t, outcome.OK(), outcome.Message())
}

func TestLaunchService_WSLTranslationFailed(t *testing.T) {
	f := newLaunchFixture(t, mapEnv{}, "/mnt/c/Program Files/Fork/Fork.exe")
	f.translator.EXPECT().ToNativePath(mock.Anything, "/home/u/proj").
		Return("", errors.New("wslpath: exit status 1")).Once()

	outcome := f.service.Open(context.Background(), OpenRequest{
		Platform:   "linux",
		RemoteName: "wsl",
		Workspace:  singleRoot("/home/u/proj"),
	})

	assert.Equal(t, domain.OutcomeTranslationFailed, outcome.Kind)
	assert.ErrorIs(t, outcome.Err, domain.ErrTranslationFailed)
	assert.Contains(t, outcome.Message(), "wslpath: exit status 1")
	assert.Empty(t, f.fs.checked, "no executable lookup after a failed translation")
}

func TestLaunchService_UnsupportedPlatform(t *testing.T) {
	for _, platform := range []string{"linux", "freebsd", ""} {
		t.Run(platform, func(t *testing.T) {
			f := newLaunchFixture(t, mapEnv{})

			outcome := f.service.Open(context.Background(), OpenRequest{
				Platform:       platform,
				ExplicitTarget: "/tmp/x",
			})

			assert.Equal(t, domain.OutcomeUnsupportedPlatform, outcome.Kind)
			assert.Equal(t, "Fork error: Unsupported platform. Only macOS, Windows and WSL are supported.", outcome.Message())
		})
	}
}

func TestLaunchService_NoWorkspace(t *testing.T) {
	f := newLaunchFixture(t, mapEnv{})

	outcome := f.service.Open(context.Background(), OpenRequest{Platform: "darwin"})

	assert.Equal(t, domain.OutcomeNoWorkspace, outcome.Kind)
	assert.Equal(t, "Fork error: Working folder not found, open a folder and try again", outcome.Message())
}

func TestLaunchService_PickerCancelledIsNoWorkspace(t *testing.T) {
	f := newLaunchFixture(t, mapEnv{})
	f.picker.EXPECT().Pick(mock.Anything, mock.Anything, mock.Anything).Return(0, false, nil).Once()

	outcome := f.service.Open(context.Background(), OpenRequest{
		Platform:  "darwin",
		Workspace: domain.Workspace{Roots: twoRoots},
	})

	assert.Equal(t, domain.OutcomeNoWorkspace, outcome.Kind)
}

func TestLaunchService_PickerChoiceIsLaunched(t *testing.T) {
	f := newLaunchFixture(t, mapEnv{})
	f.picker.EXPECT().Pick(mock.Anything, mock.Anything, mock.Anything).Return(1, true, nil).Once()
	f.launcher.EXPECT().Launch(mock.Anything, mock.MatchedBy(func(req domain.LaunchRequest) bool {
		return req.Directory == "/r/b"
	})).Return(closedChan(), nil).Once()

	outcome := f.service.Open(context.Background(), OpenRequest{
		AppName:   "Fork",
		Platform:  "darwin",
		Workspace: domain.Workspace{Roots: twoRoots},
	})

	assert.True(t, outcome.OK(), outcome.Message())
}

func TestLaunchService_LaunchFailed(t *testing.T) {
	f := newLaunchFixture(t, windowsEnv, `C:\Program Files\Fork\Fork.exe`)
	f.launcher.EXPECT().Launch(mock.Anything, mock.Anything).
		Return(nil, errors.New("access is denied")).Once()

	outcome := f.service.Open(context.Background(), OpenRequest{
		Platform:  "windows",
		Workspace: singleRoot(`C:\src\proj`),
	})

	assert.Equal(t, domain.OutcomeLaunchFailed, outcome.Kind)
	assert.ErrorIs(t, outcome.Err, domain.ErrLaunchFailed)
	assert.Contains(t, outcome.Message(), "access is denied")
}

func TestLaunchService_DetectRepositoryWidensDirectory(t *testing.T) {
	f := newLaunchFixture(t, mapEnv{})
	f.repos.EXPECT().TopLevel("/Users/x/proj/sub").Return("/Users/x/proj", true, nil).Once()
	f.launcher.EXPECT().Launch(mock.Anything, mock.MatchedBy(func(req domain.LaunchRequest) bool {
		return req.Directory == "/Users/x/proj"
	})).Return(closedChan(), nil).Once()

	outcome := f.service.Open(context.Background(), OpenRequest{
		DetectRepository: true,
		ExplicitTarget:   "/Users/x/proj/sub",
		Platform:         "darwin",
	})

	assert.True(t, outcome.OK(), outcome.Message())
}

func TestLaunchService_DetectRepositoryOutsideRepoKeepsDirectory(t *testing.T) {
	f := newLaunchFixture(t, mapEnv{})
	f.repos.EXPECT().TopLevel("/Users/x/notes").Return("", false, nil).Once()
	f.launcher.EXPECT().Launch(mock.Anything, mock.MatchedBy(func(req domain.LaunchRequest) bool {
		return req.Directory == "/Users/x/notes"
	})).Return(closedChan(), nil).Once()

	outcome := f.service.Open(context.Background(), OpenRequest{
		DetectRepository: true,
		Platform:         "darwin",
		Workspace:        singleRoot("/Users/x/notes"),
	})

	assert.True(t, outcome.OK(), outcome.Message())
}

func TestLaunchService_DetectRepositoryErrorKeepsDirectory(t *testing.T) {
	f := newLaunchFixture(t, mapEnv{})
	f.repos.EXPECT().TopLevel("/Users/x/proj").Return("", false, errors.New("corrupt index")).Once()
	f.launcher.EXPECT().Launch(mock.Anything, mock.MatchedBy(func(req domain.LaunchRequest) bool {
		return req.Directory == "/Users/x/proj"
	})).Return(closedChan(), nil).Once()

	outcome := f.service.Open(context.Background(), OpenRequest{
		DetectRepository: true,
		Platform:         "darwin",
		Workspace:        singleRoot("/Users/x/proj"),
	})

	assert.True(t, outcome.OK(), outcome.Message())
}

func TestLaunchService_AsyncChannelIsPassedThrough(t *testing.T) {
	f := newLaunchFixture(t, mapEnv{})
	async := make(chan error, 1)
	async <- errors.New("Unable to find application named 'Fork'")
	close(async)
	f.launcher.EXPECT().Launch(mock.Anything, mock.Anything).Return((<-chan error)(async), nil).Once()

	outcome := f.service.Open(context.Background(), OpenRequest{
		AppName:   "Fork",
		Platform:  "darwin",
		Workspace: singleRoot("/Users/x/proj"),
	})

	require.True(t, outcome.OK())
	require.NotNil(t, outcome.Async)
	err := <-outcome.Async
	assert.ErrorContains(t, err, "Unable to find application")
}

func TestDiagnosticsService_WSL(t *testing.T) {
	translator := portsmocks.NewMockPathTranslator(t)
	translator.EXPECT().ToNativePath(mock.Anything, "/").Return(`\\wsl.localhost\Ubuntu\`, nil).Once()
	locator := NewExecutableLocator(mapEnv{}, newMapFS("/mnt/c/Program Files/Fork/Fork.exe"), translator)

	d := NewDiagnosticsService(locator, translator).Diagnose(context.Background(), "linux", "wsl", "", "Fork")

	assert.Equal(t, domain.EnvWindowsWSL, d.Environment)
	assert.NoError(t, d.TranslatorErr)
	assert.Equal(t, `\\wsl.localhost\Ubuntu\`, d.TranslatorRoot)
	require.Len(t, d.Candidates, 2)
	assert.True(t, d.Candidates[0].Exists)
	assert.False(t, d.Candidates[1].Exists)
}

func TestDiagnosticsService_Unsupported(t *testing.T) {
	translator := portsmocks.NewMockPathTranslator(t)
	locator := NewExecutableLocator(mapEnv{}, newMapFS(), translator)

	d := NewDiagnosticsService(locator, translator).Diagnose(context.Background(), "linux", "", "", "Fork")

	assert.Equal(t, domain.EnvUnsupported, d.Environment)
	assert.Empty(t, d.Candidates)
}
