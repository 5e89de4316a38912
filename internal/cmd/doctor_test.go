package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"forkit/internal/domain"
	"forkit/internal/services"
)

func TestRenderDiagnosis_Windows(t *testing.T) {
	out := renderDiagnosis(services.Diagnosis{
		AppName:     "Fork",
		Environment: domain.EnvWindowsNative,
		Platform:    "windows",
		Candidates: []services.CandidateStatus{
			{Path: `C:\Users\u\AppData\Local\Fork\Fork.exe`},
			{Path: `C:\Program Files\Fork\Fork.exe`, Exists: true},
		},
	})

	assert.Contains(t, out, "Windows")
	assert.Contains(t, out, `C:\Users\u\AppData\Local\Fork\Fork.exe`)
	assert.Contains(t, out, "missing")
	assert.Contains(t, out, "* found")
	assert.Contains(t, out, `C:\Program Files\Fork\Fork.exe`)
	assert.NotContains(t, out, "Fork executable not found")
}

func TestRenderDiagnosis_NothingFound(t *testing.T) {
	out := renderDiagnosis(services.Diagnosis{
		Candidates:    []services.CandidateStatus{{Path: "/mnt/c/Program Files/Fork/Fork.exe"}},
		Environment:   domain.EnvWindowsWSL,
		Platform:      "linux",
		RemoteName:    "wsl",
		TranslatorErr: errors.New("wslpath not found in PATH"),
	})

	assert.Contains(t, out, "WSL")
	assert.Contains(t, out, "wslpath not found in PATH")
	assert.Contains(t, out, "Fork error: Fork executable not found, set fork_path and try again")
}

func TestRenderDiagnosis_MacOS(t *testing.T) {
	out := renderDiagnosis(services.Diagnosis{
		AppName:     "Fork",
		Environment: domain.EnvMacOS,
		Platform:    "darwin",
	})

	assert.Contains(t, out, "Fork (opened by name)")
	assert.NotContains(t, out, "Executable candidates")
}

func TestRenderDiagnosis_Unsupported(t *testing.T) {
	out := renderDiagnosis(services.Diagnosis{Environment: domain.EnvUnsupported, Platform: "linux"})

	assert.Contains(t, out, "Fork error: Unsupported platform. Only macOS, Windows and WSL are supported.")
}
