package platform

import (
	"runtime"

	"forkit/internal/domain"
	"forkit/internal/logging"
	"forkit/internal/ports"
)

// Signals are the raw inputs to environment classification
type Signals struct {
	Platform   string
	RemoteName string
}

// Detector collects platform and remote-session signals from the process
type Detector struct {
	env        ports.EnvReader
	goos       string
	kernelFunc func() string
}

// NewDetector creates a detector reading the real process environment
func NewDetector(env ports.EnvReader) *Detector {
	return &Detector{
		env:        env,
		goos:       runtime.GOOS,
		kernelFunc: kernelRelease,
	}
}

// Signals returns the platform and remote name. A non-empty forcedRemote
// (from --remote or settings) skips auto-detection.
func (d *Detector) Signals(forcedRemote string) Signals {
	signals := Signals{Platform: d.goos, RemoteName: forcedRemote}
	if forcedRemote == "" && d.insideWSL() {
		signals.RemoteName = domain.WSLRemoteName
	}
	logging.Logger.Debug("Collected platform signals", "platform", signals.Platform, "remote", signals.RemoteName)
	return signals
}

// Detect classifies the current process environment
func (d *Detector) Detect(forcedRemote string) domain.Environment {
	s := d.Signals(forcedRemote)
	return domain.DetectEnvironment(s.Platform, s.RemoteName)
}

func (d *Detector) insideWSL() bool {
	if d.env.Getenv("WSL_DISTRO_NAME") != "" || d.env.Getenv("WSL_INTEROP") != "" {
		return true
	}
	return isWSLKernel(d.kernelFunc())
}
