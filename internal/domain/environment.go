package domain

// Environment is the execution context a launch is prepared for
type Environment string

const (
	EnvMacOS         Environment = "macos"
	EnvUnsupported   Environment = "unsupported"
	EnvWindowsNative Environment = "windows"
	EnvWindowsWSL    Environment = "wsl"
)

// WSLRemoteName is the remote session name reported inside WSL
const WSLRemoteName = "wsl"

// DetectEnvironment classifies a platform identifier and remote session name.
// A WSL remote wins over the reported platform: WSL reports linux but the
// launch target is a Windows binary.
func DetectEnvironment(platform, remoteName string) Environment {
	if remoteName == WSLRemoteName {
		return EnvWindowsWSL
	}

	switch platform {
	case "darwin":
		return EnvMacOS
	case "win32", "windows":
		return EnvWindowsNative
	default:
		return EnvUnsupported
	}
}

// Supported reports whether a launch can be attempted in this environment
func (e Environment) Supported() bool {
	return e == EnvMacOS || e == EnvWindowsNative || e == EnvWindowsWSL
}

// String returns a human-readable environment name
func (e Environment) String() string {
	switch e {
	case EnvMacOS:
		return "macOS"
	case EnvWindowsNative:
		return "Windows"
	case EnvWindowsWSL:
		return "WSL"
	default:
		return "unsupported"
	}
}
