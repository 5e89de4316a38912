package domain

// LaunchRequest is the fully resolved input for one launch.
// Directory is already in the namespace the launched application understands
// (Windows namespace under WSL). Executable is empty on macOS, where the
// application is addressed by AppName instead.
type LaunchRequest struct {
	AppName     string
	Directory   string
	Environment Environment
	Executable  string
}
