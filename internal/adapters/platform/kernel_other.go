//go:build !linux

package platform

// kernelRelease is only meaningful on linux, where WSL runs
func kernelRelease() string {
	return ""
}
