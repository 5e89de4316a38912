package fs

import (
	"os"

	"forkit/internal/ports"
)

// OSFileSystem implements FileSystem with os.Stat
type OSFileSystem struct{}

// Compile-time interface verification
var _ ports.FileSystem = (*OSFileSystem)(nil)

// NewOSFileSystem creates a new OS filesystem adapter
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Exists reports whether path exists. Execute permission is not checked.
func (f *OSFileSystem) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// OSEnv implements EnvReader with the process environment
type OSEnv struct{}

// Compile-time interface verification
var _ ports.EnvReader = (*OSEnv)(nil)

// Getenv returns the value of an environment variable
func (OSEnv) Getenv(key string) string {
	return os.Getenv(key)
}
