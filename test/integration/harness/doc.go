// Package harness provides utilities for integration testing the forkit CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - FORKIT_HOME: Isolated per test (temp directory)
//   - FORKIT_DEBUG: Disabled to reduce noise
//   - FORKIT_LAUNCH_GRACE_SECONDS: Zero so commands return as soon as Fork is spawned
//   - WSL_DISTRO_NAME, WSL_INTEROP: Removed so only FORKIT_REMOTE selects WSL
package harness
