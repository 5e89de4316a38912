package version

import "fmt"

// Tagline is the application's tagline used in help text and documentation
const Tagline = "Open the folder you are working in with the Fork Git client"

// Build information injected at build time via ldflags
// Example: -ldflags="-X forkit/version.Version=v1.0.0 -X forkit/version.Commit=abc123"
var (
	Version   = "dev"     // Semantic version or "dev"
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("forkit %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
