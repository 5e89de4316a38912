package cmd

import (
	"os"

	"github.com/alecthomas/kong"

	"forkit/internal/config"
	"forkit/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	AppName          string `help:"Application name used to open Fork on macOS" default:"Fork" env:"FORKIT_APP_NAME"`
	DetectRepository bool   `help:"Open the enclosing git repository root instead of the workspace folder" env:"FORKIT_DETECT_REPOSITORY"`
	ForkPath         string `help:"Path to the Fork executable (Windows and WSL)" env:"FORKIT_FORK_PATH"`
	LaunchGrace      int    `help:"Seconds to wait for launch failures reported after spawn (0 = do not wait)" default:"2" env:"FORKIT_LAUNCH_GRACE_SECONDS"`
	Remote           string `help:"Remote session name, skips auto-detection (e.g. wsl)" env:"FORKIT_REMOTE"`
	Translator       string `help:"Path translation helper used under WSL" default:"wslpath" env:"FORKIT_TRANSLATOR"`

	Open     OpenCmd     `cmd:"" help:"Open the current workspace folder in Fork (default)" default:"1"`
	OpenHere OpenHereCmd `cmd:"open-here" help:"Open the workspace folder containing a path or file:// URI in Fork"`
	Doctor   DoctorCmd   `cmd:"doctor" help:"Show the detected environment and Fork executable candidates"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// Create container AFTER logging is initialized
	c.Container = NewContainer(c.Translator)

	return nil
}

// applySettings fills values from settings.json with precedence
// CLI flags > env vars > settings.json > defaults.
// A setting applies only when the flag is at its default and its env var is unset.
func (c *CLI) applySettings() {
	s := c.settings
	if s == nil {
		return
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles && !hasEnv("FORKIT_MAX_LOG_FILES") && s.MaxLogFiles != nil {
		c.MaxLogFiles = *s.MaxLogFiles
	}

	if !c.Debug && !hasEnv("FORKIT_DEBUG") && s.Debug != nil && *s.Debug {
		c.Debug = true
	}

	if c.AppName == config.DefaultAppName && !hasEnv("FORKIT_APP_NAME") && s.AppName != "" {
		c.AppName = s.AppName
	}

	if !c.DetectRepository && !hasEnv("FORKIT_DETECT_REPOSITORY") && s.DetectRepository != nil {
		c.DetectRepository = *s.DetectRepository
	}

	if c.ForkPath == "" && !hasEnv("FORKIT_FORK_PATH") {
		c.ForkPath = s.OverridePath()
	}

	if c.LaunchGrace == config.DefaultLaunchGraceSeconds && !hasEnv("FORKIT_LAUNCH_GRACE_SECONDS") && s.LaunchGraceSeconds != nil {
		c.LaunchGrace = *s.LaunchGraceSeconds
	}

	if c.Remote == "" && !hasEnv("FORKIT_REMOTE") {
		c.Remote = s.RemoteName
	}

	if c.Translator == config.DefaultTranslator && !hasEnv("FORKIT_TRANSLATOR") && s.Translator != "" {
		c.Translator = s.Translator
	}
}

func hasEnv(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}
