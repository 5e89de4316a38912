package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"forkit/internal/cmd"
	"forkit/internal/config"
	"forkit/internal/theme"
	"forkit/version"
)

func main() {
	// Load settings from ~/.forkit/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{} // Use empty settings
	}

	// Parse CLI arguments with Kong
	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings) // Set settings before parsing
	ctx := kong.Parse(&cli,
		kong.Name("forkit"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	// Execute the selected command
	if err := ctx.Run(); err != nil {
		var outcomeErr *cmd.OutcomeError
		if errors.As(err, &outcomeErr) {
			fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render(outcomeErr.Error()))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
