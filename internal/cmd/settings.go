package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"forkit/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()
	current, err := currentSettings(cli.settings)
	if err != nil {
		return err
	}

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
			"current":       current,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tEXAMPLE\tCURRENT")
	for _, key := range keys {
		value, ok := current[key]
		currentStr := "-"
		if ok {
			currentStr = fmt.Sprintf("%v", value)
		}
		fmt.Fprintf(w, "%s\t%v\t%s\n", key, example[key], currentStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure forkit.")
	fmt.Println("All settings are optional; flags and FORKIT_* env vars take precedence.")

	return nil
}

// currentSettings returns the keys set in settings.json
func currentSettings(settings *config.Settings) (map[string]any, error) {
	current := map[string]any{}
	if settings == nil {
		return current, nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := json.Unmarshal(data, &current); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return current, nil
}
