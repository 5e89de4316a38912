package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/mitchellh/mapstructure"

	"forkit/internal/logging"
)

// Defaults applied when neither flags, env vars nor settings.json set a value
const (
	DefaultAppName            = "Fork"
	DefaultLaunchGraceSeconds = 2
	DefaultTranslator         = "wslpath"
)

// Settings represents the structure of ~/.forkit/settings.json
type Settings struct {
	AppName            string `json:"app_name,omitempty"`
	Debug              *bool  `json:"debug,omitempty"`
	DetectRepository   *bool  `json:"detect_repository,omitempty"`
	ForkPath           string `json:"fork_path,omitempty"`
	LaunchGraceSeconds *int   `json:"launch_grace_seconds,omitempty"`
	MaxLogFiles        *int   `json:"max_log_files,omitempty"`
	RemoteName         string `json:"remote_name,omitempty"`
	Translator         string `json:"translator,omitempty"`
	WindowsPath        string `json:"windows_path,omitempty"` // Legacy alias for fork_path
}

// LoadSettings loads settings from $FORKIT_HOME/settings.json (or ~/.forkit/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	return settings, nil
}

// ParseSettings decodes settings JSON. Values are weakly typed so "true" and
// "3" are accepted for booleans and numbers; unknown keys are logged and ignored.
func ParseSettings(data []byte) (*Settings, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var settings Settings
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         &md,
		Result:           &settings,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create settings decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		logging.Logger.Warn("Ignoring unknown settings", "keys", md.Unused)
	}

	settings.ForkPath = ExpandPath(settings.ForkPath)
	settings.WindowsPath = ExpandPath(settings.WindowsPath)

	return &settings, nil
}

// OverridePath returns the configured executable override.
// fork_path wins over the legacy windows_path key.
func (s *Settings) OverridePath() string {
	if s == nil {
		return ""
	}
	if s.ForkPath != "" {
		return s.ForkPath
	}
	return s.WindowsPath
}
