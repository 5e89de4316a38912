package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "launch_grace_seconds":
				return DefaultLaunchGraceSeconds
			case "max_log_files":
				return 100
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "app_name":
			return DefaultAppName
		case "fork_path":
			return `C:\Users\me\AppData\Local\Fork\Fork.exe`
		case "remote_name":
			return "wsl"
		case "translator":
			return DefaultTranslator
		case "windows_path":
			return `C:\Users\me\AppData\Local\Fork\current\Fork.exe`
		default:
			return "example"
		}
	}

	return nil
}
