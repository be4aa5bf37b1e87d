package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	return exampleStruct(reflect.TypeOf(Settings{}))
}

func exampleStruct(t reflect.Type) map[string]any {
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		// Generate example value based on field type
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	// Handle pointer types
	if t.Kind() == reflect.Ptr {
		elemType := t.Elem()

		switch elemType.Kind() {
		case reflect.Struct:
			return exampleStruct(elemType)
		case reflect.Bool:
			// Return boolean value directly (not pointer)
			if fieldName == "fade" || fieldName == "show_archived" {
				return true
			}
			return false
		case reflect.Int:
			// Return int value directly (not pointer)
			switch fieldName {
			case "delay_ms":
				return 300
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "max_log_files":
				return DefaultMaxLogFiles
			}
			return 10
		}
	}

	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"add":  "a",
			"quit": []string{"q", "ctrl+c"},
		}
	}

	// Handle direct types
	switch t.Kind() {
	case reflect.String:
		// Generate contextual examples based on field name
		switch fieldName {
		case "after_background":
			return PaneAfterSwipeLeft
		case "after_swipe":
			return "hide"
		case "authorized_keys":
			return "~/.ssh/authorized_keys"
		case "background":
			return PaneBackgroundLeft
		case "foreground":
			return PaneForeground
		case "on_swipe":
			return "archive"
		default:
			return "example"
		}
	case reflect.Slice:
		// Check if it's StringArray type
		if t.Name() == "StringArray" || (t.Elem().Kind() == reflect.String) {
			switch fieldName {
			case "buttons":
				return []string{"flag", "delete"}
			default:
				return []string{"example1", "example2"}
			}
		}
	}

	return nil
}
