// ABOUTME: Player settings exposed for live tuning in the UI
// ABOUTME: Handles setting adjustments with boundary checking

package tui

import "ring-player/config"

// Setting is a tunable player setting bound to a config field
type Setting struct {
	Name      string
	IntValue  *int  // For integer settings
	BoolValue *bool // For on/off settings
	Min       int
	Max       int
	Step      int
	IsBool    bool
}

// increaseSetting raises a setting value with bounds checking. For on/off
// settings this turns the setting on.
// Returns true if the value was changed
func increaseSetting(s *Setting) bool {
	if s.IsBool {
		if !*s.BoolValue {
			*s.BoolValue = true

			return true
		}

		return false
	}

	newVal := *s.IntValue + s.Step
	if newVal <= s.Max {
		*s.IntValue = newVal

		return true
	}

	return false
}

// decreaseSetting lowers a setting value with bounds checking. For on/off
// settings this turns the setting off.
// Returns true if the value was changed
func decreaseSetting(s *Setting) bool {
	if s.IsBool {
		if *s.BoolValue {
			*s.BoolValue = false

			return true
		}

		return false
	}

	newVal := *s.IntValue - s.Step
	if newVal >= s.Min {
		*s.IntValue = newVal

		return true
	}

	return false
}

// resetSettingsToDefaults resets all settings to their default values
// Uses name-based lookup to avoid fragile array indexing
func resetSettingsToDefaults(settings []Setting, defaults config.Config) {
	for i := range settings {
		s := &settings[i]
		switch s.Name {
		case "Default Volume":
			*s.IntValue = defaults.DefaultVolume
		case "Seek Step":
			*s.IntValue = defaults.SeekStep
		case "Auto Advance":
			*s.BoolValue = defaults.AutoAdvance
		}
	}
}
