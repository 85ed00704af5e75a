// ABOUTME: Configuration management for player settings
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all tunable player settings
type Config struct {
	DefaultVolume int  `toml:"default_volume"` // 0 to 100
	AutoAdvance   bool `toml:"auto_advance"`
	SeekStep      int  `toml:"seek_step"` // seconds per seek keypress

	// Library scanning
	LibraryDir  string   `toml:"library_dir"`
	FileFilters []string `toml:"file_filters"`
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to ~/.config/ring-player/config.toml
func GetConfigPath() string {
	// First try current directory
	if _, err := os.Stat("./ring-player.toml"); err == nil {
		return "./ring-player.toml"
	}

	// Then try ~/.config/ring-player/config.toml
	home, err := os.UserHomeDir()
	if err != nil {
		return "./ring-player.toml"
	}

	return filepath.Join(home, ".config", "ring-player", "config.toml")
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist or fails to load, returns default config
func LoadConfig(path string) (Config, error) {
	// Try to read the file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse TOML
	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return sanitizeConfig(config), nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, config Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	// Encode config as TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultConfig returns the default player settings
func DefaultConfig() Config {
	return Config{
		DefaultVolume: 70,
		AutoAdvance:   true,
		SeekStep:      5,
		LibraryDir:    "",
		FileFilters:   []string{"*.mp3", "*.wav", "*.ogg", "*.flac"},
	}
}

// sanitizeConfig clamps hand-edited values back into their working ranges
func sanitizeConfig(config Config) Config {
	if config.DefaultVolume < 0 {
		config.DefaultVolume = 0
	}
	if config.DefaultVolume > 100 {
		config.DefaultVolume = 100
	}

	if config.SeekStep < 1 {
		config.SeekStep = 1
	}
	if config.SeekStep > 60 {
		config.SeekStep = 60
	}

	if len(config.FileFilters) == 0 {
		config.FileFilters = DefaultConfig().FileFilters
	}

	return config
}
