// ABOUTME: TUI mode configuration and command-line options
// ABOUTME: Defines input parameters for running the player UI

package tui

// Options contains configuration for running the TUI
type Options struct {
	LibraryDir string // Directory watched for new tracks (empty disables watching)
}
