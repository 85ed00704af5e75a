// ABOUTME: Defines the Track value type shared by the queue, player, and UI
// ABOUTME: Provides clock-style duration formatting used by every display surface

package playlist

import "fmt"

// Track represents a single audio file in the queue
type Track struct {
	Title    string // Display title (falls back to filename when tags are missing)
	Artist   string // Artist name ("Unknown Artist" when tags are missing)
	Duration int    // Length in whole seconds (0 when unknown, never negative)
	Path     string // Filesystem path handed to the playback engine
}

// FormatDuration renders a second count as a clock string
// Examples: 0 -> "0:00", 125 -> "2:05", 3661 -> "1:01:01"
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%d:%02d", m, s)
}

// String returns a formatted string representation of the track
func (t Track) String() string {
	return fmt.Sprintf("%s - %s [%s]", t.Artist, t.Title, FormatDuration(t.Duration))
}
