// ABOUTME: Clock formatting for playback progress
// ABOUTME: Renders position/duration pairs for CLI status lines

package main

import "ring-player/playlist"

// FormatClock renders a playback position as "0:42 / 3:20". Tracks with
// unknown duration render the position alone.
func FormatClock(position, duration int) string {
	if duration <= 0 {
		return playlist.FormatDuration(position)
	}

	return playlist.FormatDuration(position) + " / " + playlist.FormatDuration(duration)
}
