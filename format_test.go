// ABOUTME: Tests for playback clock formatting
// ABOUTME: Validates position/duration rendering including unknown durations

package main

import (
	"testing"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name     string
		position int
		duration int
		want     string
	}{
		{
			name:     "start of track",
			position: 0,
			duration: 125,
			want:     "0:00 / 2:05",
		},
		{
			name:     "mid track",
			position: 42,
			duration: 200,
			want:     "0:42 / 3:20",
		},
		{
			name:     "just over a minute",
			position: 30,
			duration: 61,
			want:     "0:30 / 1:01",
		},
		{
			name:     "long track rolls into hours",
			position: 3700,
			duration: 7200,
			want:     "1:01:40 / 2:00:00",
		},
		{
			name:     "unknown duration shows position only",
			position: 42,
			duration: 0,
			want:     "0:42",
		},
		{
			name:     "negative duration treated as unknown",
			position: 42,
			duration: -5,
			want:     "0:42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatClock(tt.position, tt.duration)
			if got != tt.want {
				t.Errorf("FormatClock(%d, %d) = %q, want %q",
					tt.position, tt.duration, got, tt.want)
			}
		})
	}
}
