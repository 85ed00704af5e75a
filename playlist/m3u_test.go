// ABOUTME: Tests for M3U playlist parsing
// ABOUTME: Verifies comment handling, blank lines, and relative path resolution

package playlist

import (
	"os"
	"path/filepath"
	"testing"
)

// TestReadM3U verifies M3U parsing across typical file shapes
func TestReadM3U(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectCount int
	}{
		{
			name: "simple playlist",
			content: `Artist/Album/01 Track.mp3
Artist/Album/02 Track.mp3
Artist/Album/03 Track.mp3`,
			expectCount: 3,
		},
		{
			name: "with extended header and comments",
			content: `#EXTM3U
#EXTINF:125,Fred V & Grafix - Ignite
Artist/Album/01 Track.mp3
# plain comment
Artist/Album/02 Track.mp3`,
			expectCount: 2,
		},
		{
			name: "with empty lines",
			content: `Artist/Album/01 Track.mp3

Artist/Album/02 Track.mp3

`,
			expectCount: 2,
		},
		{
			name:        "empty file",
			content:     "",
			expectCount: 0,
		},
		{
			name: "only comments",
			content: `#EXTM3U
# Just comments
# No tracks`,
			expectCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tmpFile := filepath.Join(tmpDir, "test.m3u8")

			if err := os.WriteFile(tmpFile, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			entries, err := ReadM3U(tmpFile)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if len(entries) != tt.expectCount {
				t.Errorf("Expected %d entries, got %d", tt.expectCount, len(entries))
			}

			// Relative entries resolve against the playlist's directory
			for i, entry := range entries {
				if !filepath.IsAbs(entry) {
					t.Errorf("Entry %d not resolved to an absolute path: %s", i, entry)
				}
			}
		})
	}
}

// TestReadM3UAbsoluteEntries verifies absolute paths pass through untouched
func TestReadM3UAbsoluteEntries(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "abs.m3u")

	content := "/music/Artist/Album/01 Track.mp3\n"
	if err := os.WriteFile(tmpFile, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	entries, err := ReadM3U(tmpFile)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(entries) != 1 || entries[0] != "/music/Artist/Album/01 Track.mp3" {
		t.Errorf("Expected absolute entry preserved, got %v", entries)
	}
}

// TestReadM3UNonExistent verifies error handling for missing files
func TestReadM3UNonExistent(t *testing.T) {
	entries, err := ReadM3U("/nonexistent/path/to/playlist.m3u8")

	if err == nil {
		t.Error("Expected error for nonexistent file, got none")
	}

	if len(entries) != 0 {
		t.Errorf("Expected 0 entries for failed read, got %d", len(entries))
	}
}

// TestIsM3U verifies playlist extension detection
func TestIsM3U(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"mix.m3u", true},
		{"mix.m3u8", true},
		{"MIX.M3U8", true},
		{"song.mp3", false},
		{"noext", false},
		{"dir/mix.m3u", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsM3U(tt.path); got != tt.expected {
				t.Errorf("Expected %v for %s, got %v", tt.expected, tt.path, got)
			}
		})
	}
}
