// ABOUTME: Tests for library scanning and file filter matching
// ABOUTME: Verifies glob compilation, case handling, and directory walking

package library

import (
	"os"
	"path/filepath"
	"testing"
)

// TestFilterMatch verifies pattern matching against base names
func TestFilterMatch(t *testing.T) {
	filter, err := NewFilter([]string{"*.mp3", "*.flac"})
	if err != nil {
		t.Fatalf("Failed to compile filter: %v", err)
	}

	tests := []struct {
		path     string
		expected bool
	}{
		{"song.mp3", true},
		{"song.flac", true},
		{"Album/01 Track.MP3", true},
		{"song.ogg", false},
		{"song.mp3.bak", false},
		{"mp3", false},
		{"/music/Artist/Album/02 Song.Mp3", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := filter.Match(tt.path); got != tt.expected {
				t.Errorf("Expected %v for %s, got %v", tt.expected, tt.path, got)
			}
		})
	}
}

// TestNewFilterInvalidPattern verifies compile errors surface to the caller
func TestNewFilterInvalidPattern(t *testing.T) {
	_, err := NewFilter([]string{"*.mp3", "[unclosed"})

	if err == nil {
		t.Error("Expected error for invalid pattern, got none")
	}
}

// TestScan verifies recursive scanning returns sorted matching files
func TestScan(t *testing.T) {
	tmpDir := t.TempDir()

	files := []string{
		"b album/02 second.mp3",
		"a album/01 first.mp3",
		"a album/cover.jpg",
		"notes.txt",
		"loose.flac",
	}

	for _, f := range files {
		path := filepath.Join(tmpDir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}

		if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}

	filter, err := NewFilter([]string{"*.mp3", "*.flac"})
	if err != nil {
		t.Fatalf("Failed to compile filter: %v", err)
	}

	paths, err := Scan(tmpDir, filter)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	expected := []string{
		filepath.Join(tmpDir, "a album/01 first.mp3"),
		filepath.Join(tmpDir, "b album/02 second.mp3"),
		filepath.Join(tmpDir, "loose.flac"),
	}

	if len(paths) != len(expected) {
		t.Fatalf("Expected %d files, got %d: %v", len(expected), len(paths), paths)
	}

	for i, want := range expected {
		if paths[i] != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, paths[i])
		}
	}
}

// TestScanMissingDir verifies a nonexistent root is an error
func TestScanMissingDir(t *testing.T) {
	filter, err := NewFilter([]string{"*.mp3"})
	if err != nil {
		t.Fatalf("Failed to compile filter: %v", err)
	}

	if _, err := Scan("/nonexistent/music/library", filter); err == nil {
		t.Error("Expected error for missing directory, got none")
	}
}

// TestScanFileRoot verifies a non-directory root is an error
func TestScanFileRoot(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "file.mp3")

	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	filter, err := NewFilter([]string{"*.mp3"})
	if err != nil {
		t.Fatalf("Failed to compile filter: %v", err)
	}

	if _, err := Scan(path, filter); err == nil {
		t.Error("Expected error for file root, got none")
	}
}
