// ABOUTME: M3U/M3U8 playlist file parsing for queue input
// ABOUTME: Extracts entry paths, skipping comments and blank lines

package playlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsM3U reports whether a path looks like an M3U playlist file
func IsM3U(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".m3u", ".m3u8":
		return true
	}

	return false
}

// ReadM3U reads an M3U/M3U8 file and returns its entry paths in order.
// Comment lines (#EXTM3U, #EXTINF and friends) and blank lines are skipped.
// Relative entries are resolved against the playlist file's directory.
func ReadM3U(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist: %w", err)
	}

	defer func() {
		_ = file.Close() // Explicitly ignore error for read-only file
	}()

	baseDir := filepath.Dir(path)

	var entries []string

	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !filepath.IsAbs(line) {
			line = filepath.Join(baseDir, line)
		}

		entries = append(entries, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading playlist: %w", err)
	}

	return entries, nil
}
