// ABOUTME: Music library scanning with glob-based file filters
// ABOUTME: Walks a directory tree and collects matching audio files in sorted order

// Package library finds audio files on disk. File filters come from the
// user's configuration as glob patterns matched against base names.
package library

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Filter matches filenames against a set of compiled glob patterns
type Filter struct {
	globs []glob.Glob
}

// NewFilter compiles the given patterns into a filter.
// Matching is case-insensitive on the base name, so "*.mp3" matches
// "01 Track.MP3".
func NewFilter(patterns []string) (*Filter, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid file filter %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	return &Filter{globs: globs}, nil
}

// Match reports whether the base name of path matches any pattern
func (f *Filter) Match(path string) bool {
	name := strings.ToLower(filepath.Base(path))

	for _, g := range f.globs {
		if g.Match(name) {
			return true
		}
	}

	return false
}

// Scan walks dir and returns the matching file paths in sorted order.
// Unreadable entries below the root are skipped rather than failing the
// whole scan; a missing or non-directory root is an error.
func Scan(dir string, f *Filter) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan library: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("library path is not a directory: %s", dir)
	}

	var paths []string

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable entries, keep scanning
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if f.Match(path) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan library: %w", err)
	}

	slices.Sort(paths)

	return paths, nil
}
