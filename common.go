// ABOUTME: Shared queue building for all modes (TUI, headless, list)
// ABOUTME: Turns files, directories, and playlists from the command line into a ring

package main

import (
	"fmt"
	"os"

	"ring-player/library"
	"ring-player/metadata"
	"ring-player/playlist"
)

// QueueOptions controls how the starting queue is built
type QueueOptions struct {
	Args       []string // Files, directories, or .m3u playlists
	LibraryDir string   // Scanned when no args are given
	Filters    []string // Glob patterns for library scans
	Verbose    bool
}

// BuildQueue assembles the starting ring from the command line. Directories
// are scanned with the configured filters, .m3u files are expanded, and plain
// paths are taken as tracks directly. An empty result is not an error; each
// mode decides whether it can run without tracks.
func BuildQueue(opts QueueOptions) (*playlist.Playlist, error) {
	paths, err := collectPaths(opts)
	if err != nil {
		return nil, err
	}

	queue := playlist.New()
	for _, t := range metadata.ExtractAll(paths) {
		queue.Append(t)
	}

	return queue, nil
}

// collectPaths expands args into concrete file paths
func collectPaths(opts QueueOptions) ([]string, error) {
	filter, err := library.NewFilter(opts.Filters)
	if err != nil {
		return nil, err
	}

	args := opts.Args
	if len(args) == 0 && opts.LibraryDir != "" {
		args = []string{opts.LibraryDir}
	}

	var paths []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", arg, err)
		}

		switch {
		case info.IsDir():
			found, err := library.Scan(arg, filter)
			if err != nil {
				return nil, err
			}

			if opts.Verbose {
				fmt.Printf("Scanning library: %s (%d tracks)\n", arg, len(found))
			}

			paths = append(paths, found...)

		case playlist.IsM3U(arg):
			entries, err := playlist.ReadM3U(arg)
			if err != nil {
				return nil, err
			}

			if opts.Verbose {
				fmt.Printf("Reading playlist: %s (%d entries)\n", arg, len(entries))
			}

			paths = append(paths, entries...)

		default:
			paths = append(paths, arg)
		}
	}

	return paths, nil
}

// truncate shortens string to maxLen, adding "..." if needed
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return s[:maxLen]
	}

	return s[:maxLen-3] + "..."
}
