// ABOUTME: Library directory watching and background track ingestion
// ABOUTME: Bubble Tea commands bridging fsnotify events and metadata extraction

package tui

import (
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"ring-player/playlist"
)

// libraryDebounce is how long to wait after a filesystem event before
// rescanning, so half-written files aren't picked up mid-copy
const libraryDebounce = time.Second

// libraryChangedMsg signals that something in the library dir changed
type libraryChangedMsg struct{}

// libraryScannedMsg carries the result of a library scan
type libraryScannedMsg struct {
	paths []string
	err   error
}

// tracksExtractedMsg carries tracks ready to append to the queue
type tracksExtractedMsg struct {
	tracks []playlist.Track
}

// watchLibrary blocks until the library directory changes, then reports it.
// Update re-arms this command after each scan.
func watchLibrary(w *fsnotify.Watcher, debugf func(string, ...interface{})) tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}

				if ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) || ev.Op.Has(fsnotify.Write) {
					// Give the writer a moment to finish before rescanning
					time.Sleep(libraryDebounce)

					return libraryChangedMsg{}
				}

			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}

				debugf("[TUI] Library watcher error: %v", err)
			}
		}
	}
}

// scanLibraryCmd runs the library scan off the UI goroutine
func scanLibraryCmd(scan func() ([]string, error), debugf func(string, ...interface{})) tea.Cmd {
	return func() tea.Msg {
		defer func() {
			if r := recover(); r != nil {
				debugf("[PANIC] Library scan panic: %v", r)
				debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
				panic(r)
			}
		}()

		paths, err := scan()

		return libraryScannedMsg{paths: paths, err: err}
	}
}

// extractTracks reads tags for the given paths off the UI goroutine
func extractTracks(extract func([]string) []playlist.Track, paths []string) tea.Cmd {
	return func() tea.Msg {
		return tracksExtractedMsg{tracks: extract(paths)}
	}
}
