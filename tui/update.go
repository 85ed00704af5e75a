// ABOUTME: Event handling and state updates for the TUI
// ABOUTME: Implements the Bubble Tea Update() function and message handlers

package tui

import (
	"fmt"
	"path/filepath"
	"runtime/debug"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ring-player/config"
	"ring-player/player"
)

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.debugf("[PANIC] Update panic: %v", r)
			m.debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Calculate viewport dimensions
		// Right panel width: total width - left panel - padding
		viewportWidth := msg.Width - playerPanelWidth - panelPadding
		if viewportWidth < minViewportWidth {
			viewportWidth = minViewportWidth
		}

		// Height: total height minus all UI chrome (title, header, status, help, spacing)
		viewportHeight := msg.Height - totalUIChrome
		if viewportHeight < minViewportHeight {
			viewportHeight = minViewportHeight
		}

		m.viewport.Width = viewportWidth
		m.viewport.Height = viewportHeight

		// Ensure viewport starts at top
		m.viewport.YOffset = 0
		m.ensureCursorVisible()

		// Keep the progress bar inside the player panel and size the picker
		m.progress.Width = playerPanelWidth - 4
		m.picker.Height = viewportHeight

		// Update viewport content
		m.updateViewportContent()

		return m, nil

	case playerEvent:
		switch msg.Kind {
		case player.EventPosition:
			m.position = msg.Position

		case player.EventDuration:
			m.duration = msg.Duration

		case player.EventState:
			m.state = msg.State

		case player.EventCompleted:
			m.handleCompletion()
		}

		m.updateViewportContent()

		// Queue next event
		return m, waitForEvent(m.engine.Events())

	case tracksExtractedMsg:
		m.addTracks(msg.tracks)

		return m, nil

	case libraryChangedMsg:
		// Rescan the library, then re-arm the watcher for the next change
		m.debugf("[TUI] Library change detected, rescanning")

		return m, tea.Batch(
			scanLibraryCmd(m.scanLibrary, m.debugf),
			watchLibrary(m.watcher, m.debugf),
		)

	case libraryScannedMsg:
		if msg.err != nil {
			m.debugf("[TUI] Library scan failed: %v", msg.err)

			return m, nil
		}

		// Only extract paths we haven't queued before
		fresh := make([]string, 0)
		for _, p := range msg.paths {
			if !m.seenPaths[p] {
				m.seenPaths[p] = true
				fresh = append(fresh, p)
			}
		}

		if len(fresh) == 0 {
			return m, nil
		}

		m.setStatusMsg(fmt.Sprintf("Found %d new tracks in library", len(fresh)))

		return m, extractTracks(m.extract, fresh)

	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m.handleQuitKey()

		case key.Matches(msg, keys.Tab):
			m.handleTabKey()

		case key.Matches(msg, keys.Up):
			m.handleUpKey()

		case key.Matches(msg, keys.Down):
			m.handleDownKey()

		case key.Matches(msg, keys.PageUp):
			m.handlePageUpKey()

		case key.Matches(msg, keys.PageDown):
			m.handlePageDownKey()

		case key.Matches(msg, keys.Home):
			m.handleHomeKey()

		case key.Matches(msg, keys.End):
			m.handleEndKey()

		case key.Matches(msg, keys.Left):
			m.handleLeftKey()

		case key.Matches(msg, keys.Right):
			m.handleRightKey()

		case key.Matches(msg, keys.PlayPause):
			m.togglePlay()

		case key.Matches(msg, keys.Stop):
			m.stopPlayback()

		case key.Matches(msg, keys.Next):
			m.nextTrack()

		case key.Matches(msg, keys.Prev):
			m.prevTrack()

		case key.Matches(msg, keys.PlayCursor):
			m.playCursor()

		case key.Matches(msg, keys.Delete):
			m.deleteTrack()

		case key.Matches(msg, keys.Undo):
			m.undo()

		case key.Matches(msg, keys.Redo):
			m.redo()

		case key.Matches(msg, keys.Add):
			cmd := m.openPicker()

			return m, cmd

		case key.Matches(msg, keys.VolumeUp):
			m.adjustVolume(volumeStep)

		case key.Matches(msg, keys.VolumeDown):
			m.adjustVolume(-volumeStep)

		case key.Matches(msg, keys.Reset):
			m.resetSettings()
		}

		return m, nil
	}

	// The file picker reads directories through its own message types
	if m.picking {
		return m.updatePicker(msg)
	}

	return m, nil
}

// handleQuitKey handles the quit key press
func (m *model) handleQuitKey() (model, tea.Cmd) {
	m.quitting = true

	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.debugf("[TUI] Failed to close library watcher: %v", err)
		}
	}

	// Save config on quit
	if err := config.SaveConfig(m.configPath, *m.cfg); err != nil {
		m.debugf("[TUI] Failed to save config on quit: %v", err)
		// Continue anyway - don't block quit on config save failure
	}

	return *m, tea.Quit
}

// handleTabKey handles panel switching
func (m *model) handleTabKey() {
	if m.focusedPanel == panelSettings {
		m.focusedPanel = panelQueue
	} else {
		m.focusedPanel = panelSettings
	}
}

// handleUpKey handles Up/k key press (context-aware navigation)
func (m *model) handleUpKey() {
	if m.focusedPanel == panelSettings {
		// Select previous setting
		if m.selectedSetting > 0 {
			m.selectedSetting--
		}
	} else {
		// Navigate tracks up
		if m.cursorPos > 0 {
			m.cursorPos--
			m.ensureCursorVisible()
			m.updateViewportContent()
		}
	}
}

// handleDownKey handles Down/j key press (context-aware navigation)
func (m *model) handleDownKey() {
	if m.focusedPanel == panelSettings {
		// Select next setting
		if m.selectedSetting < len(m.settings)-1 {
			m.selectedSetting++
		}
	} else {
		// Navigate tracks down
		if m.cursorPos < m.queue.Len()-1 {
			m.cursorPos++
			m.ensureCursorVisible()
			m.updateViewportContent()
		}
	}
}

// handleLeftKey handles Left/h key press (decrease setting or seek backwards)
func (m *model) handleLeftKey() {
	if m.focusedPanel == panelSettings {
		m.decreaseSelectedSetting()
	} else {
		m.seekBy(-m.cfg.SeekStep)
	}
}

// handleRightKey handles Right/l key press (increase setting or seek forward)
func (m *model) handleRightKey() {
	if m.focusedPanel == panelSettings {
		m.increaseSelectedSetting()
	} else {
		m.seekBy(m.cfg.SeekStep)
	}
}

// handlePageUpKey handles PageUp key press
func (m *model) handlePageUpKey() {
	m.cursorPos -= pageJumpSize
	if m.cursorPos < 0 {
		m.cursorPos = 0
	}
	m.ensureCursorVisible()
	m.updateViewportContent()
}

// handlePageDownKey handles PageDown key press
func (m *model) handlePageDownKey() {
	m.cursorPos += pageJumpSize
	if m.cursorPos >= m.queue.Len() {
		m.cursorPos = m.queue.Len() - 1
	}
	if m.cursorPos < 0 {
		m.cursorPos = 0
	}
	m.ensureCursorVisible()
	m.updateViewportContent()
}

// handleHomeKey handles Home/g key press
func (m *model) handleHomeKey() {
	m.cursorPos = 0
	m.ensureCursorVisible()
	m.updateViewportContent()
}

// handleEndKey handles End/G key press
func (m *model) handleEndKey() {
	if m.queue.Len() > 0 {
		m.cursorPos = m.queue.Len() - 1
	}
	m.ensureCursorVisible()
	m.updateViewportContent()
}

// updatePicker routes messages to the file picker modal
func (m model) updatePicker(msg tea.Msg) (model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.Cancel) {
		m.picking = false

		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.picking = false
		m.setStatusMsg("Adding: " + filepath.Base(path))

		return m, tea.Batch(cmd, extractTracks(m.extract, []string{path}))
	}

	if didSelect, path := m.picker.DidSelectDisabledFile(msg); didSelect {
		m.setStatusMsg("Not a supported audio file: " + filepath.Base(path))
	}

	return m, cmd
}
