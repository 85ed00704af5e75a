// ABOUTME: Rendering and display functions for the TUI
// ABOUTME: Implements the Bubble Tea View() function and all render helpers

package tui

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"ring-player/player"
	"ring-player/playlist"
)

// View renders the TUI
func (m model) View() string {
	defer func() {
		if r := recover(); r != nil {
			m.debugf("[PANIC] View panic: %v", r)
			m.debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	if m.quitting {
		return "Saving config and exiting...\n"
	}

	if m.picking {
		return m.renderPicker()
	}

	// Build the UI in two columns
	leftPanel := m.renderNowPlaying() + "\n" + m.renderSettings()
	rightPanel := m.renderQueue()

	// Both panels should have same height for proper horizontal joining
	// Leave room for status bar and help (3 lines total)
	panelHeight := m.height - (statusBarHeight + helpHeight + 1)

	leftPanelStyle := lipgloss.NewStyle().
		Width(playerPanelWidth).
		Height(panelHeight).
		Padding(0, 1)

	rightPanelWidth := m.width - playerPanelWidth - panelPadding
	if rightPanelWidth < minViewportWidth*2 {
		rightPanelWidth = minViewportWidth * 2 // Minimum width for readable track display
	}

	rightPanelStyle := lipgloss.NewStyle().
		Width(rightPanelWidth).
		Height(panelHeight).
		Padding(0, 1)

	// Combine panels horizontally
	combined := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanelStyle.Render(leftPanel),
		rightPanelStyle.Render(rightPanel),
	)

	// Add status bar at bottom
	statusBar := m.renderStatus()

	return combined + "\n" + statusBar + "\n" + m.renderHelp()
}

// renderNowPlaying renders the current track with position and volume
func (m model) renderNowPlaying() string {
	var s string

	s += titleStyle.Render("Now playing") + "\n\n"

	cur := m.queue.Current()
	if cur == nil {
		s += helpStyle.Render("nothing loaded") + "\n"

		return s
	}

	s += fmt.Sprintf("%s %s\n", stateIcon(m.state), playingStyle.Render(truncate(cur.Track.Title, 40)))
	s += truncate(cur.Track.Artist, 40) + "\n\n"

	clock := playlist.FormatDuration(m.position)
	if m.duration > 0 {
		clock += " / " + playlist.FormatDuration(m.duration)
	}

	s += clock + "\n"
	s += m.progress.ViewAs(m.progressRatio()) + "\n\n"
	s += fmt.Sprintf("Volume: %d%%\n", m.engine.Volume())

	return s
}

// renderSettings renders the settings control panel
func (m model) renderSettings() string {
	var s string

	title := "Settings"
	if m.focusedPanel == panelSettings {
		title = "► " + title + " [FOCUSED]"
	}

	s += titleStyle.Render(title) + "\n\n"

	for i, setting := range m.settings {
		var value string

		switch {
		case setting.IsBool && setting.BoolValue != nil:
			value = "off"
			if *setting.BoolValue {
				value = "on"
			}
		case !setting.IsBool && setting.IntValue != nil:
			value = strconv.Itoa(*setting.IntValue)
		default:
			value = "N/A"
		}

		// Fixed width formatting to prevent column misalignment
		prefix := "  "
		if i == m.selectedSetting {
			prefix = "► "
		}

		line := fmt.Sprintf("%s%-20s %6s", prefix, setting.Name, value)

		if i == m.selectedSetting {
			s += selectedSettingStyle.Render(line) + "\n"
		} else {
			s += settingStyle.Render(line) + "\n"
		}
	}

	return s
}

// renderQueue renders the track queue with viewport scrolling
func (m model) renderQueue() string {
	var s string

	title := fmt.Sprintf("Queue (%d tracks)", m.queue.Len())
	if m.focusedPanel == panelQueue {
		title = "► " + title + " [FOCUSED]"
	}

	s += titleStyle.Render(title) + "\n\n"

	// Header
	header := fmt.Sprintf("%-2s %-3s %-32s %-22s %6s", "", "#", "Title", "Artist", "Time")
	s += queueHeaderStyle.Render(header) + "\n"

	// Render viewport (content should be set in Update())
	s += m.viewport.View()

	return s
}

// updateViewportContent builds and sets the viewport content
// Renders ALL tracks - let viewport handle scrolling
func (m *model) updateViewportContent() {
	var content string

	cur := m.queue.Current()

	// Render all tracks - viewport will handle scrolling via YOffset
	for i, node := range m.queue.Nodes() {
		marker := "  "
		if node == cur {
			marker = "▶ "
		}

		line := fmt.Sprintf("%s%-3d %-32s %-22s %6s",
			marker,
			i+1,
			truncate(node.Track.Title, 32),
			truncate(node.Track.Artist, 22),
			playlist.FormatDuration(node.Track.Duration),
		)

		// Highlight cursor line
		if i == m.cursorPos {
			line = cursorStyle.Render(line)
		}

		content += line + "\n"
	}

	m.viewport.SetContent(content)
}

// renderStatus renders the status bar
func (m model) renderStatus() string {
	// Show status message if recent
	if m.statusMsg != "" && time.Since(m.statusMsgAge) < statusMessageDuration {
		return statusStyle.Width(m.width).Render(m.statusMsg)
	}

	// Total running time and the playing track's position in the ring
	total := 0
	currentIdx := 0
	cur := m.queue.Current()

	for i, node := range m.queue.Nodes() {
		total += node.Track.Duration
		if node == cur {
			currentIdx = i + 1
		}
	}

	trackInfo := fmt.Sprintf("%d tracks (%s) | Track %d/%d",
		m.queue.Len(),
		playlist.FormatDuration(total),
		currentIdx,
		m.queue.Len(),
	)

	undoInfo := fmt.Sprintf("U:%d R:%d", m.undoMgr.UndoSize(), m.undoMgr.RedoSize())

	autoFlag := "auto-advance off"
	if m.cfg.AutoAdvance {
		autoFlag = "auto-advance on"
	}

	status := fmt.Sprintf("%s | %s | %s | %s",
		trackInfo,
		undoInfo,
		m.state,
		autoFlag,
	)

	return statusStyle.Width(m.width).Render(status)
}

// renderPicker renders the add-tracks file picker modal
func (m model) renderPicker() string {
	var s string

	s += titleStyle.Render("Add tracks") + "\n\n"
	s += m.picker.View() + "\n"
	s += helpStyle.Render(" enter: select | esc: cancel")

	return s
}

// renderHelp renders the help text
func (m model) renderHelp() string {
	return helpStyle.Render(" Tab: switch panel | space: play/pause | n/p: next/prev | enter: play selected | ←/→: seek or adjust | d: delete | u: undo | ctrl+r: redo | a: add | +/-: volume | q: quit")
}

// stateIcon returns the playback indicator for a state
func stateIcon(s player.State) string {
	switch s {
	case player.Playing:
		return "▶"
	case player.Paused:
		return "⏸"
	default:
		return "■"
	}
}

// progressRatio converts position/duration into a 0..1 progress bar ratio
func (m model) progressRatio() float64 {
	if m.duration <= 0 {
		return 0
	}

	ratio := float64(m.position) / float64(m.duration)
	if ratio > 1 {
		ratio = 1
	}

	return ratio
}
