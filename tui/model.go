// ABOUTME: Terminal UI model and core state management
// ABOUTME: Bubble Tea model implementation driving the ring queue and engine

// Package tui provides the interactive terminal player for the track ring.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"ring-player/config"
	"ring-player/player"
	"ring-player/playlist"
)

// Panel identifiers
const (
	panelSettings = "settings"
	panelQueue    = "queue"
)

// Layout constants for UI dimensions
const (
	playerPanelWidth = 45 // Left panel width for now-playing display and settings
	panelPadding     = 2  // Horizontal spacing between panels

	// UI chrome heights (elements that reduce available viewport space)
	titleHeight     = 2 // Panel title bars
	headerHeight    = 1 // Column headers for the queue
	statusBarHeight = 1 // Bottom status bar
	helpHeight      = 1 // Help text line
	spacingHeight   = 2 // Vertical spacing between elements
	totalUIChrome   = titleHeight + headerHeight + statusBarHeight + helpHeight + spacingHeight

	// Minimum viewport dimensions to ensure usability
	minViewportWidth  = 20
	minViewportHeight = 5
)

// Navigation and interaction constants
const (
	pageJumpSize          = 10              // Number of tracks to jump on PageUp/PageDown
	statusMessageDuration = 5 * time.Second // How long to show transient status messages
	maxUndoStackSize      = 50              // Maximum undo/redo history items
	volumeStep            = 5               // Volume change per keypress
)

// Player is the playback engine surface the UI drives. The engine never
// touches the queue; the UI decides what to load in response to events.
type Player interface {
	Load(path string, duration int)
	Play()
	Pause()
	Stop()
	Seek(seconds int)
	SetVolume(v int)
	Volume() int
	Path() string
	Duration() int
	Position() int
	State() player.State
	Events() <-chan player.Event
}

// playerEvent wraps an engine event as a Bubble Tea message
type playerEvent player.Event

// model holds the TUI state
type model struct {
	// Dependencies (concrete types following Go philosophy)
	queue       *playlist.Playlist
	engine      Player
	scanLibrary func() ([]string, error)
	extract     func([]string) []playlist.Track
	debugf      func(string, ...interface{})

	// Configuration (pointer so setting addresses stay valid)
	cfg             *config.Config
	settings        []Setting
	selectedSetting int
	configPath      string

	// Playback state mirrored from engine events
	position int
	duration int
	state    player.State

	// Library watching
	libraryDir string
	watcher    *fsnotify.Watcher
	seenPaths  map[string]bool

	// UI state
	width        int
	height       int
	quitting     bool
	statusMsg    string    // Temporary status message (e.g., "Now playing: ...")
	statusMsgAge time.Time // When status message was set
	focusedPanel string    // "settings" or "queue" - which panel has focus

	// Queue browsing and editing
	cursorPos int            // Current cursor position in the queue listing
	viewport  viewport.Model // Viewport for scrolling the queue
	undoMgr   *UndoManager   // Undo/redo history manager
	progress  progress.Model // Playback progress bar

	// File picker modal for adding tracks
	picker  filepicker.Model
	picking bool
}

// Key bindings
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Reset key.Binding
	Quit  key.Binding
	// Queue navigation
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	// Queue editing
	Delete key.Binding
	Undo   key.Binding
	Redo   key.Binding
	Add    key.Binding
	// Playback
	PlayPause  key.Binding
	Stop       key.Binding
	Next       key.Binding
	Prev       key.Binding
	PlayCursor key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	// Panel switching
	Tab key.Binding
	// Modal dismissal
	Cancel key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "navigate"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "seek back / decrease"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "seek forward / increase"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset settings"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "first track"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "last track"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete track"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "redo"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add tracks"),
	),
	PlayPause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	Stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop"),
	),
	Next: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next track"),
	),
	Prev: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "previous track"),
	),
	PlayCursor: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "play selected"),
	),
	VolumeUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "volume up"),
	),
	VolumeDown: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "volume down"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch panel"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	settingStyle = lipgloss.NewStyle().
			Padding(0, 1)

	selectedSettingStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("240")).
				Foreground(lipgloss.Color("15")).
				Bold(true).
				Padding(0, 1)

	queueHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("10"))

	playingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15"))
)

// Run starts the TUI mode with injected dependencies
func Run(opts Options, queue *playlist.Playlist, engine Player, scanLibrary func() ([]string, error), extract func([]string) []playlist.Track, debugf func(string, ...interface{}), cfg config.Config, configPath string) error {
	m := initModel(queue, engine, opts, scanLibrary, extract, debugf, cfg, configPath)

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// initModel creates the initial model with injected dependencies
func initModel(queue *playlist.Playlist, engine Player, opts Options, scanLibrary func() ([]string, error), extract func([]string) []playlist.Track, debugf func(string, ...interface{}), cfg config.Config, configPath string) model {
	// Allocate on the heap so setting pointers remain valid
	localCfg := &cfg

	// Tracks already queued don't get re-added on library rescans
	seen := make(map[string]bool)
	for _, t := range queue.Tracks() {
		seen[t.Path] = true
	}

	var watcher *fsnotify.Watcher

	if opts.LibraryDir != "" {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			debugf("[TUI] Library watcher unavailable: %v", err)
		} else if err := w.Add(opts.LibraryDir); err != nil {
			debugf("[TUI] Cannot watch library dir %s: %v", opts.LibraryDir, err)
			_ = w.Close()
		} else {
			watcher = w
		}
	}

	m := model{
		// Injected dependencies (concrete types)
		queue:       queue,
		engine:      engine,
		scanLibrary: scanLibrary,
		extract:     extract,
		debugf:      debugf,

		// Configuration
		cfg:        localCfg,
		configPath: configPath,

		// Library watching
		libraryDir: opts.LibraryDir,
		watcher:    watcher,
		seenPaths:  seen,

		// Playback state
		state: player.Stopped,

		// UI state
		viewport:     viewport.New(0, 0), // Width and height set on first WindowSizeMsg
		progress:     progress.New(progress.WithDefaultGradient()),
		focusedPanel: panelQueue,

		// Queue editing
		cursorPos: 0,
		undoMgr:   NewUndoManager(maxUndoStackSize),
	}

	// Build setting list with pointers to config fields
	m.settings = []Setting{
		{Name: "Default Volume", IntValue: &localCfg.DefaultVolume, Min: 0, Max: 100, Step: volumeStep},
		{Name: "Seek Step", IntValue: &localCfg.SeekStep, Min: 1, Max: 60, Step: 1},
		{Name: "Auto Advance", BoolValue: &localCfg.AutoAdvance, IsBool: true},
	}
	m.selectedSetting = 0

	// Load the first track so space starts playback immediately
	if cur := queue.Current(); cur != nil {
		engine.Load(cur.Track.Path, cur.Track.Duration)
		m.duration = cur.Track.Duration
	}

	return m
}

// ========== Bubble Tea Lifecycle ==========

// Init initializes the model
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		waitForEvent(m.engine.Events()),
		tea.EnterAltScreen,
	}

	if m.watcher != nil {
		cmds = append(cmds, watchLibrary(m.watcher, m.debugf))
	}

	return tea.Batch(cmds...)
}

// waitForEvent waits for engine events and returns them as messages
func waitForEvent(events <-chan player.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			// Engine closed
			return nil
		}

		return playerEvent(ev)
	}
}

// ========== Helper Methods ==========

// setStatusMsg sets a transient status message with current timestamp
func (m *model) setStatusMsg(msg string) {
	m.statusMsg = msg
	m.statusMsgAge = time.Now()
}

// ensureCursorVisible adjusts viewport offset to keep cursor visible with middle-of-screen scrolling
// Implements vim/less style scrolling using ViewportManager
func (m *model) ensureCursorVisible() {
	vm := NewViewportManager(m.viewport.Height, m.cursorPos, m.queue.Len())
	offset := vm.CalculateOffset()
	m.viewport.SetYOffset(offset)
}

// captureState snapshots the ring for the undo stack
func (m *model) captureState() QueueState {
	nodes := m.queue.Nodes()
	cur := m.queue.Current()

	tracks := make([]playlist.Track, len(nodes))
	current := -1

	for i, n := range nodes {
		tracks[i] = n.Track
		if n == cur {
			current = i
		}
	}

	return QueueState{
		Tracks:    tracks,
		Current:   current,
		CursorPos: m.cursorPos,
	}
}

// restoreState rebuilds the ring from a snapshot and re-syncs the engine
func (m *model) restoreState(state QueueState) {
	wasPlaying := m.engine.State() == player.Playing

	for !m.queue.IsEmpty() {
		m.queue.RemoveCurrent()
	}

	for _, t := range state.Tracks {
		m.queue.Append(t)
		m.seenPaths[t.Path] = true
	}

	if state.Current >= 0 {
		nodes := m.queue.Nodes()
		if state.Current < len(nodes) {
			m.queue.MoveTo(nodes[state.Current].ID())
		}
	}

	m.cursorPos = state.CursorPos
	m.clampCursor()
	m.syncEngine(wasPlaying)
	m.ensureCursorVisible()
}

// clampCursor keeps the cursor inside the queue bounds
func (m *model) clampCursor() {
	if m.cursorPos >= m.queue.Len() {
		m.cursorPos = m.queue.Len() - 1
	}

	if m.cursorPos < 0 {
		m.cursorPos = 0
	}
}

// pushUndo saves current state to undo stack using UndoManager
func (m *model) pushUndo() {
	m.undoMgr.Push(m.captureState())
}

// deleteTrack removes the track under the cursor from the ring. Deleting the
// playing track hands the engine whatever took its place; deleting any other
// track leaves playback alone.
func (m *model) deleteTrack() {
	if m.queue.IsEmpty() {
		return
	}

	// Save current state to undo stack
	m.pushUndo()

	nodes := m.queue.Nodes()
	m.clampCursor()
	target := nodes[m.cursorPos]

	playing := m.queue.Current()
	wasPlaying := m.engine.State() == player.Playing

	m.queue.MoveTo(target.ID())
	removed := m.queue.RemoveCurrent()

	if playing != nil && playing != target {
		// A non-playing row went away; put the ring cursor back
		m.queue.MoveTo(playing.ID())
	} else {
		m.syncEngine(wasPlaying)
	}

	m.clampCursor()
	m.setStatusMsg(fmt.Sprintf("Removed: %s (Undo: %d, Redo: %d)", removed.Track.Title, m.undoMgr.UndoSize(), m.undoMgr.RedoSize()))
	m.ensureCursorVisible()
	m.updateViewportContent()
}

// undo restores previous state from undo stack using UndoManager
func (m *model) undo() {
	state, ok := m.undoMgr.Undo(m.captureState())
	if !ok {
		m.setStatusMsg("Nothing to undo")

		return
	}

	m.restoreState(state)
	m.setStatusMsg(fmt.Sprintf("Undo (Undo: %d, Redo: %d)", m.undoMgr.UndoSize(), m.undoMgr.RedoSize()))
	m.updateViewportContent()
}

// redo restores next state from redo stack using UndoManager
func (m *model) redo() {
	state, ok := m.undoMgr.Redo(m.captureState())
	if !ok {
		m.setStatusMsg("Nothing to redo")

		return
	}

	m.restoreState(state)
	m.setStatusMsg(fmt.Sprintf("Redo (Undo: %d, Redo: %d)", m.undoMgr.UndoSize(), m.undoMgr.RedoSize()))
	m.updateViewportContent()
}

// addTracks appends extracted tracks to the ring. The first track added to
// an empty ring is loaded into the engine, paused at the start.
func (m *model) addTracks(tracks []playlist.Track) {
	if len(tracks) == 0 {
		return
	}

	m.pushUndo()

	wasEmpty := m.queue.IsEmpty()

	for _, t := range tracks {
		m.queue.Append(t)
		m.seenPaths[t.Path] = true
	}

	if wasEmpty {
		m.syncEngine(false)
	}

	if len(tracks) == 1 {
		m.setStatusMsg("Added: " + tracks[0].Title)
	} else {
		m.setStatusMsg(fmt.Sprintf("Added %d tracks", len(tracks)))
	}

	m.ensureCursorVisible()
	m.updateViewportContent()
}

// loadCurrent hands the ring's current track to the engine
func (m *model) loadCurrent(play bool) {
	cur := m.queue.Current()
	if cur == nil {
		return
	}

	m.engine.Load(cur.Track.Path, cur.Track.Duration)
	m.position = 0
	m.duration = cur.Track.Duration
	m.state = player.Stopped

	if play {
		m.engine.Play()
		m.state = player.Playing
		m.setStatusMsg("Now playing: " + cur.Track.String())
	}
}

// syncEngine points the engine at the ring's current track after queue edits
func (m *model) syncEngine(wasPlaying bool) {
	cur := m.queue.Current()
	if cur == nil {
		m.engine.Load("", 0)
		m.position = 0
		m.duration = 0
		m.state = player.Stopped

		return
	}

	if cur.Track.Path != m.engine.Path() {
		m.loadCurrent(wasPlaying)
	}
}

// handleCompletion advances the ring when a track runs out
func (m *model) handleCompletion() {
	if !m.cfg.AutoAdvance || m.queue.IsEmpty() {
		return
	}

	m.queue.Advance()
	m.loadCurrent(true)
	m.updateViewportContent()
}

// togglePlay starts or pauses playback
func (m *model) togglePlay() {
	if m.queue.IsEmpty() {
		m.setStatusMsg("Queue is empty")

		return
	}

	if m.engine.State() == player.Playing {
		m.engine.Pause()
		m.state = player.Paused
	} else {
		m.engine.Play()
		m.state = player.Playing
	}
}

// stopPlayback halts the engine and rewinds to the start
func (m *model) stopPlayback() {
	m.engine.Stop()
	m.state = player.Stopped
	m.position = 0
}

// nextTrack advances the ring, carrying the playing state over
func (m *model) nextTrack() {
	if m.queue.IsEmpty() {
		return
	}

	wasPlaying := m.engine.State() == player.Playing
	m.queue.Advance()
	m.loadCurrent(wasPlaying)
	m.updateViewportContent()
}

// prevTrack steps the ring backwards, carrying the playing state over
func (m *model) prevTrack() {
	if m.queue.IsEmpty() {
		return
	}

	wasPlaying := m.engine.State() == player.Playing
	m.queue.Retreat()
	m.loadCurrent(wasPlaying)
	m.updateViewportContent()
}

// playCursor moves the ring to the track under the cursor and plays it
func (m *model) playCursor() {
	nodes := m.queue.Nodes()
	if len(nodes) == 0 {
		return
	}

	m.clampCursor()
	m.queue.MoveTo(nodes[m.cursorPos].ID())
	m.loadCurrent(true)
	m.updateViewportContent()
}

// seekBy jumps the playback position by delta seconds
func (m *model) seekBy(delta int) {
	if m.engine.Path() == "" {
		return
	}

	target := m.engine.Position() + delta
	if target < 0 {
		target = 0
	}

	m.engine.Seek(target)
	m.position = m.engine.Position()
}

// adjustVolume changes the live volume and keeps the config in step so the
// settings panel shows the change and quit persists it
func (m *model) adjustVolume(delta int) {
	m.engine.SetVolume(m.engine.Volume() + delta)
	m.cfg.DefaultVolume = m.engine.Volume()
	m.setStatusMsg(fmt.Sprintf("Volume: %d%%", m.engine.Volume()))
}

// increaseSelectedSetting raises the selected setting value
func (m *model) increaseSelectedSetting() {
	if m.selectedSetting < len(m.settings) && increaseSetting(&m.settings[m.selectedSetting]) {
		m.applySettings()
	}
}

// decreaseSelectedSetting lowers the selected setting value
func (m *model) decreaseSelectedSetting() {
	if m.selectedSetting < len(m.settings) && decreaseSetting(&m.settings[m.selectedSetting]) {
		m.applySettings()
	}
}

// resetSettings resets all settings to their default values
func (m *model) resetSettings() {
	resetSettingsToDefaults(m.settings, config.DefaultConfig())
	m.applySettings()
	m.setStatusMsg("Settings reset to defaults")
}

// applySettings pushes changed settings where they take effect immediately.
// Volume applies live; seek step and auto advance are read where they're used.
func (m *model) applySettings() {
	m.engine.SetVolume(m.cfg.DefaultVolume)

	if m.selectedSetting < len(m.settings) {
		m.debugf("[TUI] Setting changed - %s", m.settings[m.selectedSetting].Name)
	}
}

// openPicker opens the file picker modal for adding tracks
func (m *model) openPicker() tea.Cmd {
	fp := filepicker.New()
	fp.AllowedTypes = allowedExtensions(m.cfg.FileFilters)
	fp.CurrentDirectory = m.pickerStartDir()
	fp.AutoHeight = false

	fp.Height = m.viewport.Height
	if fp.Height < minViewportHeight {
		fp.Height = minViewportHeight
	}

	m.picker = fp
	m.picking = true

	return m.picker.Init()
}

// pickerStartDir chooses where the add-tracks picker opens
func (m *model) pickerStartDir() string {
	if m.libraryDir != "" {
		return m.libraryDir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return home
}

// allowedExtensions converts glob filters like "*.mp3" to the extension list
// the file picker expects
func allowedExtensions(filters []string) []string {
	exts := make([]string, 0, len(filters))
	for _, f := range filters {
		ext := strings.TrimPrefix(f, "*")
		if ext != "" {
			exts = append(exts, ext)
		}
	}

	return exts
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return s[:maxLen]
	}

	return s[:maxLen-3] + "..."
}
