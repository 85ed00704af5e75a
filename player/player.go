// ABOUTME: Playback engine tracking state and position against the wall clock
// ABOUTME: Publishes position, state, and completion events to one control goroutine

// Package player drives playback timing for the queue.
//
// Engine holds one loaded track at a time. While playing, position advances
// against the wall clock; when it reaches the loaded duration the engine
// stops and emits a completion event. The event stream has exactly one
// consumer, the control goroutine that owns the queue, so queue mutations
// triggered by playback never race the queue.
package player

import (
	"sync"
	"time"
)

const (
	tickInterval = 200 * time.Millisecond
	eventBuffer  = 16
)

// State is the engine's playback state
type State int

// Playback states
const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the lowercase state name
func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// EventKind discriminates engine events
type EventKind int

// Event kinds emitted by the engine
const (
	EventState     EventKind = iota // playback state changed
	EventDuration                   // loaded track duration changed
	EventPosition                   // whole-second position moved
	EventCompleted                  // position reached the loaded duration
)

// Event is a snapshot notification from the engine. Position and Duration
// are whole seconds.
type Event struct {
	Kind     EventKind
	Position int
	Duration int
	State    State
}

// Engine tracks playback for one loaded track at a time.
// All methods are safe to call from any goroutine, but the event stream must
// be consumed by a single control goroutine.
type Engine struct {
	mu        sync.Mutex
	path      string
	duration  int           // loaded track length in seconds, 0 when unknown
	state     State
	volume    int
	elapsed   time.Duration // accumulated playback before startedAt
	startedAt time.Time     // wall-clock anchor of the current play stretch

	// Last values published, so ticks only emit actual changes
	lastState    State
	lastDuration int
	lastWhole    int

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
	now       func() time.Time // swapped out in tests
}

// NewEngine creates an engine with the given starting volume and begins
// ticking
func NewEngine(volume int) *Engine {
	e := newEngine(volume)
	go e.run()

	return e
}

// newEngine builds an engine without starting the tick goroutine
func newEngine(volume int) *Engine {
	return &Engine{
		volume: clampVolume(volume),
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
		now:    time.Now,
	}
}

// Events returns the engine's event stream. The channel closes when the
// engine is closed.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// Load replaces the current track. Playback stops and position resets; the
// next tick publishes the new duration. A duration of 0 means unknown: the
// position counts up freely and no completion fires.
func (e *Engine) Load(path string, duration int) {
	if duration < 0 {
		duration = 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.path = path
	e.duration = duration
	e.elapsed = 0
	e.state = Stopped
}

// Play starts or resumes playback. Playing a track that already ran to the
// end restarts it from the beginning. No-op when nothing is loaded.
func (e *Engine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.path == "" || e.state == Playing {
		return
	}

	if e.duration > 0 && e.elapsed >= time.Duration(e.duration)*time.Second {
		e.elapsed = 0
	}

	e.state = Playing
	e.startedAt = e.now()
}

// Pause freezes playback at the current position
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Playing {
		return
	}

	e.elapsed = e.positionLocked()
	e.state = Paused
}

// Stop halts playback and resets the position to the start
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = Stopped
	e.elapsed = 0
}

// Seek jumps to the given position in seconds, clamped to the track bounds
// No-op when nothing is loaded
func (e *Engine) Seek(seconds int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.path == "" {
		return
	}

	if seconds < 0 {
		seconds = 0
	}

	if e.duration > 0 && seconds > e.duration {
		seconds = e.duration
	}

	e.elapsed = time.Duration(seconds) * time.Second
	if e.state == Playing {
		e.startedAt = e.now()
	}
}

// SetVolume sets the volume, clamped to 0..100
func (e *Engine) SetVolume(v int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.volume = clampVolume(v)
}

// Volume returns the current volume
func (e *Engine) Volume() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.volume
}

// Path returns the loaded track path, empty when nothing is loaded
func (e *Engine) Path() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.path
}

// Duration returns the loaded track length in seconds
func (e *Engine) Duration() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.duration
}

// State returns the current playback state
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Position returns the playback position in whole seconds
func (e *Engine) Position() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return int(e.positionLocked() / time.Second)
}

// Close stops the tick goroutine and closes the event stream
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		close(e.done)
	})
}

// positionLocked computes the live position; callers hold e.mu
func (e *Engine) positionLocked() time.Duration {
	pos := e.elapsed
	if e.state == Playing {
		pos += e.now().Sub(e.startedAt)
	}

	return pos
}

// run ticks until Close
func (e *Engine) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	defer close(e.events)

	for {
		select {
		case <-e.done:
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

// tick publishes whatever changed since the last tick and detects completion
func (e *Engine) tick() {
	e.mu.Lock()

	whole := int(e.positionLocked() / time.Second)

	finished := e.state == Playing && e.duration > 0 && whole >= e.duration
	if finished {
		// Clamp at the end and stop; what plays next is the consumer's call
		e.state = Stopped
		e.elapsed = time.Duration(e.duration) * time.Second
		whole = e.duration
	}

	var changes []Event

	if e.duration != e.lastDuration {
		changes = append(changes, Event{Kind: EventDuration, Position: whole, Duration: e.duration, State: e.state})
	}

	if e.state != e.lastState {
		changes = append(changes, Event{Kind: EventState, Position: whole, Duration: e.duration, State: e.state})
	}

	if whole != e.lastWhole {
		changes = append(changes, Event{Kind: EventPosition, Position: whole, Duration: e.duration, State: e.state})
	}

	e.lastDuration = e.duration
	e.lastState = e.state
	e.lastWhole = whole

	completion := Event{Kind: EventCompleted, Position: whole, Duration: e.duration, State: e.state}

	e.mu.Unlock()

	for _, ev := range changes {
		e.send(ev, false)
	}

	if finished {
		e.send(completion, true)
	}
}

// send delivers an event to the consumer. Progress updates are droppable
// when the consumer lags; completion blocks until delivered or the engine
// closes, because a lost completion would stall auto-advance.
func (e *Engine) send(ev Event, critical bool) {
	if critical {
		select {
		case e.events <- ev:
		case <-e.done:
		}

		return
	}

	select {
	case e.events <- ev:
	default:
	}
}

// clampVolume bounds a volume to 0..100
func clampVolume(v int) int {
	if v < 0 {
		return 0
	}

	if v > 100 {
		return 100
	}

	return v
}
