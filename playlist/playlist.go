// ABOUTME: Circular doubly linked playback queue with persistent cursor and head
// ABOUTME: Side index keyed by node ID gives O(1) jump and removal composition

// Package playlist implements the circular playback queue.
// The queue is a doubly linked ring with a persistent cursor (the current
// track) and a head marking the chronological first append. A side index
// keyed by node ID provides O(1) lookup so callers can jump the cursor to
// any entry before removing it.
//
// Playlist does no locking. All operations must run on a single goroutine
// (the TUI update loop or the headless event loop); asynchronous events such
// as playback completion are delivered to that goroutine as messages before
// they touch the queue.
package playlist

import "github.com/google/uuid"

// Node is one entry in the ring. A node keeps its ID for the lifetime of the
// queue entry; after removal it is fully detached (nil links) but retains its
// Track and ID so callers can still display what was removed.
type Node struct {
	Track Track

	id   uuid.UUID
	next *Node
	prev *Node
}

// ID returns the stable identifier assigned at append time
func (n *Node) ID() uuid.UUID {
	return n.id
}

// Next returns the ring successor (nil on a detached node)
func (n *Node) Next() *Node {
	return n.next
}

// Prev returns the ring predecessor (nil on a detached node)
func (n *Node) Prev() *Node {
	return n.prev
}

// Playlist is the circular queue. The zero value is not usable; call New.
type Playlist struct {
	head  *Node
	cur   *Node
	size  int
	index map[uuid.UUID]*Node
}

// New creates an empty queue
func New() *Playlist {
	return &Playlist{index: make(map[uuid.UUID]*Node)}
}

// IsEmpty reports whether the queue has no tracks
func (p *Playlist) IsEmpty() bool {
	return p.size == 0
}

// Len returns the number of tracks in the queue
func (p *Playlist) Len() int {
	return p.size
}

// Append adds a track at the chronological end of the queue (just before the
// head) and returns its node. The first track appended becomes both head and
// current, linked to itself in both directions. Negative durations are
// clamped to zero; Append never rejects a track.
func (p *Playlist) Append(t Track) *Node {
	if t.Duration < 0 {
		t.Duration = 0
	}

	n := &Node{Track: t, id: uuid.New()}

	if p.head == nil {
		n.next = n
		n.prev = n
		p.head = n
		p.cur = n
	} else {
		last := p.head.prev
		last.next = n
		n.prev = last
		n.next = p.head
		p.head.prev = n
	}

	p.size++
	p.index[n.id] = n

	return n
}

// Current returns the node under the cursor, or nil when the queue is empty
func (p *Playlist) Current() *Node {
	return p.cur
}

// Head returns the chronological first node, or nil when the queue is empty
func (p *Playlist) Head() *Node {
	return p.head
}

// Advance moves the cursor one step forward, wrapping past the end, and
// returns the new current node. Returns nil on an empty queue.
func (p *Playlist) Advance() *Node {
	if p.cur == nil {
		return nil
	}

	p.cur = p.cur.next

	return p.cur
}

// Retreat moves the cursor one step backward, wrapping past the head, and
// returns the new current node. Returns nil on an empty queue.
func (p *Playlist) Retreat() *Node {
	if p.cur == nil {
		return nil
	}

	p.cur = p.cur.prev

	return p.cur
}

// RemoveCurrent unlinks the node under the cursor and returns it detached,
// or nil when the queue is empty. The cursor moves to the removed node's
// successor; if the head was removed the head moves there too. Removing the
// only track leaves the queue empty.
//
// Removal of an arbitrary entry is composed by the caller: MoveTo the target,
// RemoveCurrent, then MoveTo the previous current if it still exists.
func (p *Playlist) RemoveCurrent() *Node {
	if p.cur == nil {
		return nil
	}

	removed := p.cur
	delete(p.index, removed.id)
	p.size--

	if p.size == 0 {
		p.head = nil
		p.cur = nil
	} else {
		next := removed.next
		removed.prev.next = next
		next.prev = removed.prev

		if p.head == removed {
			p.head = next
		}

		p.cur = next
	}

	// Detach fully so removed nodes can't resurrect ring references
	removed.next = nil
	removed.prev = nil

	return removed
}

// Nodes returns a fresh snapshot of the ring in play order, starting at the
// head. The walk terminates by node identity, not by count. Returns an empty
// slice for an empty queue. Callers must re-fetch after any mutation; nodes
// from an old snapshot may already be detached.
func (p *Playlist) Nodes() []*Node {
	nodes := make([]*Node, 0, p.size)

	if p.head == nil {
		return nodes
	}

	n := p.head
	for {
		nodes = append(nodes, n)

		n = n.next
		if n == p.head {
			break
		}
	}

	return nodes
}

// Tracks returns a snapshot of the track values in play order
func (p *Playlist) Tracks() []Track {
	nodes := p.Nodes()
	tracks := make([]Track, len(nodes))

	for i, n := range nodes {
		tracks[i] = n.Track
	}

	return tracks
}

// Lookup finds a node by ID in O(1). The second return is false when no such
// entry is in the queue (including nodes already removed).
func (p *Playlist) Lookup(id uuid.UUID) (*Node, bool) {
	n, ok := p.index[id]

	return n, ok
}

// MoveTo positions the cursor on the node with the given ID
// Returns false and leaves the cursor untouched when the ID is not queued
func (p *Playlist) MoveTo(id uuid.UUID) bool {
	n, ok := p.index[id]
	if !ok {
		return false
	}

	p.cur = n

	return true
}
