package pose

import (
	"sync/atomic"
)

// Buffer is the handoff point between the ingestion context and the render
// context. The writer publishes whole immutable Snapshots; the reader loads
// the latest one. Replacement is a single atomic pointer swap, so a reader
// never observes a snapshot mixing joints from two detector frames, and
// neither side ever blocks on the other.
type Buffer interface {
	// Publish stamps the snapshot with the next sequence number and installs
	// it as the current frame, replacing the previous one. Intended to be
	// called from a single ingestion goroutine.
	//
	// Parameters:
	//   - snap: the snapshot to install
	Publish(snap Snapshot)

	// Latest returns the most recently published snapshot. Never nil: before
	// the first publish it returns the empty "no detection" snapshot with
	// sequence 0. The returned value is immutable and safe to hold across
	// ticks.
	//
	// Returns:
	//   - *Snapshot: the current frame
	Latest() *Snapshot
}

type buffer struct {
	current atomic.Pointer[Snapshot]
	seq     atomic.Uint64
}

var _ Buffer = &buffer{}

// NewBuffer creates an empty Buffer holding the "no detection" snapshot.
//
// Returns:
//   - Buffer: the newly created buffer
func NewBuffer() Buffer {
	b := &buffer{}
	b.current.Store(&Snapshot{})
	return b
}

func (b *buffer) Publish(snap Snapshot) {
	snap.seq = b.seq.Add(1)
	b.current.Store(&snap)
}

func (b *buffer) Latest() *Snapshot {
	return b.current.Load()
}
