package pose

import (
	"github.com/Carmen-Shannon/twin-go/engine/topology"
	"github.com/go-gl/mathgl/mgl32"
)

// RawLandmark is one landmark record as emitted by a detector: a landmark
// index paired with a position in detector space. Records may arrive in any
// order and any subset of indices may be absent from a given detection.
type RawLandmark struct {
	Index    int
	Position mgl32.Vec3
}

// Detection is the raw output of one detector invocation. An empty Landmarks
// slice means the detector found no body in the frame.
type Detection struct {
	Landmarks []RawLandmark
}

// Snapshot is one fully-formed, immutable set of render-space joint
// positions, or the "no detection" value. Snapshots are produced by an
// Ingestor, stamped with a sequence number by the Buffer on publish, and read
// by the render loop. A Snapshot is never mutated after publish; readers may
// hold a reference across ticks safely.
type Snapshot struct {
	seq       uint64
	detected  bool
	valid     [topology.LandmarkCount]bool
	positions [topology.LandmarkCount]mgl32.Vec3
}

// Seq returns the snapshot's publish sequence number. The initial empty
// snapshot has sequence 0; every published snapshot has a strictly greater
// sequence than its predecessor.
//
// Returns:
//   - uint64: monotonically increasing publish counter
func (s *Snapshot) Seq() uint64 {
	return s.seq
}

// Detected reports whether the detector found a body in this frame. When
// false, every Position call reports invalid.
//
// Returns:
//   - bool: true if this snapshot carries landmark data
func (s *Snapshot) Detected() bool {
	return s.detected
}

// Position returns the render-space position of a joint and whether that
// joint was observed in this frame. Positions of unobserved joints are
// meaningless and must not be rendered or connected.
//
// Parameters:
//   - index: joint index in [0, topology.LandmarkCount)
//
// Returns:
//   - mgl32.Vec3: render-space position (zero value when not observed)
//   - bool: true if the joint was observed with finite coordinates
func (s *Snapshot) Position(index int) (mgl32.Vec3, bool) {
	if index < 0 || index >= topology.LandmarkCount {
		return mgl32.Vec3{}, false
	}
	if !s.detected || !s.valid[index] {
		return mgl32.Vec3{}, false
	}
	return s.positions[index], true
}

// ValidCount returns how many joints were observed in this frame. Zero for
// the "no detection" snapshot.
//
// Returns:
//   - int: number of valid joint entries
func (s *Snapshot) ValidCount() int {
	n := 0
	for _, v := range s.valid {
		if v {
			n++
		}
	}
	return n
}
