package rig

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/twin-go/engine/pose"
	"github.com/Carmen-Shannon/twin-go/engine/topology"
	"github.com/go-gl/mathgl/mgl32"
)

// TestRigSizesFromTopology verifies the rig allocates one joint per landmark
// and one bone per connection, all hidden initially.
func TestRigSizesFromTopology(t *testing.T) {
	r := NewRig()
	topo := topology.Default()

	joints := r.Joints()
	if len(joints) != topo.JointCount() {
		t.Fatalf("expected %d joints, got %d", topo.JointCount(), len(joints))
	}
	bones := r.Bones()
	if len(bones) != len(topo.Connections()) {
		t.Fatalf("expected %d bones, got %d", len(topo.Connections()), len(bones))
	}
	for i, j := range joints {
		if j.Shown {
			t.Fatalf("joint %d shown before any snapshot", i)
		}
	}
	for i, b := range bones {
		if b.Shown {
			t.Fatalf("bone %d shown before any snapshot", i)
		}
	}
}

// TestRigAppliesPartialDetection runs the two-landmark scenario: only the
// reported joints and the single bone joining them are shown, everything else
// stays hidden.
func TestRigAppliesPartialDetection(t *testing.T) {
	ing := pose.NewIngestor()
	snap := ing.Ingest(pose.Detection{Landmarks: []pose.RawLandmark{
		{Index: 0, Position: mgl32.Vec3{0, 0, 0}},
		{Index: 1, Position: mgl32.Vec3{1, 1, 0}},
	}})

	r := NewRig()
	r.Apply(&snap)

	joints := r.Joints()
	if !joints[0].Shown || joints[0].Position != (mgl32.Vec3{0, 0, 0}) {
		t.Fatalf("joint 0 wrong: %+v", joints[0])
	}
	if !joints[1].Shown || joints[1].Position != (mgl32.Vec3{-1, -1, 0}) {
		t.Fatalf("joint 1 wrong: %+v", joints[1])
	}
	for i := 2; i < len(joints); i++ {
		if joints[i].Shown {
			t.Fatalf("joint %d should be hidden", i)
		}
	}

	topo := topology.Default()
	shownBones := 0
	for i, b := range r.Bones() {
		conn := topo.Connections()[i]
		if conn.A == 0 && conn.B == 1 {
			if !b.Shown {
				t.Fatalf("bone 0-1 should be shown")
			}
			want := mgl32.Vec3{-0.5, -0.5, 0}
			if b.Placement != want {
				t.Fatalf("expected bone placement %v, got %v", want, b.Placement)
			}
			if mgl32.Abs(b.Length-float32(math.Sqrt2)) > 1e-6 {
				t.Fatalf("expected bone length √2, got %v", b.Length)
			}
		} else if b.Shown {
			t.Fatalf("bone %d-%d should be hidden", conn.A, conn.B)
		}
		if b.Shown {
			shownBones++
		}
	}
	if shownBones != 1 {
		t.Fatalf("expected exactly one shown bone, got %d", shownBones)
	}
}

// TestRigHidesAllOnNoDetection verifies an undetected snapshot hides every
// joint and bone even right after a full pose.
func TestRigHidesAllOnNoDetection(t *testing.T) {
	ing := pose.NewIngestor()
	r := NewRig()

	full := make([]pose.RawLandmark, topology.LandmarkCount)
	for i := range full {
		full[i] = pose.RawLandmark{Index: i, Position: mgl32.Vec3{float32(i), 1, 0}}
	}
	snap := ing.Ingest(pose.Detection{Landmarks: full})
	r.Apply(&snap)

	for i, j := range r.Joints() {
		if !j.Shown {
			t.Fatalf("joint %d should be shown after full pose", i)
		}
	}

	empty := ing.Ingest(pose.Detection{})
	r.Apply(&empty)

	for i, j := range r.Joints() {
		if j.Shown {
			t.Fatalf("joint %d should be hidden after lost detection", i)
		}
	}
	for i, b := range r.Bones() {
		if b.Shown {
			t.Fatalf("bone %d should be hidden after lost detection", i)
		}
	}
}

// TestRigRecoversAfterDroppedFrames verifies a run of empty detections
// followed by a full pose restores every entity.
func TestRigRecoversAfterDroppedFrames(t *testing.T) {
	ing := pose.NewIngestor()
	r := NewRig()

	for i := 0; i < 5; i++ {
		empty := ing.Ingest(pose.Detection{})
		r.Apply(&empty)
	}

	full := make([]pose.RawLandmark, topology.LandmarkCount)
	for i := range full {
		full[i] = pose.RawLandmark{Index: i, Position: mgl32.Vec3{float32(i) * 0.1, 1.5, -0.2}}
	}
	snap := ing.Ingest(pose.Detection{Landmarks: full})
	r.Apply(&snap)

	for i, j := range r.Joints() {
		if !j.Shown {
			t.Fatalf("joint %d should be shown after recovery", i)
		}
	}
	for i, b := range r.Bones() {
		if !b.Shown {
			t.Fatalf("bone %d should be shown after recovery", i)
		}
	}
}

// TestRigZeroLengthBoneStaysShown verifies coincident endpoints keep the bone
// shown with zero length rather than hiding it.
func TestRigZeroLengthBoneStaysShown(t *testing.T) {
	ing := pose.NewIngestor()
	snap := ing.Ingest(pose.Detection{Landmarks: []pose.RawLandmark{
		{Index: 0, Position: mgl32.Vec3{0.5, 0.5, 0.5}},
		{Index: 1, Position: mgl32.Vec3{0.5, 0.5, 0.5}},
	}})

	r := NewRig()
	r.Apply(&snap)

	topo := topology.Default()
	for i, b := range r.Bones() {
		conn := topo.Connections()[i]
		if conn.A == 0 && conn.B == 1 {
			if !b.Shown {
				t.Fatalf("zero-length bone should stay shown")
			}
			if b.Length != 0 {
				t.Fatalf("expected length 0, got %v", b.Length)
			}
			return
		}
	}
	t.Fatalf("topology has no 0-1 connection")
}

// TestRigTracksAppliedSeq verifies the rig reports the sequence number of the
// snapshot it last consumed.
func TestRigTracksAppliedSeq(t *testing.T) {
	ing := pose.NewIngestor()
	buf := pose.NewBuffer()
	r := NewRig()

	if r.AppliedSeq() != 0 {
		t.Fatalf("expected applied seq 0 before any snapshot, got %d", r.AppliedSeq())
	}

	buf.Publish(ing.Ingest(pose.Detection{Landmarks: []pose.RawLandmark{
		{Index: 0, Position: mgl32.Vec3{1, 0, 0}},
	}}))
	buf.Publish(ing.Ingest(pose.Detection{}))

	r.Apply(buf.Latest())
	if r.AppliedSeq() != 2 {
		t.Fatalf("expected applied seq 2, got %d", r.AppliedSeq())
	}
}

// TestRigJointClasses verifies face joints carry the fine class through to
// the rig state.
func TestRigJointClasses(t *testing.T) {
	r := NewRig()
	joints := r.Joints()
	if joints[topology.Nose].Class != topology.ClassFine {
		t.Fatalf("nose joint should be fine")
	}
	if joints[topology.LeftHip].Class != topology.ClassStandard {
		t.Fatalf("hip joint should be standard")
	}
}
