package rig

import (
	"github.com/Carmen-Shannon/twin-go/engine/pose"
	"github.com/Carmen-Shannon/twin-go/engine/topology"
	"github.com/go-gl/mathgl/mgl32"
)

// JointState is the render state of one joint entity: its world position,
// visual class, and whether it should be drawn this tick.
type JointState struct {
	Position mgl32.Vec3
	Class    topology.BoneClass
	Shown    bool
}

// BoneState is the render state of one bone entity. Placement, Rotation, and
// Length are meaningful only while Shown is true.
type BoneState struct {
	Placement mgl32.Vec3
	Rotation  mgl32.Quat
	Length    float32
	Class     topology.BoneClass
	Shown     bool
}

// Rig owns the fixed-size arrays of joint and bone render entities and maps
// frame snapshots onto them. An entity is either Shown or Hidden each tick,
// nothing in between: a joint shows when its snapshot slot is valid, a bone
// shows when both of its endpoints are. A Rig is owned by the render loop
// and is not safe for concurrent use.
type Rig interface {
	// Apply maps one snapshot onto every joint and bone entity. A
	// "no detection" snapshot hides everything. Safe to call repeatedly
	// with the same snapshot; the result depends only on the snapshot.
	//
	// Parameters:
	//   - snap: the frame to apply, must not be nil
	Apply(snap *pose.Snapshot)

	// Joints returns the joint entity array, indexed by landmark index.
	// Callers must not retain the slice across Apply calls if they need a
	// stable view; the backing array is reused.
	//
	// Returns:
	//   - []JointState: the joint entities
	Joints() []JointState

	// Bones returns the bone entity array, ordered as the topology's
	// connection table. Same retention caveat as Joints.
	//
	// Returns:
	//   - []BoneState: the bone entities
	Bones() []BoneState

	// Topology returns the skeleton wiring this rig was built from.
	//
	// Returns:
	//   - topology.Topology: the rig's topology
	Topology() topology.Topology

	// AppliedSeq returns the sequence number of the last applied snapshot,
	// or 0 if none has been applied yet.
	//
	// Returns:
	//   - uint64: last applied snapshot sequence
	AppliedSeq() uint64
}

type rig struct {
	topo       topology.Topology
	joints     []JointState
	bones      []BoneState
	appliedSeq uint64
}

var _ Rig = &rig{}

// NewRig creates a Rig with every entity Hidden, sized to the configured
// topology (full-body by default).
//
// Parameters:
//   - options: functional options for configuring the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(options ...RigBuilderOption) Rig {
	r := &rig{
		topo: topology.Default(),
	}
	for _, option := range options {
		option(r)
	}

	r.joints = make([]JointState, r.topo.JointCount())
	for i := range r.joints {
		r.joints[i].Class = topology.JointClass(i)
	}
	conns := r.topo.Connections()
	r.bones = make([]BoneState, len(conns))
	for i, c := range conns {
		r.bones[i].Class = c.Class
	}
	return r
}

func (r *rig) Apply(snap *pose.Snapshot) {
	r.appliedSeq = snap.Seq()

	if !snap.Detected() {
		for i := range r.joints {
			r.joints[i].Shown = false
		}
		for i := range r.bones {
			r.bones[i].Shown = false
		}
		return
	}

	for i := range r.joints {
		p, ok := snap.Position(i)
		r.joints[i].Shown = ok
		if ok {
			r.joints[i].Position = p
		}
	}

	for i, c := range r.topo.Connections() {
		a, okA := snap.Position(c.A)
		b, okB := snap.Position(c.B)
		if !okA || !okB {
			r.bones[i].Shown = false
			continue
		}
		// Coincident endpoints stay Shown with length 0; the zero scale
		// already collapses the segment to nothing on screen.
		t := Solve(a, b)
		r.bones[i].Placement = t.Placement
		r.bones[i].Rotation = t.Rotation
		r.bones[i].Length = t.Length
		r.bones[i].Shown = true
	}
}

func (r *rig) Joints() []JointState {
	return r.joints
}

func (r *rig) Bones() []BoneState {
	return r.bones
}

func (r *rig) Topology() topology.Topology {
	return r.topo
}

func (r *rig) AppliedSeq() uint64 {
	return r.appliedSeq
}
