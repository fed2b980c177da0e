package scene

import (
	"github.com/Carmen-Shannon/twin-go/engine/pose"
	"github.com/Carmen-Shannon/twin-go/engine/rig"
	"github.com/Carmen-Shannon/twin-go/engine/topology"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithTopology replaces the scene's skeleton topology. The ingestor and rig
// created by NewScene are sized to this topology. Ignored if nil.
//
// Parameters:
//   - topo: the topology to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTopology(topo topology.Topology) SceneBuilderOption {
	return func(s *scene) {
		if topo != nil {
			s.topo = topo
		}
	}
}

// WithIngestor replaces the scene's pose ingestor. Ignored if nil.
//
// Parameters:
//   - ing: the ingestor to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithIngestor(ing pose.Ingestor) SceneBuilderOption {
	return func(s *scene) {
		if ing != nil {
			s.ingestor = ing
		}
	}
}

// WithBuffer replaces the scene's pose buffer. Useful when the producer side
// publishes to a buffer shared with other consumers. Ignored if nil.
//
// Parameters:
//   - buf: the buffer to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBuffer(buf pose.Buffer) SceneBuilderOption {
	return func(s *scene) {
		if buf != nil {
			s.buffer = buf
		}
	}
}

// WithRig replaces the scene's skeleton rig. Ignored if nil.
//
// Parameters:
//   - r: the rig to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRig(r rig.Rig) SceneBuilderOption {
	return func(s *scene) {
		if r != nil {
			s.skeleton = r
		}
	}
}

// WithPrepWorkers sets the number of worker goroutines used during the
// parallel instance-pack phase of PrepareFrame. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of prep workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPrepWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.prepWorkers = n
	}
}

// WithJointRadii sets the sphere radii used for standard and fine joints.
//
// Parameters:
//   - standard: radius for standard joints
//   - fine: radius for fine joints (face and hands)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithJointRadii(standard, fine float32) SceneBuilderOption {
	return func(s *scene) {
		s.standardJointRadius = standard
		s.fineJointRadius = fine
	}
}

// WithBoneRadii sets the cylinder radii used for standard and fine bones.
//
// Parameters:
//   - standard: radius for standard bones
//   - fine: radius for fine bones (face and hands)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBoneRadii(standard, fine float32) SceneBuilderOption {
	return func(s *scene) {
		s.standardBoneRadius = standard
		s.fineBoneRadius = fine
	}
}

// WithJointColors sets the RGBA colors used for standard and fine joints.
//
// Parameters:
//   - standard: color for standard joints
//   - fine: color for fine joints
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithJointColors(standard, fine [4]float32) SceneBuilderOption {
	return func(s *scene) {
		s.standardJointColor = standard
		s.fineJointColor = fine
	}
}

// WithBoneColors sets the RGBA colors used for standard and fine bones.
//
// Parameters:
//   - standard: color for standard bones
//   - fine: color for fine bones
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBoneColors(standard, fine [4]float32) SceneBuilderOption {
	return func(s *scene) {
		s.standardBoneColor = standard
		s.fineBoneColor = fine
	}
}
