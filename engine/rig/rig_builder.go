package rig

import (
	"github.com/Carmen-Shannon/twin-go/engine/topology"
)

// RigBuilderOption is a functional option for configuring a Rig during construction.
type RigBuilderOption func(*rig)

// WithTopology sets the skeleton topology the rig is sized and wired from.
//
// Parameters:
//   - topo: the topology to build entities for
//
// Returns:
//   - RigBuilderOption: functional option to set the topology
func WithTopology(topo topology.Topology) RigBuilderOption {
	return func(r *rig) {
		if topo != nil {
			r.topo = topo
		}
	}
}
