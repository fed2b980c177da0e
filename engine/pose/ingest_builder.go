package pose

import (
	"github.com/Carmen-Shannon/twin-go/engine/topology"
)

// IngestorBuilderOption is a functional option for configuring an Ingestor during construction.
type IngestorBuilderOption func(*ingestor)

// WithTopology sets the skeleton topology used to validate landmark indices.
//
// Parameters:
//   - topo: the topology to validate against
//
// Returns:
//   - IngestorBuilderOption: functional option to set the topology
func WithTopology(topo topology.Topology) IngestorBuilderOption {
	return func(in *ingestor) {
		if topo != nil {
			in.topo = topo
		}
	}
}
