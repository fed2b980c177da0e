package pose

import (
	"github.com/Carmen-Shannon/twin-go/engine/topology"
)

// Ingestor converts raw detector output into publishable Snapshots. It
// validates landmark indices against the skeleton topology, rejects
// non-finite coordinates, and applies the detector-to-render space mirror
// per joint. Ingest is a pure function of its input: the same Detection
// always yields an identical Snapshot.
type Ingestor interface {
	// Ingest builds a Snapshot from one detector result. An empty detection
	// yields the "no detection" snapshot. Landmarks with out-of-range
	// indices or non-finite coordinates are dropped (the slot stays
	// unknown); they never abort the frame. When the same index appears
	// more than once, the last record wins.
	//
	// Parameters:
	//   - det: one raw detector result
	//
	// Returns:
	//   - Snapshot: the converted frame, sequence unset until publish
	Ingest(det Detection) Snapshot
}

type ingestor struct {
	topo topology.Topology
}

var _ Ingestor = &ingestor{}

// NewIngestor creates a new Ingestor with the provided options.
// The topology defaults to the full-body skeleton when not overridden.
//
// Parameters:
//   - options: functional options for configuring the ingestor
//
// Returns:
//   - Ingestor: the newly created ingestor
func NewIngestor(options ...IngestorBuilderOption) Ingestor {
	in := &ingestor{
		topo: topology.Default(),
	}
	for _, option := range options {
		option(in)
	}
	return in
}

func (in *ingestor) Ingest(det Detection) Snapshot {
	if len(det.Landmarks) == 0 {
		return Snapshot{}
	}

	snap := Snapshot{detected: true}
	bound := in.topo.JointCount()
	for _, lm := range det.Landmarks {
		if lm.Index < 0 || lm.Index >= bound {
			continue
		}
		if !finite(lm.Position) {
			// Producer contract violation; drop the joint rather than let
			// NaN reach the solver through a shared endpoint.
			snap.valid[lm.Index] = false
			continue
		}
		snap.positions[lm.Index] = Mirror(lm.Position)
		snap.valid[lm.Index] = true
	}
	return snap
}
