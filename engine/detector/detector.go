// Package detector defines the producer side of the landmark pipeline: a
// Source delivers raw detections on its own schedule, one callback per
// analyzed frame. The engine never polls a Source; it reacts to whatever
// arrives, whenever it arrives.
package detector

import (
	"context"

	"github.com/Carmen-Shannon/twin-go/engine/pose"
)

// Source is an asynchronous producer of pose detections. Implementations own
// their delivery goroutine(s); the handler is invoked from that goroutine at
// whatever rate the underlying detector runs. Handlers must be fast and must
// not block, since a slow handler stalls detection delivery.
type Source interface {
	// Start begins detection delivery. The handler receives every detector
	// result, including "no detection" frames (empty landmark sets).
	// Delivery ends when the context is cancelled or Stop is called,
	// whichever comes first.
	// Returns an error if the source is already running or the handler is
	// nil.
	//
	// Parameters:
	//   - ctx: bounds the delivery goroutine's lifetime
	//   - handler: callback invoked once per detector result
	//
	// Returns:
	//   - error: error if delivery could not be started
	Start(ctx context.Context, handler func(det pose.Detection)) error

	// Stop halts delivery and releases the source's goroutine. Safe to call
	// multiple times; subsequent calls are no-ops. No handler invocations
	// occur after Stop returns.
	Stop()
}
