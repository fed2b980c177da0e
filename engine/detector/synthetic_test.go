package detector

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Carmen-Shannon/twin-go/engine/pose"
	"github.com/Carmen-Shannon/twin-go/engine/topology"
)

// collect starts the source, gathers n detections, then stops it.
func collect(t *testing.T, src Source, n int) []pose.Detection {
	t.Helper()

	var mu sync.Mutex
	var got []pose.Detection
	done := make(chan struct{})

	err := src.Start(context.Background(), func(det pose.Detection) {
		mu.Lock()
		defer mu.Unlock()
		if len(got) >= n {
			return
		}
		got = append(got, det)
		if len(got) == n {
			close(done)
		}
	})
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %d detections", n)
	}
	src.Stop()

	mu.Lock()
	defer mu.Unlock()
	return got
}

// TestSyntheticEmitsFullBody verifies each detection carries all 33 landmarks
// with unique, in-range indices.
func TestSyntheticEmitsFullBody(t *testing.T) {
	src := NewSyntheticSource(WithInterval(time.Millisecond))
	dets := collect(t, src, 3)

	for _, det := range dets {
		if len(det.Landmarks) != topology.LandmarkCount {
			t.Fatalf("expected %d landmarks, got %d", topology.LandmarkCount, len(det.Landmarks))
		}
		seen := make(map[int]bool)
		for _, lm := range det.Landmarks {
			if lm.Index < 0 || lm.Index >= topology.LandmarkCount {
				t.Fatalf("landmark index out of range: %d", lm.Index)
			}
			if seen[lm.Index] {
				t.Fatalf("duplicate landmark index %d", lm.Index)
			}
			seen[lm.Index] = true
		}
	}
}

// TestSyntheticDropEvery verifies periodic dropouts arrive as empty detections.
func TestSyntheticDropEvery(t *testing.T) {
	src := NewSyntheticSource(
		WithInterval(time.Millisecond),
		WithDropEvery(2),
	)
	dets := collect(t, src, 6)

	var empty, full int
	for _, det := range dets {
		if len(det.Landmarks) == 0 {
			empty++
		} else {
			full++
		}
	}
	if empty == 0 {
		t.Fatalf("expected some empty detections with dropEvery=2")
	}
	if full == 0 {
		t.Fatalf("expected some full detections with dropEvery=2")
	}
}

// TestSyntheticHiddenHands verifies hand digit landmarks are never reported
// when hidden.
func TestSyntheticHiddenHands(t *testing.T) {
	src := NewSyntheticSource(
		WithInterval(time.Millisecond),
		WithHiddenHands(true),
	)
	dets := collect(t, src, 3)

	for _, det := range dets {
		if len(det.Landmarks) != topology.LandmarkCount-6 {
			t.Fatalf("expected %d landmarks without hands, got %d", topology.LandmarkCount-6, len(det.Landmarks))
		}
		for _, lm := range det.Landmarks {
			if lm.Index >= 17 && lm.Index <= 22 {
				t.Fatalf("hand landmark %d reported while hidden", lm.Index)
			}
		}
	}
}

// TestSyntheticHiddenHandsOff verifies the full landmark set is reported
// when hand hiding is explicitly disabled.
func TestSyntheticHiddenHandsOff(t *testing.T) {
	src := NewSyntheticSource(
		WithInterval(time.Millisecond),
		WithHiddenHands(false),
	)
	dets := collect(t, src, 1)

	if len(dets[0].Landmarks) != topology.LandmarkCount {
		t.Fatalf("expected %d landmarks, got %d", topology.LandmarkCount, len(dets[0].Landmarks))
	}
}

// TestSyntheticRejectsNilHandler verifies Start refuses a nil handler.
func TestSyntheticRejectsNilHandler(t *testing.T) {
	src := NewSyntheticSource()
	if err := src.Start(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil handler")
	}
}

// TestSyntheticRejectsDoubleStart verifies a running source cannot be started
// again.
func TestSyntheticRejectsDoubleStart(t *testing.T) {
	src := NewSyntheticSource(WithInterval(time.Millisecond))
	if err := src.Start(context.Background(), func(pose.Detection) {}); err != nil {
		t.Fatalf("first Start returned error: %v", err)
	}
	defer src.Stop()

	if err := src.Start(context.Background(), func(pose.Detection) {}); err == nil {
		t.Fatalf("expected error on second Start")
	}
}

// TestSyntheticRestarts verifies the source can be stopped and started again.
func TestSyntheticRestarts(t *testing.T) {
	src := NewSyntheticSource(WithInterval(time.Millisecond))
	_ = collect(t, src, 2)
	dets := collect(t, src, 2)
	if len(dets) != 2 {
		t.Fatalf("expected detections after restart, got %d", len(dets))
	}
}

// TestSyntheticStopIsIdempotent verifies repeated Stop calls do not panic or
// hang.
func TestSyntheticStopIsIdempotent(t *testing.T) {
	src := NewSyntheticSource(WithInterval(time.Millisecond))
	if err := src.Start(context.Background(), func(pose.Detection) {}); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	src.Stop()
	src.Stop()
}

// TestSyntheticStopsOnContextCancel verifies cancelling the context ends
// delivery without an explicit Stop.
func TestSyntheticStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := NewSyntheticSource(WithInterval(time.Millisecond))

	received := make(chan struct{}, 1)
	if err := src.Start(ctx, func(pose.Detection) {
		select {
		case received <- struct{}{}:
		default:
		}
	}); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	select {
	case <-received:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for first detection")
	}

	cancel()
	// Stop must still return promptly after the goroutine exited via ctx.
	src.Stop()
}
