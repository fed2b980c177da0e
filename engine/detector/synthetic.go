package detector

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/Carmen-Shannon/twin-go/engine/pose"
	"github.com/Carmen-Shannon/twin-go/engine/topology"
	"github.com/go-gl/mathgl/mgl32"
)

// syntheticSource emulates a pose-estimation engine with a procedurally
// animated figure: a standing body with swaying torso and waving arms,
// emitted at a fixed interval with optional periodic dropouts. Useful for
// demos and for exercising the full pipeline without a camera.
type syntheticSource struct {
	interval  time.Duration
	dropEvery int // every Nth emission is "no detection"; 0 disables
	hideHands bool

	running bool
	mu      sync.Mutex
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once
}

var _ Source = &syntheticSource{}

// NewSyntheticSource creates a synthetic detector with the provided options.
// Emission interval defaults to 33ms (roughly 30 detections per second) with
// no dropouts.
//
// Parameters:
//   - options: functional options for configuring the source
//
// Returns:
//   - Source: the newly created synthetic source
func NewSyntheticSource(options ...SyntheticBuilderOption) Source {
	s := &syntheticSource{
		interval:    33 * time.Millisecond,
		quitChannel: make(chan struct{}),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *syntheticSource) Start(ctx context.Context, handler func(det pose.Detection)) error {
	if handler == nil {
		return errors.New("synthetic source requires a non-nil handler")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return errors.New("synthetic source already running")
	}
	s.running = true
	s.quitChannel = make(chan struct{})
	s.quitOnce = sync.Once{}

	s.wg.Add(1)
	go s.emit(ctx, handler, s.quitChannel)
	return nil
}

func (s *syntheticSource) Stop() {
	s.quitOnce.Do(func() {
		close(s.quitChannel)
	})
	s.wg.Wait()

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// emit runs the delivery loop in its own goroutine. Exits when the quit
// channel is closed or the context is cancelled.
func (s *syntheticSource) emit(ctx context.Context, handler func(det pose.Detection), quit <-chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	start := time.Now()
	count := 0

	for {
		select {
		case <-quit:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			count++
			if s.dropEvery > 0 && count%s.dropEvery == 0 {
				handler(pose.Detection{})
				continue
			}
			t := float32(time.Since(start).Seconds())
			handler(s.sample(t))
		}
	}
}

// sample builds one detector-space frame of the animated figure at time t.
func (s *syntheticSource) sample(t float32) pose.Detection {
	sway := 0.05 * float32(math.Sin(float64(t)*0.8))
	wave := 0.25 * float32(math.Abs(math.Sin(float64(t)*2.2)))

	figure := basePose
	for i := range figure {
		figure[i][0] += sway
	}
	// Raise the right arm in a wave: elbow, wrist, and hand digits follow.
	for _, i := range []int{14, 16, 18, 20, 22} {
		figure[i][1] += wave
		figure[i][0] -= wave * 0.4
	}

	det := pose.Detection{Landmarks: make([]pose.RawLandmark, 0, topology.LandmarkCount)}
	for i, p := range figure {
		if s.hideHands && isHandLandmark(i) {
			continue
		}
		// The figure is modeled in render space (Y up); mirroring it once
		// yields detector-space coordinates since the transform is its own
		// inverse.
		det.Landmarks = append(det.Landmarks, pose.RawLandmark{
			Index:    i,
			Position: pose.Mirror(p),
		})
	}
	return det
}

// isHandLandmark reports whether index is a wrist-attached digit landmark.
func isHandLandmark(index int) bool {
	return index >= 17 && index <= 22
}

// basePose is a standing figure roughly 1.7 units tall, modeled in render
// space with Y up and the feet near the origin. Indices follow the standard
// 33-landmark layout.
var basePose = [topology.LandmarkCount]mgl32.Vec3{
	{0, 1.62, 0.06},      // nose
	{0.02, 1.65, 0.05},   // left eye inner
	{0.03, 1.65, 0.05},   // left eye
	{0.045, 1.65, 0.05},  // left eye outer
	{-0.02, 1.65, 0.05},  // right eye inner
	{-0.03, 1.65, 0.05},  // right eye
	{-0.045, 1.65, 0.05}, // right eye outer
	{0.08, 1.63, 0},      // left ear
	{-0.08, 1.63, 0},     // right ear
	{0.02, 1.58, 0.05},   // mouth left
	{-0.02, 1.58, 0.05},  // mouth right
	{0.18, 1.45, 0},      // left shoulder
	{-0.18, 1.45, 0},     // right shoulder
	{0.35, 1.25, 0},      // left elbow
	{-0.35, 1.25, 0},     // right elbow
	{0.45, 1.05, 0},      // left wrist
	{-0.45, 1.05, 0},     // right wrist
	{0.5, 0.98, 0},       // left pinky
	{-0.5, 0.98, 0},      // right pinky
	{0.52, 1.0, 0.02},    // left index
	{-0.52, 1.0, 0.02},   // right index
	{0.48, 1.02, 0.04},   // left thumb
	{-0.48, 1.02, 0.04},  // right thumb
	{0.12, 0.95, 0},      // left hip
	{-0.12, 0.95, 0},     // right hip
	{0.13, 0.52, 0},      // left knee
	{-0.13, 0.52, 0},     // right knee
	{0.14, 0.1, 0},       // left ankle
	{-0.14, 0.1, 0},      // right ankle
	{0.14, 0.03, -0.04},  // left heel
	{-0.14, 0.03, -0.04}, // right heel
	{0.15, 0.02, 0.12},   // left foot index
	{-0.15, 0.02, 0.12},  // right foot index
}
