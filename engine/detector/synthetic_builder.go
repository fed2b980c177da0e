package detector

import (
	"time"
)

// SyntheticBuilderOption is a functional option for configuring a synthetic source during construction.
type SyntheticBuilderOption func(*syntheticSource)

// WithInterval sets the time between emitted detections.
//
// Parameters:
//   - interval: delay between detector results (ignored if <= 0)
//
// Returns:
//   - SyntheticBuilderOption: functional option to set the emission interval
func WithInterval(interval time.Duration) SyntheticBuilderOption {
	return func(s *syntheticSource) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithDropEvery makes every nth emission a "no detection" frame, emulating
// the subject leaving the capture area.
//
// Parameters:
//   - n: dropout period (0 disables dropouts)
//
// Returns:
//   - SyntheticBuilderOption: functional option to set the dropout period
func WithDropEvery(n int) SyntheticBuilderOption {
	return func(s *syntheticSource) {
		if n >= 0 {
			s.dropEvery = n
		}
	}
}

// WithHiddenHands controls whether the hand-digit landmarks are omitted
// from every emission, emulating partial occlusion of the hands.
//
// Parameters:
//   - hide: true to omit hand-digit landmarks from emitted detections
//
// Returns:
//   - SyntheticBuilderOption: functional option to hide hand landmarks
func WithHiddenHands(hide bool) SyntheticBuilderOption {
	return func(s *syntheticSource) {
		s.hideHands = hide
	}
}
