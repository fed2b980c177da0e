package pose

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mirror converts a detector-space point to render space. Detector space has
// Y increasing downward and is seen from the capture device's point of view;
// negating every axis flips Y up and mirrors X so the figure moves like a
// mirror image of the user. Pure and total: finite input maps to finite
// output, non-finite values pass through unchanged.
//
// Parameters:
//   - p: point in detector space
//
// Returns:
//   - mgl32.Vec3: the same point in render space
func Mirror(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{-p[0], -p[1], -p[2]}
}

// finite reports whether all three coordinates are real numbers.
func finite(p mgl32.Vec3) bool {
	for _, c := range p {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
