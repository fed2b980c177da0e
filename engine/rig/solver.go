package rig

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ReferenceAxis is the canonical axis a bone mesh is modeled along. The
// solver produces the shortest-arc rotation carrying this axis onto the
// joint-to-joint direction.
var ReferenceAxis = mgl32.Vec3{0, 1, 0}

// antiparallelEpsilon bounds how close the dot product may get to -1 before
// the shortest-arc construction loses precision and the fixed 180° fallback
// is used instead.
const antiparallelEpsilon = 1e-6

// BoneTransform is the solved placement of one bone segment: where its
// midpoint sits, how long it is along ReferenceAxis, and the rotation that
// aligns ReferenceAxis with the segment direction.
type BoneTransform struct {
	Placement mgl32.Vec3
	Rotation  mgl32.Quat
	Length    float32
}

// Solve derives a bone transform from its two endpoint positions. Pure:
// identical inputs always yield bit-identical output.
//
// Coincident endpoints yield a zero-length transform with identity rotation
// rather than dividing by zero. When the segment points exactly opposite
// ReferenceAxis the shortest-arc rotation is not unique; the solver always
// picks the 180° rotation about +X so repeated frames stay stable.
//
// Parameters:
//   - a: first endpoint in render space
//   - b: second endpoint in render space
//
// Returns:
//   - BoneTransform: midpoint placement, aligning rotation, and segment length
func Solve(a, b mgl32.Vec3) BoneTransform {
	dir := b.Sub(a)
	length := dir.Len()
	if length == 0 {
		return BoneTransform{
			Placement: a,
			Rotation:  mgl32.QuatIdent(),
			Length:    0,
		}
	}

	norm := dir.Mul(1 / length)
	placement := a.Add(dir.Mul(0.5))

	dot := ReferenceAxis.Dot(norm)
	if dot <= -1+antiparallelEpsilon {
		return BoneTransform{
			Placement: placement,
			Rotation:  mgl32.Quat{W: 0, V: mgl32.Vec3{1, 0, 0}},
			Length:    length,
		}
	}

	// Half-angle trick: q = normalize(1 + dot, ref × dir) is the shortest-arc
	// rotation from ReferenceAxis to norm.
	cross := ReferenceAxis.Cross(norm)
	q := mgl32.Quat{W: 1 + dot, V: cross}
	return BoneTransform{
		Placement: placement,
		Rotation:  q.Normalize(),
		Length:    length,
	}
}
