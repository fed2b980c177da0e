package rig

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approxVec3(a, b mgl32.Vec3, eps float32) bool {
	return mgl32.Abs(a[0]-b[0]) < eps && mgl32.Abs(a[1]-b[1]) < eps && mgl32.Abs(a[2]-b[2]) < eps
}

// TestSolvePlacesMidpoint verifies the bone placement is the segment midpoint.
func TestSolvePlacesMidpoint(t *testing.T) {
	got := Solve(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 4, -6})
	want := mgl32.Vec3{1, 2, -3}
	if !approxVec3(got.Placement, want, 1e-6) {
		t.Fatalf("expected placement %v, got %v", want, got.Placement)
	}
}

// TestSolveComputesLength verifies the segment length.
func TestSolveComputesLength(t *testing.T) {
	got := Solve(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 0})
	want := float32(math.Sqrt2)
	if mgl32.Abs(got.Length-want) > 1e-6 {
		t.Fatalf("expected length %v, got %v", want, got.Length)
	}
}

// TestSolveRotationCarriesReferenceAxis verifies the rotation maps the
// reference axis onto the normalized segment direction.
func TestSolveRotationCarriesReferenceAxis(t *testing.T) {
	cases := []mgl32.Vec3{
		{1, 0, 0},
		{0, 0, 1},
		{1, 1, 0},
		{-0.3, 0.2, 0.9},
		{0, 1, 0}, // parallel to the reference axis
	}
	for _, b := range cases {
		tr := Solve(mgl32.Vec3{}, b)
		dir := b.Normalize()
		rotated := tr.Rotation.Rotate(ReferenceAxis)
		if !approxVec3(rotated, dir, 1e-5) {
			t.Fatalf("rotation for %v maps reference axis to %v, want %v", b, rotated, dir)
		}
	}
}

// TestSolveRotationIsUnit verifies the returned quaternion is normalized.
func TestSolveRotationIsUnit(t *testing.T) {
	tr := Solve(mgl32.Vec3{0.1, -0.2, 0.3}, mgl32.Vec3{0.7, 0.5, -0.4})
	n := tr.Rotation.Len()
	if mgl32.Abs(n-1) > 1e-5 {
		t.Fatalf("expected unit quaternion, got length %v", n)
	}
}

// TestSolveCoincidentEndpoints verifies the degenerate segment yields length
// zero, identity rotation, and placement at the shared point.
func TestSolveCoincidentEndpoints(t *testing.T) {
	p := mgl32.Vec3{0.4, 1.2, -0.7}
	tr := Solve(p, p)
	if tr.Length != 0 {
		t.Fatalf("expected length 0, got %v", tr.Length)
	}
	if tr.Rotation != mgl32.QuatIdent() {
		t.Fatalf("expected identity rotation, got %v", tr.Rotation)
	}
	if tr.Placement != p {
		t.Fatalf("expected placement %v, got %v", p, tr.Placement)
	}
}

// TestSolveAntiparallelIsDeterministic verifies the downward segment always
// resolves to the same 180° rotation, and that rotation still carries the
// reference axis onto the segment direction.
func TestSolveAntiparallelIsDeterministic(t *testing.T) {
	first := Solve(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -1, 0})
	for i := 0; i < 10; i++ {
		tr := Solve(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -1, 0})
		if tr.Rotation != first.Rotation {
			t.Fatalf("antiparallel rotation changed between calls: %v vs %v", tr.Rotation, first.Rotation)
		}
	}

	want := mgl32.Quat{W: 0, V: mgl32.Vec3{1, 0, 0}}
	if first.Rotation != want {
		t.Fatalf("expected 180° rotation about +X, got %v", first.Rotation)
	}
	rotated := first.Rotation.Rotate(ReferenceAxis)
	if !approxVec3(rotated, mgl32.Vec3{0, -1, 0}, 1e-5) {
		t.Fatalf("antiparallel rotation maps reference axis to %v", rotated)
	}
}

// TestSolveIsPure verifies identical inputs produce bit-identical transforms.
func TestSolveIsPure(t *testing.T) {
	a := mgl32.Vec3{0.123, -0.456, 0.789}
	b := mgl32.Vec3{-0.987, 0.654, -0.321}
	first := Solve(a, b)
	second := Solve(a, b)
	if first != second {
		t.Fatalf("solver is not deterministic: %+v vs %+v", first, second)
	}
}

// TestSolveDirectionMatters verifies swapping endpoints keeps the midpoint and
// length but flips the solved direction.
func TestSolveDirectionMatters(t *testing.T) {
	a := mgl32.Vec3{0, 0, 0}
	b := mgl32.Vec3{1, 0, 1}
	fwd := Solve(a, b)
	rev := Solve(b, a)

	if !approxVec3(fwd.Placement, rev.Placement, 1e-6) {
		t.Fatalf("midpoints differ: %v vs %v", fwd.Placement, rev.Placement)
	}
	if mgl32.Abs(fwd.Length-rev.Length) > 1e-6 {
		t.Fatalf("lengths differ: %v vs %v", fwd.Length, rev.Length)
	}

	fwdDir := fwd.Rotation.Rotate(ReferenceAxis)
	revDir := rev.Rotation.Rotate(ReferenceAxis)
	if !approxVec3(fwdDir, revDir.Mul(-1), 1e-5) {
		t.Fatalf("expected opposite directions, got %v and %v", fwdDir, revDir)
	}
}
