package renderer

import (
	"math"
	"testing"
)

func checkIndices(t *testing.T, m MeshData) {
	t.Helper()
	if len(m.Indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range for %d vertices", idx, len(m.Vertices))
		}
	}
}

func checkUnitNormals(t *testing.T, m MeshData) {
	t.Helper()
	for i, v := range m.Vertices {
		n := math.Sqrt(float64(v.Normal[0]*v.Normal[0] + v.Normal[1]*v.Normal[1] + v.Normal[2]*v.Normal[2]))
		if math.Abs(n-1) > 1e-4 {
			t.Fatalf("vertex %d normal has length %v", i, n)
		}
	}
}

// TestUnitSphereGeometry verifies the sphere mesh has valid indices, unit
// normals, and lies on the unit radius.
func TestUnitSphereGeometry(t *testing.T) {
	m := UnitSphere(8, 12)
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		t.Fatalf("empty sphere mesh")
	}
	checkIndices(t, m)
	checkUnitNormals(t, m)

	for i, v := range m.Vertices {
		r := math.Sqrt(float64(v.Position[0]*v.Position[0] + v.Position[1]*v.Position[1] + v.Position[2]*v.Position[2]))
		if math.Abs(r-1) > 1e-4 {
			t.Fatalf("vertex %d lies at radius %v", i, r)
		}
	}
}

// TestUnitCylinderGeometry verifies the cylinder mesh spans y ∈ [-0.5, 0.5]
// at unit radius with valid indices and unit normals.
func TestUnitCylinderGeometry(t *testing.T) {
	m := UnitCylinder(12)
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		t.Fatalf("empty cylinder mesh")
	}
	checkIndices(t, m)
	checkUnitNormals(t, m)

	minY, maxY := float32(1), float32(-1)
	for i, v := range m.Vertices {
		if v.Position[1] < minY {
			minY = v.Position[1]
		}
		if v.Position[1] > maxY {
			maxY = v.Position[1]
		}
		r := math.Sqrt(float64(v.Position[0]*v.Position[0] + v.Position[2]*v.Position[2]))
		if r > 1+1e-4 {
			t.Fatalf("vertex %d lies outside unit radius: %v", i, r)
		}
	}
	if minY != -0.5 || maxY != 0.5 {
		t.Fatalf("cylinder spans y ∈ [%v, %v], want [-0.5, 0.5]", minY, maxY)
	}
}

// TestVertexBufferLayouts verifies the two vertex buffer slots match the
// GPUVertex and GPUInstance struct sizes.
func TestVertexBufferLayouts(t *testing.T) {
	layouts := vertexBufferLayouts()
	if len(layouts) != 2 {
		t.Fatalf("expected 2 vertex buffer layouts, got %d", len(layouts))
	}
	if layouts[0].ArrayStride != 24 {
		t.Fatalf("per-vertex stride should be 24, got %d", layouts[0].ArrayStride)
	}
	if layouts[1].ArrayStride != 80 {
		t.Fatalf("per-instance stride should be 80, got %d", layouts[1].ArrayStride)
	}
}
