package renderer

import (
	"math"
)

// MeshData is CPU-side geometry ready for upload: interleaved vertices and a
// uint32 index list forming a triangle list.
type MeshData struct {
	Vertices []GPUVertex
	Indices  []uint32
}

// UnitSphere generates a UV sphere of radius 1 centered at the origin.
// Normals point outward. Joint entities scale this mesh uniformly by their
// radius class.
//
// Parameters:
//   - stacks: latitudinal subdivisions (minimum 3)
//   - slices: longitudinal subdivisions (minimum 3)
//
// Returns:
//   - MeshData: the generated sphere geometry
func UnitSphere(stacks, slices int) MeshData {
	if stacks < 3 {
		stacks = 3
	}
	if slices < 3 {
		slices = 3
	}

	var m MeshData
	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		y := float32(math.Cos(phi))
		r := float32(math.Sin(phi))
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			x := r * float32(math.Cos(theta))
			z := r * float32(math.Sin(theta))
			// A unit sphere's normal equals its position.
			m.Vertices = append(m.Vertices, GPUVertex{
				Position: [3]float32{x, y, z},
				Normal:   [3]float32{x, y, z},
			})
		}
	}

	ring := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*ring + uint32(j)
			b := a + ring
			m.Indices = append(m.Indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}
	return m
}

// UnitCylinder generates a capped cylinder of radius 1 spanning y in
// [-0.5, 0.5], so a bone instance scales it by (radius, length, radius) and
// places it at the segment midpoint. Side normals point radially; cap
// normals point along Y.
//
// Parameters:
//   - segments: radial subdivisions (minimum 3)
//
// Returns:
//   - MeshData: the generated cylinder geometry
func UnitCylinder(segments int) MeshData {
	if segments < 3 {
		segments = 3
	}

	var m MeshData

	// Side rings: duplicate vertices at each Y extent so side normals stay
	// radial and cap normals stay axial.
	for _, y := range []float32{-0.5, 0.5} {
		for j := 0; j <= segments; j++ {
			theta := 2 * math.Pi * float64(j) / float64(segments)
			x := float32(math.Cos(theta))
			z := float32(math.Sin(theta))
			m.Vertices = append(m.Vertices, GPUVertex{
				Position: [3]float32{x, y, z},
				Normal:   [3]float32{x, 0, z},
			})
		}
	}
	ring := uint32(segments + 1)
	for j := 0; j < segments; j++ {
		a := uint32(j)
		b := a + ring
		m.Indices = append(m.Indices,
			a, a+1, b,
			a+1, b+1, b,
		)
	}

	// Caps: a center vertex plus a rim ring per end.
	for _, end := range []struct {
		y  float32
		ny float32
	}{{-0.5, -1}, {0.5, 1}} {
		center := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, GPUVertex{
			Position: [3]float32{0, end.y, 0},
			Normal:   [3]float32{0, end.ny, 0},
		})
		rimStart := uint32(len(m.Vertices))
		for j := 0; j <= segments; j++ {
			theta := 2 * math.Pi * float64(j) / float64(segments)
			x := float32(math.Cos(theta))
			z := float32(math.Sin(theta))
			m.Vertices = append(m.Vertices, GPUVertex{
				Position: [3]float32{x, end.y, z},
				Normal:   [3]float32{0, end.ny, 0},
			})
		}
		for j := uint32(0); j < uint32(segments); j++ {
			if end.ny > 0 {
				m.Indices = append(m.Indices, center, rimStart+j, rimStart+j+1)
			} else {
				m.Indices = append(m.Indices, center, rimStart+j+1, rimStart+j)
			}
		}
	}

	return m
}
