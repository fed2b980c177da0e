package renderer

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUVertex is the per-vertex layout shared by every skeleton mesh: a
// position and a normal, both in mesh-local space. Matches the WGSL
// VertexInput struct exactly. Size: 24 bytes, no padding.
type GPUVertex struct {
	Position [3]float32 // offset  0: mesh-local position (vec3<f32>)
	Normal   [3]float32 // offset 12: mesh-local normal (vec3<f32>)
}

// GPUInstance is the per-instance layout for skeleton entities: a full model
// matrix plus an RGBA color. Matches the WGSL InstanceInput struct exactly.
// Size: 80 bytes, no padding. Hidden entities are simply omitted from the
// instance buffer, so the instance count is the visibility mask.
type GPUInstance struct {
	Model [16]float32 // offset  0: column-major model matrix (4x vec4<f32>)
	Color [4]float32  // offset 64: RGBA color (vec4<f32>)
}

// vertexBufferLayouts returns the two vertex buffer layouts the skeleton
// pipeline consumes: slot 0 steps per vertex, slot 1 per instance.
func vertexBufferLayouts() []wgpu.VertexBufferLayout {
	var vtx GPUVertex
	var inst GPUInstance
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: uint64(unsafe.Sizeof(vtx)),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			},
		},
		{
			ArrayStride: uint64(unsafe.Sizeof(inst)),
			StepMode:    wgpu.VertexStepModeInstance,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 2},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 3},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 4},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 5},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 64, ShaderLocation: 6},
			},
		},
	}
}
