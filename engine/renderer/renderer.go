package renderer

import (
	_ "embed"
	"sync"

	"github.com/Carmen-Shannon/twin-go/common"
	"github.com/Carmen-Shannon/twin-go/engine/camera"
	"github.com/Carmen-Shannon/twin-go/engine/window"
)

// skeletonShaderSource is the WGSL source for the shared instanced pipeline.
//
//go:embed assets/skeleton.wgsl
var skeletonShaderSource string

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	jointMesh *gpuMesh
	boneMesh  *gpuMesh

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
}

// Renderer defines the interface for the rendering system.
//
// This is a high-level API tailored to drawing a skeleton: two instanced
// meshes (a unit sphere for joints, a unit cylinder for bones) behind one
// fixed pipeline. Per-frame state is a camera uniform plus two instance
// arrays; entities not present in the arrays are simply not drawn.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// InitSkeletonMeshes generates the shared joint and bone geometry,
	// uploads it to the GPU, and sizes the per-frame instance buffers.
	// Must be called once before the first frame.
	//
	// Parameters:
	//   - jointCapacity: maximum joint instances per frame
	//   - boneCapacity: maximum bone instances per frame
	//
	// Returns:
	//   - error: an error if GPU resource creation fails
	InitSkeletonMeshes(jointCapacity, boneCapacity int) error

	// UpdateCamera uploads the camera uniform used by both meshes this frame.
	//
	// Parameters:
	//   - uniform: the camera uniform to upload
	UpdateCamera(uniform *camera.GPUCameraUniform)

	// UploadJointInstances replaces the joint instance buffer contents.
	// Instances beyond the configured capacity are dropped.
	//
	// Parameters:
	//   - instances: per-joint model matrices and colors, visible joints only
	UploadJointInstances(instances []GPUInstance)

	// UploadBoneInstances replaces the bone instance buffer contents.
	// Instances beyond the configured capacity are dropped.
	//
	// Parameters:
	//   - instances: per-bone model matrices and colors, visible bones only
	UploadBoneInstances(instances []GPUInstance)

	// BeginFrame acquires the swapchain texture and begins the main render pass.
	// Must be paired with EndFrame after DrawSkeleton within a single frame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// DrawSkeleton encodes the instanced draws for both meshes within the
	// current render pass. Zero counts skip the corresponding draw.
	//
	// Parameters:
	//   - jointCount: number of joint instances to draw
	//   - boneCount: number of bone instances to draw
	DrawSkeleton(jointCount, boneCount uint32)

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	// Does not present the surface — call Present() after EndFrame to display the frame.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	// Must be called once per frame after EndFrame.
	Present()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer bound to the given window's surface.
// Options are applied before the GPU backend is created so configuration
// flags (MSAA, fallback adapter) take effect during device setup. The
// skeleton pipeline is created immediately; call InitSkeletonMeshes before
// rendering.
//
// Parameters:
//   - backendType: the GPU backend implementation to use
//   - win: the window providing the render surface
//   - options: functional options for renderer configuration
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x // default
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(win.Width(), win.Height())

	var uniform camera.GPUCameraUniform
	if err := r.backend.InitSkeletonPipeline(skeletonShaderSource, uint64(uniform.Size())); err != nil {
		panic(err)
	}

	return r
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) InitSkeletonMeshes(jointCapacity, boneCapacity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sphere := UnitSphere(16, 24)
	jointMesh, err := r.backend.InitMesh(
		"Joint Sphere",
		common.SliceToBytes(sphere.Vertices),
		common.SliceToBytes(sphere.Indices),
		len(sphere.Indices),
		jointCapacity,
	)
	if err != nil {
		return err
	}

	cylinder := UnitCylinder(18)
	boneMesh, err := r.backend.InitMesh(
		"Bone Cylinder",
		common.SliceToBytes(cylinder.Vertices),
		common.SliceToBytes(cylinder.Indices),
		len(cylinder.Indices),
		boneCapacity,
	)
	if err != nil {
		return err
	}

	r.jointMesh = jointMesh
	r.boneMesh = boneMesh
	return nil
}

func (r *renderer) UpdateCamera(uniform *camera.GPUCameraUniform) {
	r.backend.WriteCameraUniform(uniform.Marshal())
}

func (r *renderer) UploadJointInstances(instances []GPUInstance) {
	r.mu.Lock()
	mesh := r.jointMesh
	r.mu.Unlock()
	r.backend.WriteInstances(mesh, common.SliceToBytes(instances))
}

func (r *renderer) UploadBoneInstances(instances []GPUInstance) {
	r.mu.Lock()
	mesh := r.boneMesh
	r.mu.Unlock()
	r.backend.WriteInstances(mesh, common.SliceToBytes(instances))
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) DrawSkeleton(jointCount, boneCount uint32) {
	r.mu.Lock()
	jointMesh, boneMesh := r.jointMesh, r.boneMesh
	r.mu.Unlock()

	r.backend.DrawMesh(jointMesh, jointCount)
	r.backend.DrawMesh(boneMesh, boneCount)
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}
