package scene

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/twin-go/common"
	"github.com/Carmen-Shannon/twin-go/engine/camera"
	"github.com/Carmen-Shannon/twin-go/engine/pose"
	"github.com/Carmen-Shannon/twin-go/engine/renderer"
	"github.com/Carmen-Shannon/twin-go/engine/rig"
	"github.com/Carmen-Shannon/twin-go/engine/topology"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene owns the skeleton data path from landmark detections to draw calls:
// detections are ingested on the producer side, the latest snapshot drives the
// rig, and the rig's visible joints and bones are packed into GPU instance
// buffers each frame. A Camera and Renderer complete the view.
// Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// Rig returns the scene's skeleton rig.
	Rig() rig.Rig

	// Ingest converts a raw landmark detection into a snapshot and publishes it
	// as the newest pose. Safe to call from any goroutine at any rate; the
	// render loop always picks up whatever snapshot is newest when its frame
	// starts.
	//
	// Parameters:
	//   - det: the raw detection to publish
	Ingest(det pose.Detection)

	// Snapshot returns the most recently published pose snapshot.
	//
	// Returns:
	//   - *pose.Snapshot: the newest snapshot, never nil
	Snapshot() *pose.Snapshot

	// PrepareFrame applies the newest pose snapshot to the rig, rebuilds the
	// joint and bone instance buffers from the rig's visible entities, and
	// uploads the instances and camera uniform to the GPU. Hidden entities are
	// omitted from the buffers entirely. Must be called before DrawCalls within
	// a frame.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	PrepareFrame(deltaTime float32)

	// DrawCalls records draw calls for the instances uploaded by the last
	// PrepareFrame. Must be called within a BeginFrame/EndFrame block on the
	// renderer.
	DrawCalls()
}

type scene struct {
	mu       sync.Mutex
	name     string
	active   bool
	cam      camera.Camera
	r        renderer.Renderer
	topo     topology.Topology
	ingestor pose.Ingestor
	buffer   pose.Buffer
	skeleton rig.Rig

	jointInstances []renderer.GPUInstance
	boneInstances  []renderer.GPUInstance

	prepPool    worker.DynamicWorkerPool
	prepWorkers int

	standardJointRadius float32
	fineJointRadius     float32
	standardBoneRadius  float32
	fineBoneRadius      float32
	standardJointColor  [4]float32
	fineJointColor      [4]float32
	standardBoneColor   [4]float32
	fineBoneColor       [4]float32
}

var _ Scene = &scene{}

// NewScene creates a Scene bound to the given camera and renderer, and
// initializes the renderer's joint and bone meshes sized to the topology.
// Panics if cam or r is nil, or if GPU mesh initialization fails.
//
// Parameters:
//   - name: the scene's identifier
//   - cam: the camera to render with
//   - r: the renderer to draw through
//   - options: optional builder options
//
// Returns:
//   - Scene: the new scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene requires a camera")
	}
	if r == nil {
		panic("scene requires a renderer")
	}

	s := &scene{
		name:               name,
		active:             true,
		cam:                cam,
		r:                  r,
		topo:               topology.Default(),
		standardJointColor: [4]float32{0.95, 0.55, 0.15, 1.0},
		fineJointColor:     [4]float32{0.95, 0.8, 0.35, 1.0},
		standardBoneColor:  [4]float32{0.35, 0.65, 0.9, 1.0},
		fineBoneColor:      [4]float32{0.55, 0.8, 0.95, 1.0},
	}

	for _, option := range options {
		option(s)
	}

	s.prepWorkers = common.Coalesce(s.prepWorkers, max(runtime.NumCPU()-1, 1))
	s.standardJointRadius = common.Coalesce(s.standardJointRadius, 0.035)
	s.fineJointRadius = common.Coalesce(s.fineJointRadius, 0.02)
	s.standardBoneRadius = common.Coalesce(s.standardBoneRadius, 0.018)
	s.fineBoneRadius = common.Coalesce(s.fineBoneRadius, 0.01)

	if s.ingestor == nil {
		s.ingestor = pose.NewIngestor(pose.WithTopology(s.topo))
	}
	if s.buffer == nil {
		s.buffer = pose.NewBuffer()
	}
	if s.skeleton == nil {
		s.skeleton = rig.NewRig(rig.WithTopology(s.topo))
	}

	// Initialize the prep pool after options so WithPrepWorkers can override the default.
	// Queue size of 16 is generous for two tasks per frame.
	s.prepPool = worker.NewDynamicWorkerPool(s.prepWorkers, 16, 1*time.Second)

	jointCap := s.topo.JointCount()
	boneCap := len(s.topo.Connections())
	s.jointInstances = make([]renderer.GPUInstance, 0, jointCap)
	s.boneInstances = make([]renderer.GPUInstance, 0, boneCap)

	if err := r.InitSkeletonMeshes(jointCap, boneCap); err != nil {
		panic("scene failed to initialize skeleton meshes: " + err.Error())
	}

	return s
}

func (s *scene) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	if cam == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r
}

func (s *scene) Rig() rig.Rig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skeleton
}

func (s *scene) Ingest(det pose.Detection) {
	// The ingestor is pure and the buffer is lock-free, so publishing never
	// contends with the render loop.
	s.buffer.Publish(s.ingestor.Ingest(det))
}

func (s *scene) Snapshot() *pose.Snapshot {
	return s.buffer.Latest()
}

func (s *scene) PrepareFrame(deltaTime float32) {
	_ = deltaTime

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.buffer.Latest()
	if snap.Seq() != s.skeleton.AppliedSeq() {
		s.skeleton.Apply(snap)
		s.rebuildInstances()
	}

	var uniform camera.GPUCameraUniform
	uniform.ViewProj = s.cam.ViewProjectionMatrix()
	px, py, pz := s.cam.Position()
	uniform.CameraPosition = [3]float32{px, py, pz}
	s.r.UpdateCamera(&uniform)

	s.r.UploadJointInstances(s.jointInstances)
	s.r.UploadBoneInstances(s.boneInstances)
}

// rebuildInstances repacks the joint and bone instance slices from the rig.
// Joints and bones are independent so the two packs run in parallel on the
// prep pool. A WaitGroup provides the per-frame barrier since pool.Wait()
// blocks until workers idle-exit, which is unsuitable for frame-rate workloads.
// Caller must hold s.mu.
func (s *scene) rebuildInstances() {
	var wg sync.WaitGroup

	wg.Add(1)
	s.prepPool.SubmitTask(worker.Task{
		ID: 0,
		Do: func() (any, error) {
			defer wg.Done()
			s.jointInstances = s.jointInstances[:0]
			for _, j := range s.skeleton.Joints() {
				if !j.Shown {
					continue
				}
				radius := s.standardJointRadius
				color := s.standardJointColor
				if j.Class == topology.ClassFine {
					radius = s.fineJointRadius
					color = s.fineJointColor
				}
				var inst renderer.GPUInstance
				common.BuildTRSMatrix(inst.Model[:], j.Position, mgl32.QuatIdent(), mgl32.Vec3{radius, radius, radius})
				inst.Color = color
				s.jointInstances = append(s.jointInstances, inst)
			}
			return nil, nil
		},
	})

	wg.Add(1)
	s.prepPool.SubmitTask(worker.Task{
		ID: 1,
		Do: func() (any, error) {
			defer wg.Done()
			s.boneInstances = s.boneInstances[:0]
			for _, b := range s.skeleton.Bones() {
				if !b.Shown {
					continue
				}
				radius := s.standardBoneRadius
				color := s.standardBoneColor
				if b.Class == topology.ClassFine {
					radius = s.fineBoneRadius
					color = s.fineBoneColor
				}
				var inst renderer.GPUInstance
				common.BuildTRSMatrix(inst.Model[:], b.Placement, b.Rotation, mgl32.Vec3{radius, b.Length, radius})
				inst.Color = color
				s.boneInstances = append(s.boneInstances, inst)
			}
			return nil, nil
		},
	})

	wg.Wait()
}

func (s *scene) DrawCalls() {
	s.mu.Lock()
	jointCount := uint32(len(s.jointInstances))
	boneCount := uint32(len(s.boneInstances))
	s.mu.Unlock()

	s.r.DrawSkeleton(jointCount, boneCount)
}
