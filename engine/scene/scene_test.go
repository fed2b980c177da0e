package scene

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/twin-go/engine/camera"
	"github.com/Carmen-Shannon/twin-go/engine/pose"
	"github.com/Carmen-Shannon/twin-go/engine/renderer"
	"github.com/Carmen-Shannon/twin-go/engine/topology"
	"github.com/go-gl/mathgl/mgl32"
)

// recordingRenderer satisfies renderer.Renderer without a GPU, capturing what
// the scene uploads and draws each frame.
type recordingRenderer struct {
	jointCapacity  int
	boneCapacity   int
	uploadedJoints []renderer.GPUInstance
	uploadedBones  []renderer.GPUInstance
	lastUniform    camera.GPUCameraUniform
	drawnJoints    uint32
	drawnBones     uint32
}

func (r *recordingRenderer) Resize(width, height int)                 {}
func (r *recordingRenderer) SetPresentMode(mode renderer.PresentMode) {}

func (r *recordingRenderer) InitSkeletonMeshes(jointCapacity, boneCapacity int) error {
	r.jointCapacity = jointCapacity
	r.boneCapacity = boneCapacity
	return nil
}

func (r *recordingRenderer) UpdateCamera(uniform *camera.GPUCameraUniform) {
	r.lastUniform = *uniform
}

func (r *recordingRenderer) UploadJointInstances(instances []renderer.GPUInstance) {
	r.uploadedJoints = append(r.uploadedJoints[:0], instances...)
}

func (r *recordingRenderer) UploadBoneInstances(instances []renderer.GPUInstance) {
	r.uploadedBones = append(r.uploadedBones[:0], instances...)
}

func (r *recordingRenderer) BeginFrame() error { return nil }

func (r *recordingRenderer) DrawSkeleton(jointCount, boneCount uint32) {
	r.drawnJoints = jointCount
	r.drawnBones = boneCount
}

func (r *recordingRenderer) EndFrame() {}
func (r *recordingRenderer) Present()  {}

var _ renderer.Renderer = &recordingRenderer{}

func newTestScene(t *testing.T) (Scene, *recordingRenderer) {
	t.Helper()
	rec := &recordingRenderer{}
	cam := camera.NewCamera(
		camera.WithAspect(16.0/9.0),
		camera.WithTarget(0, 0.9, 0),
	)
	return NewScene("test", cam, rec, WithPrepWorkers(2)), rec
}

func fullBodyDetection() pose.Detection {
	landmarks := make([]pose.RawLandmark, topology.LandmarkCount)
	for i := range landmarks {
		landmarks[i] = pose.RawLandmark{
			Index:    i,
			Position: mgl32.Vec3{float32(i) * 0.05, 1 + float32(i)*0.01, 0.1},
		}
	}
	return pose.Detection{Landmarks: landmarks}
}

// TestNewSceneSizesMeshes verifies the renderer meshes are initialized to the
// topology capacity.
func TestNewSceneSizesMeshes(t *testing.T) {
	_, rec := newTestScene(t)
	topo := topology.Default()
	if rec.jointCapacity != topo.JointCount() {
		t.Fatalf("expected joint capacity %d, got %d", topo.JointCount(), rec.jointCapacity)
	}
	if rec.boneCapacity != len(topo.Connections()) {
		t.Fatalf("expected bone capacity %d, got %d", len(topo.Connections()), rec.boneCapacity)
	}
}

// TestSceneUploadsFullBody verifies a full detection produces one instance
// per joint and per bone.
func TestSceneUploadsFullBody(t *testing.T) {
	sc, rec := newTestScene(t)
	topo := topology.Default()

	sc.Ingest(fullBodyDetection())
	sc.PrepareFrame(0.016)
	sc.DrawCalls()

	if len(rec.uploadedJoints) != topo.JointCount() {
		t.Fatalf("expected %d joint instances, got %d", topo.JointCount(), len(rec.uploadedJoints))
	}
	if len(rec.uploadedBones) != len(topo.Connections()) {
		t.Fatalf("expected %d bone instances, got %d", len(topo.Connections()), len(rec.uploadedBones))
	}
	if rec.drawnJoints != uint32(topo.JointCount()) {
		t.Fatalf("expected %d drawn joints, got %d", topo.JointCount(), rec.drawnJoints)
	}
	if rec.drawnBones != uint32(len(topo.Connections())) {
		t.Fatalf("expected %d drawn bones, got %d", len(topo.Connections()), rec.drawnBones)
	}
}

// TestSceneOmitsHiddenEntities verifies partial detections shrink the
// instance buffers instead of uploading hidden entities.
func TestSceneOmitsHiddenEntities(t *testing.T) {
	sc, rec := newTestScene(t)

	sc.Ingest(pose.Detection{Landmarks: []pose.RawLandmark{
		{Index: 0, Position: mgl32.Vec3{0, 1.6, 0}},
		{Index: 1, Position: mgl32.Vec3{0.02, 1.65, 0}},
	}})
	sc.PrepareFrame(0.016)
	sc.DrawCalls()

	if len(rec.uploadedJoints) != 2 {
		t.Fatalf("expected 2 joint instances, got %d", len(rec.uploadedJoints))
	}
	// Only the 0-1 face bone has both endpoints.
	if len(rec.uploadedBones) != 1 {
		t.Fatalf("expected 1 bone instance, got %d", len(rec.uploadedBones))
	}
	if rec.drawnJoints != 2 || rec.drawnBones != 1 {
		t.Fatalf("expected draw counts 2/1, got %d/%d", rec.drawnJoints, rec.drawnBones)
	}
}

// TestSceneEmptiesOnLostDetection verifies a no-detection snapshot clears the
// instance buffers.
func TestSceneEmptiesOnLostDetection(t *testing.T) {
	sc, rec := newTestScene(t)

	sc.Ingest(fullBodyDetection())
	sc.PrepareFrame(0.016)

	sc.Ingest(pose.Detection{})
	sc.PrepareFrame(0.016)
	sc.DrawCalls()

	if len(rec.uploadedJoints) != 0 || len(rec.uploadedBones) != 0 {
		t.Fatalf("expected empty instance buffers, got %d joints and %d bones",
			len(rec.uploadedJoints), len(rec.uploadedBones))
	}
	if rec.drawnJoints != 0 || rec.drawnBones != 0 {
		t.Fatalf("expected zero draw counts, got %d/%d", rec.drawnJoints, rec.drawnBones)
	}
}

// TestSceneSkipsRebuildForStaleSnapshot verifies the rig is only re-applied
// when a newer snapshot has been published.
func TestSceneSkipsRebuildForStaleSnapshot(t *testing.T) {
	sc, _ := newTestScene(t)

	sc.Ingest(fullBodyDetection())
	sc.PrepareFrame(0.016)
	seq := sc.Rig().AppliedSeq()

	sc.PrepareFrame(0.016)
	if sc.Rig().AppliedSeq() != seq {
		t.Fatalf("rig re-applied without a new snapshot")
	}

	sc.Ingest(fullBodyDetection())
	sc.PrepareFrame(0.016)
	if sc.Rig().AppliedSeq() != seq+1 {
		t.Fatalf("rig did not pick up the new snapshot")
	}
}

// TestSceneUploadsCameraUniform verifies the camera position reaches the GPU
// uniform each frame.
func TestSceneUploadsCameraUniform(t *testing.T) {
	sc, rec := newTestScene(t)

	sc.PrepareFrame(0.016)

	px, py, pz := sc.Camera().Position()
	got := rec.lastUniform.CameraPosition
	if got != [3]float32{px, py, pz} {
		t.Fatalf("expected camera position %v, got %v", [3]float32{px, py, pz}, got)
	}

	var zero [16]float32
	if rec.lastUniform.ViewProj == zero {
		t.Fatalf("view-projection uniform was never filled")
	}
}

// TestSceneBoneInstanceScalesWithLength verifies the bone model matrix
// stretches along Y by the solved bone length.
func TestSceneBoneInstanceScalesWithLength(t *testing.T) {
	sc, rec := newTestScene(t)

	// Landmarks 0 and 1 one unit apart along detector X.
	sc.Ingest(pose.Detection{Landmarks: []pose.RawLandmark{
		{Index: 0, Position: mgl32.Vec3{0, 0, 0}},
		{Index: 1, Position: mgl32.Vec3{1, 0, 0}},
	}})
	sc.PrepareFrame(0.016)

	if len(rec.uploadedBones) != 1 {
		t.Fatalf("expected 1 bone instance, got %d", len(rec.uploadedBones))
	}
	m := rec.uploadedBones[0].Model

	// The Y basis column length equals the bone length.
	colLen := float32(math.Sqrt(float64(m[4]*m[4] + m[5]*m[5] + m[6]*m[6])))
	if mgl32.Abs(colLen-1) > 1e-5 {
		t.Fatalf("expected bone Y column length 1, got %v", colLen)
	}

	// Translation sits at the segment midpoint in render space.
	want := mgl32.Vec3{-0.5, 0, 0}
	got := mgl32.Vec3{m[12], m[13], m[14]}
	if mgl32.Abs(got[0]-want[0]) > 1e-5 || mgl32.Abs(got[1]-want[1]) > 1e-5 || mgl32.Abs(got[2]-want[2]) > 1e-5 {
		t.Fatalf("expected bone placement %v, got %v", want, got)
	}
}

// TestSceneActiveToggle verifies the Active flag round-trips.
func TestSceneActiveToggle(t *testing.T) {
	sc, _ := newTestScene(t)
	if !sc.Active() {
		t.Fatalf("scene should default to active")
	}
	sc.SetActive(false)
	if sc.Active() {
		t.Fatalf("scene should be inactive after SetActive(false)")
	}
}

// TestSceneRadiusOverrideAndFallback verifies custom radii reach the packed
// instances while zeroed radii fall back to the built-in defaults.
func TestSceneRadiusOverrideAndFallback(t *testing.T) {
	rec := &recordingRenderer{}
	cam := camera.NewCamera()
	sc := NewScene("radii", cam, rec,
		WithPrepWorkers(2),
		WithJointRadii(0.5, 0),
	)

	sc.Ingest(fullBodyDetection())
	sc.PrepareFrame(0.016)

	if len(rec.uploadedJoints) != topology.LandmarkCount {
		t.Fatalf("expected %d joint instances, got %d", topology.LandmarkCount, len(rec.uploadedJoints))
	}

	// With an identity rotation the X basis column carries the sphere radius.
	// Joint 11 (left shoulder) is standard class, joint 0 (nose) is fine.
	if got := rec.uploadedJoints[11].Model[0]; got != 0.5 {
		t.Fatalf("expected standard joint radius 0.5, got %v", got)
	}
	if got := rec.uploadedJoints[0].Model[0]; got != 0.02 {
		t.Fatalf("expected fine joint radius to fall back to 0.02, got %v", got)
	}
}
