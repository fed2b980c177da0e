package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/twin-go/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	up [3]float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	target    [3]float32
	radius    float32
	azimuth   float32
	elevation float32

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32
	orbitSpeed   float32
	zoomSpeed    float32

	initTarget    [3]float32
	initRadius    float32
	initAzimuth   float32
	initElevation float32

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32
}

// Camera is an orbit camera: it circles a pivot point on a sphere described
// by radius, azimuth, and elevation, and exposes the view/projection matrices
// the renderer uploads each frame. All methods are safe for concurrent use;
// matrices are recomputed eagerly on every mutation.
type Camera interface {
	// Fov returns the field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Position returns the camera's world-space position, derived from the
	// orbit parameters.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at/pivot point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the current combined view-projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// Orbit rotates the camera around the target. Horizontal steps spin
	// around the Y axis; vertical steps tilt, clamped to the elevation
	// bounds. Step magnitudes are scaled by the orbit speed.
	//
	// Parameters:
	//   - dAzimuth: horizontal steps (positive orbits right)
	//   - dElevation: vertical steps (positive tilts up)
	Orbit(dAzimuth, dElevation float32)

	// Zoom adjusts the distance to the target, clamped to the radius
	// bounds. Positive delta zooms in.
	//
	// Parameters:
	//   - delta: zoom amount scaled by the zoom speed
	Zoom(delta float32)

	// Reset restores the target, radius, and angles the camera was
	// constructed with.
	Reset()

	// SetTarget sets the look-at/pivot point and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetFov sets the field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new orbit Camera. Defaults: 45° field of view, target
// at the origin, radius 4, level elevation, facing down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:           &sync.Mutex{},
		up:           [3]float32{0, 1, 0},
		fov:          45.0 * (math.Pi / 180.0), // radians
		aspect:       1.0,
		near:         0.1,
		far:          100.0,
		radius:       4.0,
		minRadius:    0.5,
		maxRadius:    25.0,
		minElevation: -1.4,
		maxElevation: 1.4,
		orbitSpeed:   0.03,
		zoomSpeed:    0.25,
	}
	for _, option := range options {
		option(c)
	}

	c.initTarget = c.target
	c.initRadius = c.radius
	c.initAzimuth = c.azimuth
	c.initElevation = c.elevation

	c.updateMatrices()
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.position()
	return p[0], p[1], p[2]
}

func (c *cameraImpl) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target[0], c.target[1], c.target[2]
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Orbit(dAzimuth, dElevation float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.azimuth += dAzimuth * c.orbitSpeed
	c.elevation = clamp(c.elevation+dElevation*c.orbitSpeed, c.minElevation, c.maxElevation)
	c.updateMatrices()
}

func (c *cameraImpl) Zoom(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.radius = clamp(c.radius-delta*c.zoomSpeed, c.minRadius, c.maxRadius)
	c.updateMatrices()
}

func (c *cameraImpl) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = c.initTarget
	c.radius = c.initRadius
	c.azimuth = c.initAzimuth
	c.elevation = c.initElevation
	c.updateMatrices()
}

func (c *cameraImpl) SetTarget(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

// position derives the world-space eye point from the spherical orbit
// parameters. Caller must hold the mutex.
func (c *cameraImpl) position() [3]float32 {
	cosE := float32(math.Cos(float64(c.elevation)))
	sinE := float32(math.Sin(float64(c.elevation)))
	sinA := float32(math.Sin(float64(c.azimuth)))
	cosA := float32(math.Cos(float64(c.azimuth)))
	return [3]float32{
		c.target[0] + c.radius*cosE*sinA,
		c.target[1] + c.radius*sinE,
		c.target[2] + c.radius*cosE*cosA,
	}
}

// updateMatrices recalculates the view, projection, and view-projection
// matrices. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	p := c.position()

	common.LookAt(c.viewMatrix[:],
		p[0], p[1], p[2],
		c.target[0], c.target[1], c.target[2],
		c.up[0], c.up[1], c.up[2],
	)

	common.Perspective(c.projectionMatrix[:],
		c.fov, c.aspect, c.near, c.far,
	)

	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
