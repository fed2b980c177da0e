package camera

// CameraBuilderOption is a functional option for configuring a Camera during construction.
type CameraBuilderOption func(*cameraImpl)

// WithFov sets the camera's field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: functional option to set the field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: functional option to set the aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithTarget sets the orbit pivot point.
//
// Parameters:
//   - x, y, z: world-space coordinates of the pivot
//
// Returns:
//   - CameraBuilderOption: functional option to set the target
func WithTarget(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.target = [3]float32{x, y, z}
	}
}

// WithRadius sets the initial distance from the target.
//
// Parameters:
//   - radius: distance from the pivot (clamped to the radius bounds)
//
// Returns:
//   - CameraBuilderOption: functional option to set the orbit radius
func WithRadius(radius float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.radius = clamp(radius, c.minRadius, c.maxRadius)
	}
}

// WithRadiusBounds sets the minimum and maximum zoom distance.
//
// Parameters:
//   - minR: closest allowed distance to the target
//   - maxR: farthest allowed distance from the target
//
// Returns:
//   - CameraBuilderOption: functional option to set the radius bounds
func WithRadiusBounds(minR, maxR float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if minR > 0 && maxR > minR {
			c.minRadius = minR
			c.maxRadius = maxR
		}
	}
}

// WithAngles sets the initial azimuth and elevation.
//
// Parameters:
//   - azimuth: horizontal angle around the Y axis in radians
//   - elevation: vertical angle from the horizontal plane in radians
//
// Returns:
//   - CameraBuilderOption: functional option to set the orbit angles
func WithAngles(azimuth, elevation float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.azimuth = azimuth
		c.elevation = clamp(elevation, c.minElevation, c.maxElevation)
	}
}

// WithOrbitSpeed sets the radians applied per orbit step.
//
// Parameters:
//   - speed: radians per step (ignored if <= 0)
//
// Returns:
//   - CameraBuilderOption: functional option to set the orbit speed
func WithOrbitSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if speed > 0 {
			c.orbitSpeed = speed
		}
	}
}

// WithZoomSpeed sets the distance applied per zoom step.
//
// Parameters:
//   - speed: distance units per step (ignored if <= 0)
//
// Returns:
//   - CameraBuilderOption: functional option to set the zoom speed
func WithZoomSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if speed > 0 {
			c.zoomSpeed = speed
		}
	}
}
