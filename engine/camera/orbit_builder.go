package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitStateOption is a functional option for configuring an OrbitState.
type OrbitStateOption func(*OrbitState)

// WithOffset sets the orbit offset in camera-local axes.
//
// Parameters:
//   - x: lateral offset
//   - y: vertical offset
//   - z: distance behind the target (negative is behind)
//
// Returns:
//   - OrbitStateOption: functional option to set the offset
func WithOffset(x, y, z float32) OrbitStateOption {
	return func(o *OrbitState) {
		o.Offset = mgl32.Vec3{x, y, z}
	}
}

// WithAngles sets the initial pitch and yaw in degrees. Limits are not applied.
//
// Parameters:
//   - xAngle: pitch in degrees
//   - yAngle: yaw in degrees
//
// Returns:
//   - OrbitStateOption: functional option to set the angles
func WithAngles(xAngle, yAngle float32) OrbitStateOption {
	return func(o *OrbitState) {
		o.XAngle = xAngle
		o.YAngle = yAngle
	}
}

// WithTarget sets the world-space orbit target.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - OrbitStateOption: functional option to set the target
func WithTarget(x, y, z float32) OrbitStateOption {
	return func(o *OrbitState) {
		o.Target = mgl32.Vec3{x, y, z}
	}
}

// WithMode sets the camera mode.
//
// Parameters:
//   - mode: ModeThirdPersonOrbit or ModeFirstPerson
//
// Returns:
//   - OrbitStateOption: functional option to set the mode
func WithMode(mode CameraMode) OrbitStateOption {
	return func(o *OrbitState) {
		o.Mode = mode
	}
}

// WithFovDegrees sets the vertical field of view in degrees.
//
// Parameters:
//   - fov: field of view in degrees
//
// Returns:
//   - OrbitStateOption: functional option to set the field of view
func WithFovDegrees(fov float32) OrbitStateOption {
	return func(o *OrbitState) {
		o.FovDegrees = fov
	}
}

// WithXLimit sets the pitch limit policy.
func WithXLimit(limit AxisLimit) OrbitStateOption {
	return func(o *OrbitState) {
		o.Limits.X = limit
	}
}

// WithYLimit sets the yaw limit policy.
func WithYLimit(limit AxisLimit) OrbitStateOption {
	return func(o *OrbitState) {
		o.Limits.Y = limit
	}
}

// WithZLimit sets the Z limit policy.
func WithZLimit(limit AxisLimit) OrbitStateOption {
	return func(o *OrbitState) {
		o.Limits.Z = limit
	}
}
