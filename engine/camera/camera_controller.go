package camera

// CameraController turns input events into orbit adjustments.
// Input callbacks may fire on a different goroutine than the tick loop, so the controller only
// accumulates pending deltas; the tick goroutine drains them into the OrbitState with Apply,
// keeping the orbit state single-writer.
type CameraController interface {
	orbitCameraController

	// Zoom moves the camera toward (positive delta) or away from the target.
	// The orbit distance is clamped to [MinRadius, MaxRadius] when applied.
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	Zoom(delta float32)

	// Pending returns the accumulated, not yet applied, pitch delta, yaw delta, and zoom.
	//
	// Returns:
	//   - pitch: pending pitch delta in degrees
	//   - yaw: pending yaw delta in degrees
	//   - zoom: pending zoom amount
	Pending() (pitch, yaw, zoom float32)

	// Apply drains pending input into orbit through AdjustXAngle, AdjustYAngle, and the offset
	// distance. It must be called from the goroutine that owns orbit.
	//
	// Parameters:
	//   - orbit: the orbit state to adjust
	//
	// Returns:
	//   - bool: true if any pending input was applied
	Apply(orbit *OrbitState) bool
}

// orbitCameraController defines the angle-stepping controls.
type orbitCameraController interface {
	// OrbitLeft queues a yaw step of -OrbitSpeed degrees.
	OrbitLeft()

	// OrbitRight queues a yaw step of +OrbitSpeed degrees.
	OrbitRight()

	// OrbitUp queues a pitch step of +OrbitSpeed degrees.
	OrbitUp()

	// OrbitDown queues a pitch step of -OrbitSpeed degrees.
	OrbitDown()

	// MouseDrag queues yaw and pitch deltas from a pointer drag, scaled by MouseSensitivity.
	// Dragging right yaws right; dragging down pitches up.
	//
	// Parameters:
	//   - dx: horizontal pointer movement in pixels
	//   - dy: vertical pointer movement in pixels
	MouseDrag(dx, dy float32)

	// OrbitSpeed returns the keyboard orbit step in degrees.
	//
	// Returns:
	//   - float32: degrees per orbit call
	OrbitSpeed() float32

	// MouseSensitivity returns degrees of rotation per pixel of drag.
	//
	// Returns:
	//   - float32: multiplier for mouse movement
	MouseSensitivity() float32

	// ZoomSpeed returns the zoom speed multiplier.
	//
	// Returns:
	//   - float32: multiplier for zoom input
	ZoomSpeed() float32

	// MinRadius returns the minimum orbit distance.
	//
	// Returns:
	//   - float32: minimum zoom distance
	MinRadius() float32

	// MaxRadius returns the maximum orbit distance.
	//
	// Returns:
	//   - float32: maximum zoom distance
	MaxRadius() float32
}
