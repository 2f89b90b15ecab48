package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	// Pending input, drained by Apply
	pitch float32
	yaw   float32
	zoom  float32

	// Zoom constraints on the orbit distance (-Offset.Z)
	minRadius float32
	maxRadius float32

	// Speed settings
	orbitSpeed       float32
	mouseSensitivity float32
	zoomSpeed        float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller with sensible defaults.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu: &sync.Mutex{},

		minRadius: 1.0,
		maxRadius: 50.0,

		orbitSpeed:       1.5,
		mouseSensitivity: 0.15,
		zoomSpeed:        0.5,
	}

	for _, option := range options {
		option(cc)
	}
	if cc.minRadius > cc.maxRadius {
		cc.minRadius, cc.maxRadius = cc.maxRadius, cc.minRadius
	}
	return cc
}

func (cc *cameraControllerImpl) OrbitLeft() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.yaw -= cc.orbitSpeed
}

func (cc *cameraControllerImpl) OrbitRight() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.yaw += cc.orbitSpeed
}

func (cc *cameraControllerImpl) OrbitUp() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pitch += cc.orbitSpeed
}

func (cc *cameraControllerImpl) OrbitDown() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pitch -= cc.orbitSpeed
}

func (cc *cameraControllerImpl) MouseDrag(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.yaw += dx * cc.mouseSensitivity
	cc.pitch -= dy * cc.mouseSensitivity
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.zoom += delta * cc.zoomSpeed
}

func (cc *cameraControllerImpl) Pending() (pitch, yaw, zoom float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pitch, cc.yaw, cc.zoom
}

func (cc *cameraControllerImpl) Apply(orbit *OrbitState) bool {
	cc.mu.Lock()
	pitch, yaw, zoom := cc.pitch, cc.yaw, cc.zoom
	cc.pitch, cc.yaw, cc.zoom = 0, 0, 0
	cc.mu.Unlock()

	if orbit == nil || (pitch == 0 && yaw == 0 && zoom == 0) {
		return false
	}
	if pitch != 0 {
		orbit.AdjustXAngle(pitch)
	}
	if yaw != 0 {
		orbit.AdjustYAngle(yaw)
	}
	if zoom != 0 {
		// Offset.Z is negative behind the target; the radius is its magnitude.
		radius := mgl32.Clamp(-orbit.Offset[2]-zoom, cc.minRadius, cc.maxRadius)
		orbit.Offset[2] = -radius
	}
	return true
}

func (cc *cameraControllerImpl) OrbitSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.orbitSpeed
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}

func (cc *cameraControllerImpl) ZoomSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.zoomSpeed
}

func (cc *cameraControllerImpl) MinRadius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.minRadius
}

func (cc *cameraControllerImpl) MaxRadius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.maxRadius
}
