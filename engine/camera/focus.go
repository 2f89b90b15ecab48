package camera

import (
	"math"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// FocusSnapshot is where the primary camera was and where it was looking after the most
// recent placement. The zero value (all zero vectors) means no camera has been placed yet.
type FocusSnapshot struct {
	Origin  mgl32.Vec3
	Forward mgl32.Vec3
	Right   mgl32.Vec3
}

type focusTrackerImpl struct {
	snapshot atomic.Pointer[FocusSnapshot]

	random            RandomSource
	correctedJitter   bool
	correctedFlatAxis bool
}

// FocusTracker caches the primary camera's origin and axes for other systems to read.
// Update is called by exactly one writer per frame, after placement; readers on any goroutine
// always observe a complete snapshot because each update swaps the whole value at once.
type FocusTracker interface {
	// Update replaces the snapshot with the translation, forward, and right vectors of t.
	//
	// Parameters:
	//   - t: the camera transform after placement
	Update(t Transform)

	// Snapshot returns the current snapshot by value.
	//
	// Returns:
	//   - FocusSnapshot: origin, forward, and right of the last placed camera
	Snapshot() FocusSnapshot

	// Origin returns the camera position from the last update.
	//
	// Returns:
	//   - mgl32.Vec3: the world-space camera position
	Origin() mgl32.Vec3

	// Forward returns the camera forward direction from the last update.
	//
	// Returns:
	//   - mgl32.Vec3: the forward direction
	Forward() mgl32.Vec3

	// Right returns the camera right direction from the last update.
	//
	// Returns:
	//   - mgl32.Vec3: the right direction
	Right() mgl32.Vec3

	// ForwardFlat returns a ground-plane movement direction with the vertical component zeroed.
	// It is derived from the right vector, matching existing movement tuning, unless the tracker
	// was built WithCorrectedFlatForward.
	//
	// Returns:
	//   - mgl32.Vec3: the flattened direction
	ForwardFlat() mgl32.Vec3

	// RightFlat returns the right vector with the vertical component zeroed.
	//
	// Returns:
	//   - mgl32.Vec3: the flattened right direction
	RightFlat() mgl32.Vec3

	// ForwardRandomized returns the forward vector rotated by a random pitch and yaw drawn
	// uniformly over a disc whose squared radius is rangeDeg. Each call draws a new sample.
	//
	// Parameters:
	//   - rangeDeg: the jitter range; 0 returns Forward unchanged
	//
	// Returns:
	//   - mgl32.Vec3: the jittered forward direction
	ForwardRandomized(rangeDeg float32) mgl32.Vec3
}

var _ FocusTracker = &focusTrackerImpl{}

// NewFocusTracker creates a FocusTracker holding a zero snapshot.
//
// Parameters:
//   - options: functional options to configure the tracker
//
// Returns:
//   - FocusTracker: the new tracker
func NewFocusTracker(options ...FocusTrackerOption) FocusTracker {
	f := &focusTrackerImpl{
		random: globalSource{},
	}
	for _, option := range options {
		option(f)
	}
	f.snapshot.Store(&FocusSnapshot{})
	return f
}

func (f *focusTrackerImpl) Update(t Transform) {
	f.snapshot.Store(&FocusSnapshot{
		Origin:  t.Translation,
		Forward: t.Forward(),
		Right:   t.Right(),
	})
}

func (f *focusTrackerImpl) Snapshot() FocusSnapshot {
	return *f.snapshot.Load()
}

func (f *focusTrackerImpl) Origin() mgl32.Vec3 {
	return f.snapshot.Load().Origin
}

func (f *focusTrackerImpl) Forward() mgl32.Vec3 {
	return f.snapshot.Load().Forward
}

func (f *focusTrackerImpl) Right() mgl32.Vec3 {
	return f.snapshot.Load().Right
}

func (f *focusTrackerImpl) ForwardFlat() mgl32.Vec3 {
	s := f.snapshot.Load()
	if f.correctedFlatAxis {
		return common.Flatten(s.Forward)
	}
	return common.Flatten(s.Right)
}

func (f *focusTrackerImpl) RightFlat() mgl32.Vec3 {
	return common.Flatten(f.snapshot.Load().Right)
}

func (f *focusTrackerImpl) ForwardRandomized(rangeDeg float32) mgl32.Vec3 {
	forward := f.snapshot.Load().Forward

	radius := float32(math.Sqrt(float64(rangeDeg * f.random.Float32())))
	theta := f.random.Float32() * 2 * math.Pi
	sin, cos := math.Sincos(float64(theta))
	rotX := radius * float32(cos)
	rotY := radius * float32(sin)

	// rotX and rotY are treated as degrees, which scales the cone down by 180/pi;
	// aim consumers are calibrated to that scale.
	if !f.correctedJitter {
		rotX = mgl32.DegToRad(rotX)
		rotY = mgl32.DegToRad(rotY)
	}

	jitter := mgl32.QuatRotate(rotY, common.WorldUp).Mul(mgl32.QuatRotate(rotX, common.WorldRight))
	return jitter.Rotate(forward)
}
