package camera

import (
	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultSmoothingRate is the blend rate per second used when no rate is configured.
// At 60 Hz a rate of 20 closes roughly a third of the remaining distance each frame.
const DefaultSmoothingRate float32 = 20.0

type placementSolverImpl struct {
	smoothingRate float32
	clampBlend    bool
}

// PlacementSolver computes the primary camera's transform from its orbit parameters.
// It is a pure computation: it holds only tuning values and never mutates its inputs.
type PlacementSolver interface {
	// Desired computes the transform the camera is moving toward for the given orbit state.
	// The returned transform carries unit scale; only Translation and Rotation are meaningful.
	//
	// Parameters:
	//   - orbit: the orbit parameters
	//
	// Returns:
	//   - Transform: the desired transform
	Desired(orbit *OrbitState) Transform

	// BlendFactor returns the interpolation factor used for an elapsed time step.
	//
	// Parameters:
	//   - elapsed: seconds since the last update
	//
	// Returns:
	//   - float32: the interpolation factor
	BlendFactor(elapsed float32) float32

	// Solve blends current toward the desired transform by BlendFactor(elapsed).
	// Translation is linearly interpolated and Rotation spherically interpolated;
	// every other field of current is carried over unchanged.
	//
	// Parameters:
	//   - current: the camera's current transform
	//   - orbit: the orbit parameters
	//   - elapsed: seconds since the last update (>= 0)
	//
	// Returns:
	//   - Transform: the new transform
	Solve(current Transform, orbit *OrbitState, elapsed float32) Transform

	// SmoothingRate returns the configured blend rate per second.
	//
	// Returns:
	//   - float32: the smoothing rate
	SmoothingRate() float32

	// ClampsBlend reports whether the blend factor is clamped to [0, 1].
	//
	// Returns:
	//   - bool: true if clamping is enabled
	ClampsBlend() bool
}

var _ PlacementSolver = &placementSolverImpl{}

// NewPlacementSolver creates a PlacementSolver with a smoothing rate of DefaultSmoothingRate
// and a blend factor clamped to [0, 1].
//
// Parameters:
//   - options: functional options to configure the solver
//
// Returns:
//   - PlacementSolver: the new solver
func NewPlacementSolver(options ...PlacementSolverOption) PlacementSolver {
	s := &placementSolverImpl{
		smoothingRate: DefaultSmoothingRate,
		clampBlend:    true,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *placementSolverImpl) SmoothingRate() float32 {
	return s.smoothingRate
}

func (s *placementSolverImpl) ClampsBlend() bool {
	return s.clampBlend
}

func (s *placementSolverImpl) BlendFactor(elapsed float32) float32 {
	t := elapsed * s.smoothingRate
	if s.clampBlend {
		t = mgl32.Clamp(t, 0, 1)
	}
	return t
}

func (s *placementSolverImpl) Desired(orbit *OrbitState) Transform {
	pitch := orbit.Pitch()
	yaw := orbit.Yaw()

	// yaw then pitch, each about the parent axis
	basis := TransformFromTranslation(orbit.Target)
	basis.RotateY(yaw)
	basis.RotateX(pitch)

	forward := basis.Forward().Normalize()
	right := basis.Right().Normalize()

	var position mgl32.Vec3
	switch orbit.Mode {
	case ModeFirstPerson:
		position = basis.Translation.Add(common.WorldUp.Mul(orbit.Offset.Y()))
	default:
		position = basis.Translation.
			Add(forward.Mul(orbit.Offset.Z())).
			Add(right.Mul(orbit.Offset.X())).
			Add(common.WorldUp.Mul(orbit.Offset.Y()))
	}

	// the look rotation composes in the opposite order: pitch then yaw
	look := NewTransform()
	look.RotateX(pitch)
	look.RotateY(yaw)

	desired := NewTransform()
	desired.Translation = position
	desired.Rotation = look.Rotation
	return desired
}

func (s *placementSolverImpl) Solve(current Transform, orbit *OrbitState, elapsed float32) Transform {
	t := s.BlendFactor(elapsed)
	if t <= 0 {
		return current
	}

	desired := s.Desired(orbit)
	next := current
	if t == 1 {
		next.Translation = desired.Translation
		next.Rotation = desired.Rotation
		return next
	}

	next.Translation = common.LerpVec3(current.Translation, desired.Translation, t)
	next.Rotation = slerpShortest(current.Rotation, desired.Rotation, t)
	return next
}

// slerpShortest interpolates along the shorter of the two arcs between a and b.
func slerpShortest(a, b mgl32.Quat, t float32) mgl32.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl32.QuatSlerp(a, b, t)
}
