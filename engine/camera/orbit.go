package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraMode selects how the desired camera position is derived from the orbit parameters.
type CameraMode int

const (
	// ModeThirdPersonOrbit places the camera on an orbit around the target using the full offset.
	ModeThirdPersonOrbit CameraMode = iota
	// ModeFirstPerson places the camera at the target, raised by the vertical offset only.
	ModeFirstPerson
)

func (m CameraMode) String() string {
	switch m {
	case ModeThirdPersonOrbit:
		return "thirdPersonOrbit"
	case ModeFirstPerson:
		return "firstPerson"
	default:
		return fmt.Sprintf("CameraMode(%d)", int(m))
	}
}

// LimitKind is the policy an AxisLimit applies to an angle.
type LimitKind int

const (
	// LimitClamp saturates the angle to [Min, Max].
	LimitClamp LimitKind = iota
	// LimitWrap folds the angle back toward [0, 360] with a single correction.
	LimitWrap
)

func (k LimitKind) String() string {
	switch k {
	case LimitClamp:
		return "clamp"
	case LimitWrap:
		return "wrap"
	default:
		return fmt.Sprintf("LimitKind(%d)", int(k))
	}
}

// AxisLimit is the limit policy for one orbit axis. Min and Max are only read for LimitClamp.
type AxisLimit struct {
	Kind LimitKind
	Min  float32
	Max  float32
}

// ClampLimit returns a clamp policy over [min, max].
// Reversed bounds are swapped so that the resulting policy always satisfies Min <= Max;
// callers that need to reject bad bounds should validate before calling (see config.Load).
//
// Parameters:
//   - min: lower bound in degrees
//   - max: upper bound in degrees
//
// Returns:
//   - AxisLimit: the clamp policy
func ClampLimit(min, max float32) AxisLimit {
	if min > max {
		min, max = max, min
	}
	return AxisLimit{Kind: LimitClamp, Min: min, Max: max}
}

// WrapLimit returns a wrap policy.
func WrapLimit() AxisLimit {
	return AxisLimit{Kind: LimitWrap}
}

// Apply runs the policy on an angle in degrees.
//
// Parameters:
//   - deg: the candidate angle
//
// Returns:
//   - float32: the limited angle
func (l AxisLimit) Apply(deg float32) float32 {
	switch l.Kind {
	case LimitClamp:
		return common.ClampDegrees(deg, l.Min, l.Max)
	case LimitWrap:
		return common.WrapDegrees(deg)
	default:
		return deg
	}
}

// CameraLimits holds per-axis limit policies. Z is carried for configuration parity but no
// operation currently applies it.
type CameraLimits struct {
	X AxisLimit
	Y AxisLimit
	Z AxisLimit
}

// OrbitState holds the orbit parameters of the primary camera.
// It is plain data owned by the camera entity; it is mutated only through AdjustXAngle and
// AdjustYAngle and must be written from a single goroutine (the tick goroutine).
type OrbitState struct {
	// Offset is the camera-local displacement from the pivot: x lateral, y vertical, z distance
	// behind the target (negative values sit behind it).
	Offset mgl32.Vec3

	// XAngle is the pitch in degrees.
	XAngle float32

	// YAngle is the yaw in degrees.
	YAngle float32

	// Target is the world-space point the camera orbits and looks toward.
	Target mgl32.Vec3

	// Mode selects third-person orbit or first-person placement.
	Mode CameraMode

	// FovDegrees is the vertical field of view handed to the projection.
	FovDegrees float32

	// Limits are the per-axis angle policies.
	Limits CameraLimits
}

// NewOrbitState creates an OrbitState with the stock third-person defaults, then applies options.
//
// Parameters:
//   - options: functional options to override defaults
//
// Returns:
//   - *OrbitState: the new orbit state
func NewOrbitState(options ...OrbitStateOption) *OrbitState {
	o := &OrbitState{
		Offset:     mgl32.Vec3{0, 0.5, -6},
		Mode:       ModeThirdPersonOrbit,
		FovDegrees: 45,
		Limits: CameraLimits{
			X: ClampLimit(-2, 20),
			Y: WrapLimit(),
			Z: WrapLimit(),
		},
	}
	for _, option := range options {
		option(o)
	}
	return o
}

// AdjustXAngle adds increase to the pitch and applies the X limit to the sum.
//
// Parameters:
//   - increase: pitch delta in degrees
func (o *OrbitState) AdjustXAngle(increase float32) {
	o.XAngle = o.Limits.X.Apply(o.XAngle + increase)
}

// AdjustYAngle adds increase to the yaw, then applies the Y limit to the yaw plus increase
// again, so one call moves the yaw by 2*increase before limiting. Input sensitivity upstream
// is tuned against this step size.
//
// Parameters:
//   - increase: yaw delta in degrees
func (o *OrbitState) AdjustYAngle(increase float32) {
	o.YAngle += increase
	o.YAngle = o.Limits.Y.Apply(o.YAngle + increase)
}

// Pitch returns XAngle in radians.
func (o *OrbitState) Pitch() float32 {
	return mgl32.DegToRad(o.XAngle)
}

// Yaw returns YAngle in radians.
func (o *OrbitState) Yaw() float32 {
	return mgl32.DegToRad(o.YAngle)
}

// Clone returns a copy of the orbit state.
func (o *OrbitState) Clone() *OrbitState {
	c := *o
	return &c
}
