package common

import "github.com/go-gl/mathgl/mgl32"

// World axes shared by the camera rig. The engine uses a right-handed, Y-up coordinate
// system where an unrotated transform looks down -Z.
var (
	WorldUp      = mgl32.Vec3{0, 1, 0}
	WorldRight   = mgl32.Vec3{1, 0, 0}
	WorldForward = mgl32.Vec3{0, 0, -1}
)

// FullTurnDegrees is the span of the wrapped angle range [0, 360).
const FullTurnDegrees float32 = 360.0

// WrapDegrees applies a single-step correction toward the [0, 360] degree range.
// Values above 360 have 360 subtracted once and values below 0 have 360 added once.
// This is not a modulo: inputs more than one full turn out of range stay out of range
// until they are corrected again.
//
// Parameters:
//   - deg: the angle in degrees
//
// Returns:
//   - float32: the corrected angle
func WrapDegrees(deg float32) float32 {
	if deg > FullTurnDegrees {
		return deg - FullTurnDegrees
	}
	if deg < 0 {
		return deg + FullTurnDegrees
	}
	return deg
}

// ClampDegrees saturates deg to the closed range [min, max].
//
// Parameters:
//   - deg: the angle in degrees
//   - min: lower bound
//   - max: upper bound
//
// Returns:
//   - float32: the clamped angle
func ClampDegrees(deg, min, max float32) float32 {
	return mgl32.Clamp(deg, min, max)
}

// LerpVec3 linearly interpolates from a to b by t. The weighted form a*(1-t) + b*t
// returns a exactly at t == 0 and b exactly at t == 1.
//
// Parameters:
//   - a: start vector
//   - b: end vector
//   - t: interpolation factor (values outside [0, 1] extrapolate)
//
// Returns:
//   - mgl32.Vec3: the interpolated vector
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Flatten returns v with its vertical (Y) component zeroed.
func Flatten(v mgl32.Vec3) mgl32.Vec3 {
	v[1] = 0
	return v
}
