package camera

import (
	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a position, orientation, and scale in world space.
// The rig reads and overwrites Translation and Rotation of the primary camera's transform
// each frame; Scale is never touched by placement.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// NewTransform returns an identity transform at the origin with unit scale.
//
// Returns:
//   - Transform: the identity transform
func NewTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// TransformFromTranslation returns an unrotated, unit-scale transform at the given position.
//
// Parameters:
//   - translation: world-space position
//
// Returns:
//   - Transform: the new transform
func TransformFromTranslation(translation mgl32.Vec3) Transform {
	t := NewTransform()
	t.Translation = translation
	return t
}

// Forward returns the direction the transform looks toward (rotated -Z).
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(common.WorldForward)
}

// Right returns the transform's local right direction (rotated +X).
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(common.WorldRight)
}

// Up returns the transform's local up direction (rotated +Y).
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(common.WorldUp)
}

// Rotate applies rotation q relative to the parent frame: Rotation = q * Rotation.
//
// Parameters:
//   - q: the rotation to apply
func (t *Transform) Rotate(q mgl32.Quat) {
	t.Rotation = q.Mul(t.Rotation)
}

// RotateX rotates about the parent-frame X axis by angle radians.
func (t *Transform) RotateX(angle float32) {
	t.Rotate(mgl32.QuatRotate(angle, common.WorldRight))
}

// RotateY rotates about the parent-frame Y axis by angle radians.
func (t *Transform) RotateY(angle float32) {
	t.Rotate(mgl32.QuatRotate(angle, common.WorldUp))
}

// RotateLocal applies rotation q in the transform's own frame: Rotation = Rotation * q.
//
// Parameters:
//   - q: the rotation to apply
func (t *Transform) RotateLocal(q mgl32.Quat) {
	t.Rotation = t.Rotation.Mul(q)
}

// RotateLocalX rotates about the transform's own X axis by angle radians.
func (t *Transform) RotateLocalX(angle float32) {
	t.RotateLocal(mgl32.QuatRotate(angle, common.WorldRight))
}

// RotateLocalY rotates about the transform's own Y axis by angle radians.
func (t *Transform) RotateLocalY(angle float32) {
	t.RotateLocal(mgl32.QuatRotate(angle, common.WorldUp))
}

// Matrix returns the column-major model matrix T * R * S.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2]).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}
