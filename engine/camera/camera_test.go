package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCamera_Defaults(t *testing.T) {
	c := NewCamera()

	assert.InDelta(t, mgl32.DegToRad(45), c.Fov(), 1e-6)
	assert.Equal(t, float32(1), c.Aspect())
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(100), c.Far())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.Equal(t, NewTransform(), c.Transform())
	assert.Nil(t, c.Controller())
}

func TestCamera_ViewMatrixFollowsTransform(t *testing.T) {
	c := NewCamera()
	placed := NewPlacementSolver().Desired(NewOrbitState())
	c.SetTransform(placed)

	// the orbit target sits straight ahead of the camera
	target := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, target.X(), 1e-5)
	assert.InDelta(t, -0.5, target.Y(), 1e-5)
	assert.InDelta(t, -6, target.Z(), 1e-5)

	eye := c.ViewMatrix().Mul4x1(placed.Translation.Vec4(1))
	assert.InDelta(t, 0, eye.Vec3().Len(), 1e-5)
}

func TestCamera_ProjectionMatrices(t *testing.T) {
	c := NewCamera(WithAspect(16.0/9.0), WithNear(0.5), WithFar(500))
	c.SetFovDegrees(60)

	assert.InDelta(t, mgl32.DegToRad(60), c.Fov(), 1e-6)
	want := mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.5, 500)
	assert.True(t, want.ApproxEqualThreshold(c.ProjectionMatrix(), 1e-5))

	identity := c.ProjectionMatrix().Mul4(c.InverseProjectionMatrix())
	assert.True(t, identity.ApproxEqualThreshold(mgl32.Ident4(), 1e-4))

	vp := c.ProjectionMatrix().Mul4(c.ViewMatrix())
	assert.True(t, vp.ApproxEqualThreshold(c.ViewProjectionMatrix(), 1e-5))
}

func TestCamera_Options(t *testing.T) {
	ctrl := NewCameraController()
	tr := TransformFromTranslation(mgl32.Vec3{1, 2, 3})
	c := NewCamera(WithUp(0, 0, 1), WithFov(1), WithController(ctrl), WithTransform(tr))

	assert.Equal(t, mgl32.Vec3{0, 0, 1}, c.Up())
	assert.Equal(t, float32(1), c.Fov())
	assert.Same(t, ctrl, c.Controller())
	assert.Equal(t, tr, c.Transform())

	c.SetController(nil)
	assert.Nil(t, c.Controller())
}

func TestGPUCameraUniform_Layout(t *testing.T) {
	c := NewCamera()
	c.SetTransform(TransformFromTranslation(mgl32.Vec3{1, 2, 3}))

	u := c.Uniform()
	require.Equal(t, 80, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, 80)
	assert.Equal(t, u.ViewProj[0], math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[64:])))
	assert.Equal(t, float32(2), math.Float32frombits(binary.LittleEndian.Uint32(buf[68:])))
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(buf[72:])))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[76:]))
	assert.Contains(t, GPUCameraUniformSource, "struct CameraUniform")
}
